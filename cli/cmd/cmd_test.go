package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quiltlang/quilt/pkg"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		source string
		index  int
		count  int
		want   string
	}{
		{
			name:   "explicit output wins",
			output: "art.png",
			source: "script.quilt",
			index:  1,
			count:  1,
			want:   "art.png",
		},
		{
			name:   "source stem",
			source: "spiral.quilt",
			index:  1,
			count:  1,
			want:   "spiral.png",
		},
		{
			name:   "source stem with directory",
			source: "scripts/spiral.quilt",
			index:  1,
			count:  1,
			want:   "spiral.png",
		},
		{
			name:   "stdin falls back to command name",
			source: "-",
			index:  1,
			count:  1,
			want:   "quilt.png",
		},
		{
			name:   "count numbers the outputs",
			source: "spiral.quilt",
			index:  3,
			count:  5,
			want:   "spiral-3.png",
		},
		{
			name:   "count pads to its own width",
			source: "spiral.quilt",
			index:  7,
			count:  12,
			want:   "spiral-07.png",
		},
		{
			name:   "explicit output is numbered too",
			output: "art.png",
			source: "spiral.quilt",
			index:  2,
			count:  3,
			want:   "art-2.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.source, tt.index, tt.count)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadRenderDefaults(t *testing.T) {
	dir := t.TempDir()

	config := "width: 640\nheight: 480\nmax-depth: 99\nseed: pepper\n"
	if err := os.WriteFile(
		filepath.Join(dir, pkg.ConfigFile), []byte(config), 0o644,
	); err != nil {
		t.Fatalf("write config: %v", err)
	}

	def, err := loadRenderDefaults(filepath.Join(dir, "script.quilt"))
	if err != nil {
		t.Fatalf("loadRenderDefaults: %v", err)
	}

	if def.Width != 640 || def.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", def.Width, def.Height)
	}

	if def.MaxDepth != 99 {
		t.Errorf("max depth = %d, want 99", def.MaxDepth)
	}

	if def.Seed != "pepper" {
		t.Errorf("seed = %q, want %q", def.Seed, "pepper")
	}
}

func TestLoadRenderDefaults_MissingFile(t *testing.T) {
	def, err := loadRenderDefaults(filepath.Join(t.TempDir(), "script.quilt"))
	if err != nil {
		t.Fatalf("expected zero defaults for missing config, got %v", err)
	}

	if def != (renderDefaults{}) {
		t.Errorf("expected zero defaults, got %+v", def)
	}
}

func TestLoadRenderDefaults_Malformed(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(
		filepath.Join(dir, pkg.ConfigFile), []byte("width: [nope"), 0o644,
	); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := loadRenderDefaults(filepath.Join(dir, "script.quilt"))
	if err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}
