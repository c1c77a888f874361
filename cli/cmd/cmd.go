// Package cmd implements the quilt subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/quiltlang/quilt/pkg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openSource opens the script at path, or returns os.Stdin for "-".
// The returned close function is a no-op for stdin.
func openSource(path string) (file *os.File, closer func(), err error) {
	if path == stdinSource {
		return os.Stdin, func() {}, nil
	}

	file, err = os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return file, func() { _ = file.Close() }, nil
}

// renderDefaults holds per-directory default render settings loaded from
// the optional quilt.yaml file next to the script. Flags override any value
// set here.
type renderDefaults struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	MaxDepth int    `yaml:"max-depth"`
	Seed     string `yaml:"seed"`
	Output   string `yaml:"output"`
}

// loadRenderDefaults reads pkg.ConfigFile from the directory containing the
// script source. A missing file yields zero defaults; a malformed file is
// an error.
func loadRenderDefaults(source string) (renderDefaults, error) {
	var def renderDefaults

	dir := "."
	if source != stdinSource {
		dir = filepath.Dir(source)
	}

	data, err := os.ReadFile(filepath.Join(dir, pkg.ConfigFile))
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}

		return def, err
	}

	err = yaml.Unmarshal(data, &def)
	if err != nil {
		return def, err
	}

	return def, nil
}

// outputPath resolves the destination file for a rendered image. An explicit
// output always wins; otherwise the source stem gains a ".png" extension,
// falling back to the command name for stdin sources. When count is greater
// than one, index is appended before the extension.
func outputPath(output, source string, index, count int) string {
	path := output
	if path == "" {
		stem := pkg.Name
		if source != stdinSource {
			base := filepath.Base(source)
			stem = strings.TrimSuffix(base, filepath.Ext(base))
		}

		path = stem + ".png"
	}

	if count > 1 {
		ext := filepath.Ext(path)
		width := len(strconv.Itoa(count))
		path = fmt.Sprintf("%s-%0*d%s",
			strings.TrimSuffix(path, ext), width, index, ext)
	}

	return path
}
