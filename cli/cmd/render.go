package cmd

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"os"
	"time"

	"github.com/quiltlang/quilt/lang"
	"github.com/quiltlang/quilt/log"
	"github.com/quiltlang/quilt/render"
)

// Render defaults used when neither flags nor quilt.yaml provide a value.
const (
	defaultCanvasSize = 400
	defaultMaxDepth   = 1500
)

// Render compiles a script and rasterizes its root shape to a PNG image.
type Render struct {
	Source string `arg:"" help:"Script source file or '-' for stdin"`

	Output   string `help:"Output PNG file (default: source stem + .png)" placeholder:"FILE" short:"o"`
	Width    int    `help:"Canvas width in pixels"                        placeholder:"PX"   short:"W"`
	Height   int    `help:"Canvas height in pixels"                       placeholder:"PX"   short:"H"`
	MaxDepth int    `help:"Maximum call depth"                            name:"max-depth"`
	Seed     string `help:"Seed string for deterministic output"          short:"s"`
	Count    int    `default:"1"                                          help:"Number of images to render" short:"n"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	def, err := loadRenderDefaults(r.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "render"))
	}

	r.merge(def)

	file, closeFile, err := openSource(r.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "render"))
	}
	defer closeFile()

	tree, err := lang.ParseReader(ctx, file,
		lang.WithParseLogger(log.Default()))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "render"))
	}

	opts := []lang.ReduceOption{
		lang.WithDimensions(r.Width, r.Height),
		lang.WithMaxDepth(r.MaxDepth),
		lang.WithLogger(log.Default()),
	}
	if r.Seed != "" {
		opts = append(opts, lang.WithSeed(sha256.Sum256([]byte(r.Seed))))
	}

	for i := 1; i <= r.Count; i++ {
		dest := outputPath(r.Output, r.Source, i, r.Count)

		err = r.renderOne(ctx, tree, dest, opts)
		if err != nil {
			return lang.WrapError(err).
				With(
					slog.String("command", "render"),
					slog.String("output", dest),
				)
		}
	}

	return nil
}

// merge fills unset flags from the per-directory defaults, then from the
// built-in defaults.
func (r *Render) merge(def renderDefaults) {
	if r.Width == 0 {
		r.Width = def.Width
	}

	if r.Height == 0 {
		r.Height = def.Height
	}

	if r.MaxDepth == 0 {
		r.MaxDepth = def.MaxDepth
	}

	if r.Seed == "" {
		r.Seed = def.Seed
	}

	if r.Output == "" {
		r.Output = def.Output
	}

	if r.Width == 0 {
		r.Width = defaultCanvasSize
	}

	if r.Height == 0 {
		r.Height = defaultCanvasSize
	}

	if r.MaxDepth == 0 {
		r.MaxDepth = defaultMaxDepth
	}
}

// renderOne reduces the tree to a shape, rasterizes it, and writes the
// encoded image to dest.
func (r *Render) renderOne(
	ctx context.Context,
	tree *lang.Tree,
	dest string,
	opts []lang.ReduceOption,
) error {
	start := time.Now()

	root, err := lang.Reduce(ctx, tree, opts...)
	if err != nil {
		return err
	}

	reduced := time.Now()

	pixmap := render.Render(root, r.Width, r.Height)

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	err = pixmap.WritePNG(out)
	if err != nil {
		_ = out.Close()

		return err
	}

	err = out.Close()
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "rendered image",
		slog.String("output", dest),
		slog.Int("width", r.Width),
		slog.Int("height", r.Height),
		slog.Duration("reduce", reduced.Sub(start)),
		slog.Duration("raster", time.Since(reduced)),
	)

	return nil
}
