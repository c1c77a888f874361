package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/quiltlang/quilt/lang"
	"github.com/quiltlang/quilt/log"
)

// Minify rewrites a script with every definition on a single line and all
// optional whitespace removed. The result parses back to the same tree.
type Minify struct {
	Source string `arg:"" help:"Script source file or '-' for stdin"`

	Output string `help:"Output file (default: stdout)" placeholder:"FILE" short:"o"`
}

// Run executes the minify command.
func (m *Minify) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, closeFile, err := openSource(m.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "minify"))
	}
	defer closeFile()

	tree, err := lang.ParseReader(ctx, file,
		lang.WithParseLogger(log.Default()))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "minify"))
	}

	text := lang.Minify(tree)

	if m.Output == "" {
		var out io.Writer = os.Stdout
		if ktx := kongContextFrom(ctx); ktx != nil {
			out = ktx.Stdout
		}

		_, err = fmt.Fprintln(out, text)
		if err != nil {
			return lang.WrapError(err).
				With(slog.String("command", "minify"))
		}

		return nil
	}

	err = os.WriteFile(m.Output, []byte(text+"\n"), 0o644)
	if err != nil {
		return lang.WrapError(err).
			With(
				slog.String("command", "minify"),
				slog.String("output", m.Output),
			)
	}

	log.DebugContext(ctx, "minified script",
		slog.String("output", m.Output),
		slog.Int("bytes", len(text)+1),
	)

	return nil
}
