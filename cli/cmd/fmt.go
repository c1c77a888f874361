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

// Fmt rewrites a script in canonical layout: spaced operators, parentheses
// only where binding strength demands them, and block bodies expanded under
// their introducers. The result parses back to the same tree.
type Fmt struct {
	Source string `arg:"" help:"Script source file or '-' for stdin"`

	Output string `help:"Output file (default: stdout)" placeholder:"FILE" short:"o"`
	Indent int    `help:"Spaces per indent level" default:"2"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	file, closeFile, err := openSource(f.Source)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "fmt"))
	}
	defer closeFile()

	tree, err := lang.ParseReader(ctx, file,
		lang.WithParseLogger(log.Default()))
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "fmt"))
	}

	text := lang.Format(tree, f.Indent)

	if f.Output == "" {
		var out io.Writer = os.Stdout
		if ktx := kongContextFrom(ctx); ktx != nil {
			out = ktx.Stdout
		}

		_, err = fmt.Fprint(out, text)
		if err != nil {
			return lang.WrapError(err).
				With(slog.String("command", "fmt"))
		}

		return nil
	}

	err = os.WriteFile(f.Output, []byte(text), 0o644)
	if err != nil {
		return lang.WrapError(err).
			With(
				slog.String("command", "fmt"),
				slog.String("output", f.Output),
			)
	}

	log.DebugContext(ctx, "formatted script",
		slog.String("output", f.Output),
		slog.Int("bytes", len(text)),
	)

	return nil
}
