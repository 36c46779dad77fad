package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jsontree"
	"github.com/creachadair/jsontree/ast"
	"github.com/creachadair/jsontree/ast/cursor"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	plain     bool
	yaml      bool
	path      string
	sizeHint  int
	color     string
	verbosity int
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "jsontree [flags] [file ...]",
		Short: "Render JSON values as box-drawing trees",
		Long: `Render each input as a tree whose lines are joined by box-drawing
connectors. Object members are shown by key, array elements that are
containers by their position, and arrays are annotated with their length.

Input is JSON (comments and trailing commas are allowed) unless --yaml is
set. With no files, or for a file named "-", input is read from stdin.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, &opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fs := cmd.Flags()
	fs.BoolVar(&opts.plain, "plain", false, "Indent with spaces instead of connectors")
	fs.BoolVar(&opts.yaml, "yaml", false, "Parse input as YAML")
	fs.StringVar(&opts.path, "path", "", `Render only the value at this path (e.g. "items[0].name")`)
	fs.IntVar(&opts.sizeHint, "size-hint", 0, "Initial output buffer size in bytes (0 for default)")
	fs.StringVar(&opts.color, "color", "auto", "Color connectors: auto, always, or never")
	fs.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	return cmd
}

func runTree(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()
	style, err := newConnectorStyle(out, opts.color)
	if err != nil {
		return err
	}
	path, err := cursor.ParsePath(opts.path)
	if err != nil {
		return fmt.Errorf("invalid --path: %w", err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	r := jsontree.Renderer{Plain: opts.plain, SizeHint: opts.sizeHint}
	for _, name := range args {
		data, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		log.Debug().Str("input", name).Int("bytes", len(data)).Msg("read input")

		v, err := parseInput(data, opts.yaml)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c := cursor.New(v).Down(path...)
		if err := c.Err(); err != nil {
			return fmt.Errorf("%s: path %q: %w", name, opts.path, err)
		}
		tree, err := r.Render(c.Value())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if !opts.plain {
			tree = colorize(tree, style)
		}
		log.Info().Str("input", name).Int("bytes", len(tree)).Msg("rendered tree")
		if _, err := io.WriteString(out, tree+"\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}

func parseInput(data []byte, isYAML bool) (ast.Value, error) {
	if isYAML {
		return ast.ParseYAML(bytes.NewReader(data))
	}
	return ast.ParseBytes(data)
}
