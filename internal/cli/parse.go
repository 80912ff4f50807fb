package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	pkgerrors "github.com/pedigraph/pedigraph/pkg/errors"
	"github.com/pedigraph/pedigraph/pkg/pedigree"
	"github.com/pedigraph/pedigraph/pkg/pipeline"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output  string // output file path (stdout if empty)
	dot     bool   // write Graphviz DOT instead of JSON
	noCache bool   // disable the result cache
	refresh bool   // reparse even when cached
}

// parseCommand creates the parse command.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{}

	cmd := &cobra.Command{
		Use:   "parse <file.ged>",
		Short: "Build a pedigree graph from a GEDCOM file",
		Long: `Build a pedigree graph from a GEDCOM file.

The parser reads the individual and family records, links spouses and
children, and assigns every person to a generation. Malformed lines are
skipped and references to missing records are dropped, so parsing never
fails on imperfect exports.

The graph is written as JSON (or Graphviz DOT with --dot) to stdout or
the file given with --output.

Examples:
  pedigraph parse family.ged                 # JSON to stdout
  pedigraph parse family.ged -o family.json  # JSON to file
  pedigraph parse family.ged --dot           # DOT to stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.dot, "dot", false, "write Graphviz DOT instead of JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")

	return cmd
}

// runParse reads the GEDCOM file, builds the graph, and writes output.
func (c *CLI) runParse(ctx context.Context, input string, opts parseOpts) error {
	if opts.output != "" {
		if err := pkgerrors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	source, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	if err := pkgerrors.ValidateSource(string(source)); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	c.Logger.Infof("Parsing %s", input)
	prog := newProgress(c.Logger)

	g, cacheHit, err := runner.ParseWithCacheInfo(ctx, pipeline.Options{
		Source:  string(source),
		Refresh: opts.refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	prog.done(fmt.Sprintf("Parsed %d individuals with %d links", g.NodeCount(), g.LinkCount()))

	if g.Stats.DroppedRefs > 0 {
		printWarning("Dropped %d references to missing records", g.Stats.DroppedRefs)
	}

	if err := writeGraph(g, opts.output, opts.dot); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Parse complete")
		printFile(opts.output)
		printStats(g.NodeCount(), g.LinkCount(), cacheHit)
		printNewline()
		printNextStep("Compute layout", "pedigraph layout "+opts.output)
	}
	return nil
}

// writeGraph serializes g to the specified path (or stdout if empty),
// as DOT when dot is set and JSON otherwise.
func writeGraph(g *pedigree.Graph, path string, dot bool) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if dot {
		_, err = io.WriteString(out, pedigree.ToDOT(g))
		return err
	}
	return pedigree.WriteGraph(g, out)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
