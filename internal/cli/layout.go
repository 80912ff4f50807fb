package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pedigraph/pedigraph/pkg/pedigree"
	"github.com/pedigraph/pedigraph/pkg/pipeline"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		dot     bool
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout <file.ged|graph.json>",
		Short: "Compute x/y positions for a pedigree graph",
		Long: `Compute x/y positions for a pedigree graph.

The layout command takes a graph.json file (produced by 'parse') or a
raw GEDCOM file and assigns coordinates to every individual: one row
per generation, spouses side by side, parents centered over their
children. The output is the same graph JSON with positions filled in,
or Graphviz DOT with --dot.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, dot, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&dot, "dot", false, "write Graphviz DOT instead of JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cache")

	// Layout flags
	cmd.Flags().Float64Var(&opts.HSpacing, "h-spacing", 0, "horizontal slot width (default 120)")
	cmd.Flags().Float64Var(&opts.VSpacing, "v-spacing", 0, "vertical row height (default 100)")

	return cmd
}

// runLayout loads or parses the input, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, dot, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	laid, cacheHit, err := c.layoutInput(ctx, runner, input, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		if dot {
			outputPath = base + ".dot"
		} else {
			outputPath = base + ".layout.json"
		}
	}

	if err := writeGraph(laid, outputPath, dot); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(laid.NodeCount(), laid.LinkCount(), cacheHit)
	printNewline()
	printNextStep("Browse", "pedigraph browse --graph "+outputPath)

	return nil
}

// layoutInput computes a layout from either a raw GEDCOM file or an
// already parsed graph JSON file, chosen by extension. The reported
// cache hit is the layout stage's.
func (c *CLI) layoutInput(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (*pedigree.Graph, bool, error) {
	if strings.EqualFold(filepath.Ext(input), ".ged") {
		source, err := os.ReadFile(input)
		if err != nil {
			return nil, false, fmt.Errorf("read %s: %w", input, err)
		}
		opts.Source = string(source)
		result, err := runner.Execute(ctx, opts)
		if err != nil {
			return nil, false, fmt.Errorf("compute layout: %w", err)
		}
		return result.Graph, result.CacheInfo.LayoutHit, nil
	}

	g, err := pedigree.ReadGraphFile(input)
	if err != nil {
		return nil, false, fmt.Errorf("load graph %s: %w", input, err)
	}
	laid, cacheHit, err := runner.LayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, false, fmt.Errorf("compute layout: %w", err)
	}
	return laid, cacheHit, nil
}
