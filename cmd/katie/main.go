// Command katie builds a triangulation of a 3- or 4-manifold from a
// decorated link diagram: a PD code plus a framing sequence.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/kirby/kirbygraph"
	"github.com/katalvlaran/kirby/link"
	"github.com/katalvlaran/kirby/tri"
)

// version is stamped by the release tooling.
var version = "0.3.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the CLI surface.
func newRootCmd() *cobra.Command {
	var (
		dim3        bool
		dim4        bool
		outputGraph bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:     `katie "<pd-code>" "<framings>"`,
		Short:   "Build a triangulation of a 3- or 4-manifold from a decorated link diagram",
		Version: version,
		Long: `katie turns a planar-diagram code and a framing sequence into a
triangulated manifold.

The PD code is a list of 4-tuples wrapped in quotation marks; any
punctuation works as a separator, and 0-indexed codes (as printed by
the SnapPy console) are detected and accepted. The framing sequence
holds one whitespace-separated token per link component, in component
order: an integer gives a 2-handle's framing, while 'x' or '.' marks a
1-handle. 1-handles must be drawn as plain unknots.

By default katie attaches 1- and 2-handles along the link and prints
the isomorphism signature of the resulting 4-manifold triangulation;
with --dim3 it performs integer Dehn surgery and triangulates the
3-manifold instead.

When a framing is negative, put "--" before the positional arguments
so the framing is not mistaken for a flag:

  katie --dim3 -- "(1,2,2,1)" "-3"`,
		Example: `  katie "PD: [(4,8,1,9),(9,3,10,4),(1,5,2,6),(6,2,7,3),(7,5,8,10)]" "x 0"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			dim := 4
			if dim3 && !dim4 {
				dim = 3
			}

			return run(cmd, args[0], args[1], dim, outputGraph, verbose)
		},
	}

	cmd.Flags().BoolVarP(&dim3, "dim3", "3", false,
		"build a 3-manifold via integer Dehn surgery")
	cmd.Flags().BoolVarP(&dim4, "dim4", "4", false,
		"build a 4-manifold by attaching 1- and 2-handles (default)")
	cmd.Flags().BoolVarP(&outputGraph, "graph", "g", false,
		"output the edge-coloured graph's gluing list instead of an isomorphism signature")
	cmd.Flags().BoolVarP(&verbose, "verbose", "V", false,
		"display progress information during the construction")
	cmd.Flags().BoolP("help", "?", false, "display this help")
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

// run drives parse → frame → assemble → emit.
func run(cmd *cobra.Command, pdText, framingText string, dim int, outputGraph, verbose bool) error {
	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}

	code, err := link.ParseCode(pdText)
	if err != nil {
		return err
	}
	l, err := link.FromCode(code)
	if err != nil {
		return err
	}
	fr, err := link.ParseFramings(framingText)
	if err != nil {
		return err
	}
	d, err := link.NewDiagram(l, fr)
	if err != nil {
		return err
	}
	logger.Info().
		Int("crossings", len(code)).
		Int("components", l.CountComponents()).
		Int("dim", dim).
		Msg("diagram parsed")

	framed, err := d.SelfFrame(dim)
	if err != nil {
		return err
	}
	logger.Info().Int("crossings", len(framed.Link().Code())).Msg("self-framing complete")

	g, err := kirbygraph.Build(framed, dim, kirbygraph.WithLogger(&logger))
	if err != nil {
		return err
	}

	if outputGraph {
		fmt.Fprintln(cmd.ErrOrStderr(), "Here is the edge list of the coloured graph:")
		gl := g.GluingList()
		for i, e := range gl {
			if i+1 < len(gl) {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d, %d, %d],\n", e.From, e.To, e.Facet)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d, %d, %d]\n", e.From, e.To, e.Facet)
			}
		}

		return nil
	}

	t, err := tri.New(dim)
	if err != nil {
		return err
	}
	t.NewSimplices(g.Size())
	for _, e := range g.GluingList() {
		if err := t.Join(e.From, e.Facet, e.To); err != nil {
			return err
		}
	}
	if !t.IsValid() {
		return fmt.Errorf("%w: the final gluing is inconsistent", tri.ErrInvalidGluing)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Here is the isomorphism signature:")
	fmt.Fprintln(cmd.OutOrStdout(), t.IsoSig())

	return nil
}
