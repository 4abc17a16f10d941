package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/girth/converters"
	"github.com/katalvlaran/girth/core"
	"github.com/katalvlaran/girth/cycle"
)

// ErrConflictingQuery is returned when both --through and --closest are set.
var ErrConflictingQuery = errors.New("girth: --through and --closest are mutually exclusive")

func newCycleCmd(a *app) *cobra.Command {
	var (
		flags     genFlags
		graphPath string
		through   int
		closest   []float64
	)
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Report the shortest cycle of a graph and optionally through one vertex",
		Long: `cycle loads a graph document (--graph) or generates one from the
generation flags, prints the graph-wide shortest cycle, and with --through or
--closest also the cycle through that vertex. An absent cycle prints as [].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			throughSet := cmd.Flags().Changed("through")
			closestSet := cmd.Flags().Changed("closest")
			if throughSet && closestSet {
				return ErrConflictingQuery
			}
			if closestSet && len(closest) != 2 {
				return fmt.Errorf("--closest wants x,y, got %d values", len(closest))
			}

			g, err := a.loadOrGenerate(cmd, &flags, graphPath)
			if err != nil {
				return err
			}
			f, err := cycle.NewFinder(g, cycle.WithLogger(a.logger))
			if err != nil {
				return err
			}

			report := converters.Report{Overall: f.Overall()}
			switch {
			case throughSet:
				c, err := f.Through(through)
				if err != nil {
					return err
				}
				report.Through = &converters.ThroughReport{Vertex: through, Cycle: c}
			case closestSet:
				v, c, err := f.ThroughClosest(closest[0], closest[1])
				if err != nil {
					return err
				}
				if v != core.None {
					report.Through = &converters.ThroughReport{Vertex: v, Cycle: c}
				}
			}

			data, err := converters.EncodeCycle(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph document to load instead of generating one")
	cmd.Flags().IntVar(&through, "through", 0, "vertex whose cycle to report")
	cmd.Flags().Float64SliceVar(&closest, "closest", nil, "report the cycle through the vertex nearest to x,y")

	return cmd
}

// loadOrGenerate reads the document at path, or generates a graph when path
// is empty.
func (a *app) loadOrGenerate(cmd *cobra.Command, flags *genFlags, path string) (*core.Graph, error) {
	if path == "" {
		cfg, err := flags.apply(cmd, a.cfg)
		if err != nil {
			return nil, err
		}

		return a.generate(cfg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph %s: %w", path, err)
	}
	g, err := converters.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("graph %s: %w", path, err)
	}
	a.logger.Debug("graph loaded", "path", path, "vertices", g.Order(), "edges", g.Size())

	return g, nil
}
