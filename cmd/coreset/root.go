// Command coreset loads a DIMACS shortest-paths graph, runs the best-of-N
// facility sampler and reports the result.
//
//	coreset --graph roads.gr --k 8 --seed 42 --trials 5 \
//	        --out assignments.txt --costs-mat costs.mat
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coreset/coreset"
	"github.com/katalvlaran/coreset/dimacs"
	"github.com/katalvlaran/coreset/diskmat"
)

type runOptions struct {
	graphPath string
	k         int
	seed      int64
	trials    int
	outPath   string
	matPath   string
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "coreset",
		Short: "Sample k-median facility sets from a DIMACS graph",
		Long: `Load a weighted graph in DIMACS shortest-paths format, run the
best-of-N bicriteria facility sampler and print the facility count and
total connection cost. Optionally dump per-vertex assignments as text
and per-vertex costs as a file-backed dense matrix.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.graphPath, "graph", "", "path to the DIMACS .gr input (required)")
	fs.IntVar(&opts.k, "k", 1, "number of medians the sample targets")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 selects the default seed)")
	fs.IntVar(&opts.trials, "trials", 1, "number of sampling trials; the cheapest wins")
	fs.StringVar(&opts.outPath, "out", "", "optional path for 'vertex facilityIndex cost' lines")
	fs.StringVar(&opts.matPath, "costs-mat", "", "optional path for the n×1 cost matrix")
	cobra.CheckErr(cmd.MarkFlagRequired("graph"))

	return cmd
}

func run(cmd *cobra.Command, opts *runOptions) error {
	f, err := os.Open(opts.graphPath)
	if err != nil {
		return errors.Wrap(err, "open graph")
	}
	g, err := dimacs.ReadGraph(f)
	f.Close()
	if err != nil {
		return errors.Wrapf(err, "parse %s", opts.graphPath)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "graph: %d vertices, %d edges, total length %g\n",
		g.VertexCount(), g.EdgeCount(), dimacs.TotalWeight(g))

	res, err := coreset.SampleBest(g, opts.k, opts.seed, opts.trials)
	if err != nil {
		return errors.Wrap(err, "sample")
	}
	fmt.Fprintf(out, "sampled %d facilities, total connection cost %g\n",
		len(res.Facilities), res.TotalCost)

	if opts.outPath != "" {
		if err = writeAssignments(opts.outPath, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "assignments written to %s\n", opts.outPath)
	}
	if opts.matPath != "" {
		if err = writeCostMatrix(opts.matPath, res); err != nil {
			return err
		}
		fmt.Fprintf(out, "cost matrix written to %s\n", opts.matPath)
	}

	return nil
}

// sortedVertexIDs returns the result's vertex IDs in lexicographic order so
// both dump formats agree on row order.
func sortedVertexIDs(res *coreset.Result) []string {
	ids := make([]string, 0, len(res.Costs))
	for v := range res.Costs {
		ids = append(ids, v)
	}
	sort.Strings(ids)
	return ids
}

func writeAssignments(path string, res *coreset.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create assignments file")
	}
	defer f.Close()

	for _, v := range sortedVertexIDs(res) {
		if _, err = fmt.Fprintf(f, "%s %d %g\n", v, res.Assignments[v], res.Costs[v]); err != nil {
			return errors.Wrap(err, "write assignments")
		}
	}
	return nil
}

func writeCostMatrix(path string, res *coreset.Result) error {
	m, err := diskmat.Create(path, len(res.Costs), 1)
	if err != nil {
		return err
	}
	defer m.Close()

	for i, v := range sortedVertexIDs(res) {
		if err = m.Set(i, 0, res.Costs[v]); err != nil {
			return err
		}
	}
	return m.Sync()
}
