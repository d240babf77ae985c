package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kpaths/dijkstra"
)

type dijkstraFlags struct {
	source string
	target string
}

func newDijkstraCmd(gf *globalFlags) *cobra.Command {
	df := &dijkstraFlags{}
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Single-source shortest distances, or one shortest path with --target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDijkstra(cmd, gf, df)
		},
	}
	cmd.Flags().StringVar(&df.source, "source", "", "source vertex ID (required)")
	cmd.Flags().StringVar(&df.target, "target", "", "print one shortest path to this vertex")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

// distance is one row of the distance table.
type distance struct {
	Vertex      string  `json:"vertex"`
	Distance    float64 `json:"distance"`
	Predecessor string  `json:"predecessor,omitempty"`
	Reachable   bool    `json:"reachable"`
}

func runDijkstra(cmd *cobra.Command, gf *globalFlags, df *dijkstraFlags) error {
	env, err := gf.setup(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	ctx := cmd.Context()
	g, err := env.loadGraph(ctx)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	if df.target != "" {
		p, ok, err := dijkstra.ShortestPath(ctx, g, df.source, df.target)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "no path")
			return nil
		}
		if gf.jsonOutput {
			return writeJSON(w, p)
		}
		fmt.Fprintf(w, "%g\t%s\n", p.TotalCost, strings.Join(p.NodeIDs, " -> "))
		return nil
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(df.source), dijkstra.WithReturnPath(), dijkstra.WithContext(ctx))
	if err != nil {
		return err
	}
	rows := make([]distance, 0, len(dist))
	for _, id := range g.Vertices() {
		d := dist[id]
		rows = append(rows, distance{Vertex: id, Distance: d, Predecessor: prev[id], Reachable: !dijkstra.Unreachable(d)})
	}
	if gf.jsonOutput {
		for i := range rows {
			if !rows[i].Reachable {
				rows[i].Distance = -1
			}
		}
		return writeJSON(w, rows)
	}
	for _, r := range rows {
		if !r.Reachable {
			fmt.Fprintf(w, "%s\tunreachable\n", r.Vertex)
			continue
		}
		fmt.Fprintf(w, "%s\t%g\t%s\n", r.Vertex, r.Distance, r.Predecessor)
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
