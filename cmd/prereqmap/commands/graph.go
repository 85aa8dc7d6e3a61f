package commands

import (
	"fmt"
	"os"

	"prereqmap/lib/serviceutil"
	"prereqmap/lib/sqliteutil"
	"prereqmap/services/coursegraph"
	"prereqmap/services/coursegraph/db"

	"github.com/spf13/cobra"
)

var (
	graphOut        *string
	graphCoreqs     *bool
	graphExclusions *bool
	graphSummary    *bool
)

func init() {
	graphOut = graphCmd.Flags().String("out", "prereqs.dot", "Path to write the graphviz dot file to.")
	graphCoreqs = graphCmd.Flags().Bool("coreqs", false, "Include corequisite edges.")
	graphExclusions = graphCmd.Flags().Bool("exclusions", false, "Include exclusion edges.")
	graphSummary = graphCmd.Flags().Bool("summary", true, "Print a per-subject-area relation summary.")
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph [--out <path/to/graph.dot>]",
	Short: "Builds the undirected prerequisite graph from scraped data and writes it as dot.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		out, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		relations, err := db.New(out).ListRelations(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list relations", err)
		}

		kinds := []db.RelationKind{db.RELATION_PREREQUISITE}
		if *graphCoreqs {
			kinds = append(kinds, db.RELATION_COREQUISITE)
		}
		if *graphExclusions {
			kinds = append(kinds, db.RELATION_EXCLUSION)
		}

		g := coursegraph.Build(relations, kinds...)

		f, err := os.Create(*graphOut)
		if err != nil {
			serviceutil.Fatal("failed to create output file", err)
		}
		defer f.Close()

		err = g.WriteDOT(f, "prereqs")
		if err != nil {
			serviceutil.Fatal("failed to render graph", err)
		}

		fmt.Printf(
			"wrote %s: %d courses, %d relationships\n",
			*graphOut, g.NodeCount(), g.EdgeCount(),
		)
		if *graphSummary {
			fmt.Print(coursegraph.Summary(relations))
		}
	},
}
