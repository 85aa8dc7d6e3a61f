package commands

import (
	"fmt"
	"strings"

	"prereqmap/lib/serviceutil"
	"prereqmap/lib/sqliteutil"
	"prereqmap/services/coursegraph/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(programsCmd)
}

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "Lists scraped programs and the courses their structures reference.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		out, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		qry := db.New(out)
		programs, err := qry.ListPrograms(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list programs", err)
		}

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Code", "Name", "Courses"})
		for _, program := range programs {
			courses, err := qry.ListProgramCourses(cmd.Context(), program.Code)
			if err != nil {
				serviceutil.Fatal("failed to list program courses", err)
			}
			t.AppendRow(table.Row{program.Code, program.Name, strings.Join(courses, " ")})
		}
		fmt.Println(t.Render())
	},
}
