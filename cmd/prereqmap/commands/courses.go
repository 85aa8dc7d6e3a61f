package commands

import (
	"fmt"

	"prereqmap/lib/serviceutil"
	"prereqmap/lib/sqliteutil"
	"prereqmap/services/coursegraph/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var coursesAllSchools *bool

func init() {
	coursesAllSchools = coursesCmd.Flags().Bool("all", false, "List courses from every scraped school, not just --school.")
	rootCmd.AddCommand(coursesCmd)
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Lists the courses currently stored in the database.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		out, err := sqliteutil.OpenDB(db.Schema, cfg.Database)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		qry := db.New(out)

		var courses []db.Course
		if *coursesAllSchools {
			courses, err = qry.ListCourses(cmd.Context())
		} else {
			courses, err = qry.ListCoursesBySchool(cmd.Context(), flagSchool)
		}
		if err != nil {
			serviceutil.Fatal("failed to list courses", err)
		}

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Code", "Name", "Level", "Campus"})
		for _, course := range courses {
			level := "UG"
			if course.Postgraduate != 0 {
				level = "PG"
			}
			t.AppendRow(table.Row{course.Code, course.Name, level, course.Campus})
		}
		fmt.Println(t.Render())
	},
}
