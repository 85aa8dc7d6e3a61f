package commands

import (
	"fmt"
	"strings"

	"prereqmap/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(subjectsCmd)
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects [school]",
	Short: "Lists handbook subject areas, or the courses inside one subject area.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		hb, _, err := createClients(cfg)
		if err != nil {
			serviceutil.Fatal("failed to initialize clients", err)
		}
		ctx := serviceutil.SignalContext()

		t := table.NewWriter()

		if len(args) == 1 {
			school := strings.ToUpper(args[0])
			courses, err := hb.Courses(ctx, school, flagYear)
			if err != nil {
				serviceutil.Fatal("failed to scrape subject area", err)
			}

			t.AppendHeader(table.Row{"Code", "Name"})
			for _, course := range courses {
				t.AppendRow(table.Row{course.Code, course.Name})
			}
			fmt.Println(t.Render())
			return
		}

		areas, err := hb.SubjectAreas(ctx, flagYear)
		if err != nil {
			serviceutil.Fatal("failed to scrape subject areas", err)
		}

		t.AppendHeader(table.Row{"Area", "Name"})
		for _, area := range areas {
			t.AppendRow(table.Row{area.Code, area.Name})
		}
		fmt.Println(t.Render())
	},
}
