package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List graded answers flagged for manual review",
	RunE: func(cmd *cobra.Command, args []string) error {
		course, _ := cmd.Flags().GetString("course")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.EventRepo().ReviewQueue(cmd.Context(), course, limit)
		if err != nil {
			return fmt.Errorf("query review queue: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("Nothing flagged for review.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-8s  %-4s  %-8s  %8s  %-6s\n",
			"Timestamp", "Roll No", "Course", "Q", "Type", "Marks", "Level")
		fmt.Println(line(80))
		for _, r := range records {
			fmt.Printf("%-19s  %-12s  %-8s  %-4s  %-8s  %4.1f/%-3.0f  %-6s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.RollNumber,
				r.CourseCode,
				r.QuestionNumber,
				r.QuestionType,
				r.CalibratedMarks,
				r.MaxMarks,
				r.ConfidenceLevel,
			)
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().String("course", "", "Filter by course code")
	reviewCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
}
