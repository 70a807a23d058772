package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smehta/examiner/internal/calibration"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show learned marking adjustments per course and question type",
	RunE: func(cmd *cobra.Command, args []string) error {
		course, _ := cmd.Flags().GetString("course")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cal := calibration.New()
		if err := cal.Replay(cmd.Context(), st.EventRepo()); err != nil {
			return fmt.Errorf("replay overrides: %w", err)
		}

		insights := cal.Insights(course)
		if len(insights) == 0 {
			fmt.Println(calibration.NoDataRecommendation)
			return nil
		}

		fmt.Printf("%-10s  %-8s  %8s  %8s  %s\n",
			"Course", "Type", "Samples", "Delta", "Recommendation")
		fmt.Println(line(96))
		for _, in := range insights {
			fmt.Printf("%-10s  %-8s  %8d  %+8.2f  %s\n",
				in.CourseCode, in.QuestionType, in.Samples, in.Delta, in.Recommendation)
		}
		return nil
	},
}

func init() {
	insightsCmd.Flags().String("course", "", "Filter by course code")
}
