package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smehta/examiner/internal/calibration"
	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/store"
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Record an examiner correcting a machine-awarded mark",
	RunE: func(cmd *cobra.Command, args []string) error {
		roll, _ := cmd.Flags().GetString("roll")
		course, _ := cmd.Flags().GetString("course")
		question, _ := cmd.Flags().GetString("question")
		qtype, _ := cmd.Flags().GetString("type")
		machine, _ := cmd.Flags().GetFloat64("machine")
		human, _ := cmd.Flags().GetFloat64("human")
		max, _ := cmd.Flags().GetFloat64("max")

		if !exam.AnswerType(qtype).Valid() {
			return fmt.Errorf("unknown question type %q", qtype)
		}
		if human < 0 || human > max {
			return fmt.Errorf("human marks %.1f outside [0, %.1f]", human, max)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		err = st.EventRepo().AppendOverride(ctx, store.OverrideEventData{
			RollNumber:     roll,
			CourseCode:     course,
			QuestionNumber: question,
			QuestionType:   qtype,
			MachineMarks:   machine,
			HumanMarks:     human,
			MaxMarks:       max,
		})
		if err != nil {
			return fmt.Errorf("record override: %w", err)
		}

		// Show where the bucket's delta lands with this sample included.
		cal := calibration.New()
		if err := cal.Replay(ctx, st.EventRepo()); err != nil {
			return fmt.Errorf("replay overrides: %w", err)
		}
		key := calibration.Key{CourseCode: course, QuestionType: exam.AnswerType(qtype)}
		delta, samples := cal.Delta(key)
		fmt.Printf("Recorded. %s/%s delta is now %+.2f over %d samples.\n",
			course, qtype, delta, samples)
		return nil
	},
}

func init() {
	overrideCmd.Flags().String("roll", "", "Student roll number")
	overrideCmd.Flags().String("course", "", "Course code")
	overrideCmd.Flags().String("question", "", "Question number")
	overrideCmd.Flags().String("type", "text", "Question type (text, math, code, diagram, choice)")
	overrideCmd.Flags().Float64("machine", 0, "Machine-awarded marks")
	overrideCmd.Flags().Float64("human", 0, "Examiner-awarded marks")
	overrideCmd.Flags().Float64("max", 0, "Maximum marks for the question")

	overrideCmd.MarkFlagRequired("roll")
	overrideCmd.MarkFlagRequired("course")
	overrideCmd.MarkFlagRequired("question")
	overrideCmd.MarkFlagRequired("human")
	overrideCmd.MarkFlagRequired("max")
}
