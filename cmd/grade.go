package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smehta/examiner/internal/batch"
	"github.com/smehta/examiner/internal/calibration"
	"github.com/smehta/examiner/internal/evaluate"
	"github.com/smehta/examiner/internal/exam"
	"github.com/smehta/examiner/internal/llm"
	"github.com/smehta/examiner/internal/ocr"
	"github.com/smehta/examiner/internal/pipeline"
	"github.com/smehta/examiner/internal/store"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <sheet.txt> [sheet.txt...]",
	Short: "Grade recognized answer sheets against a paper and answer key",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paperPath, _ := cmd.Flags().GetString("paper")
		keyPath, _ := cmd.Flags().GetString("key")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		ocrConf, _ := cmd.Flags().GetFloat64("ocr-confidence")
		asJSON, _ := cmd.Flags().GetBool("json")

		paperText, err := os.ReadFile(paperPath)
		if err != nil {
			return fmt.Errorf("read question paper: %w", err)
		}
		questions := exam.ParsePaper(string(paperText))
		if len(questions) == 0 {
			return fmt.Errorf("no questions found in %s", paperPath)
		}

		key, err := exam.LoadAnswerKey(keyPath)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		// Learn per-course deltas from recorded examiner overrides.
		cal := calibration.New()
		if err := cal.Replay(ctx, st.EventRepo()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: replay overrides: %v\n", err)
		}

		grader := pipeline.New(
			ocr.NewFileRecognizer(ocrConf),
			evaluate.NewRouter(evaluate.NewLLMScorer(provider), cal),
			st.EventRepo(),
		)

		units := make([]batch.Unit[string], len(args))
		for i, path := range args {
			units[i] = batch.Unit[string]{ID: filepath.Base(path), Input: path}
		}

		report := batch.Run(ctx, units, func(ctx context.Context, u batch.Unit[string]) (*pipeline.SheetResult, error) {
			return grader.GradeSheet(ctx, u.Input, questions, key)
		}, concurrency)

		saveCalibrationSnapshot(ctx, st, cal)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		printReport(report)
		return nil
	},
}

func printReport(report *batch.Report[*pipeline.SheetResult]) {
	fmt.Printf("%-24s  %-12s  %-8s  %-7s  %-8s  %s\n",
		"Sheet", "Roll No", "Marks", "Pct", "Flagged", "Assessment")
	fmt.Println(line(84))

	for _, id := range sortedKeys(report.Results) {
		result := report.Results[id]
		fmt.Printf("%-24s  %-12s  %5.1f/%-3.0f  %6.1f%%  %-8d  %s\n",
			truncate(id, 24),
			result.Header.RollNumber,
			result.TotalMarks,
			result.MaxMarks,
			result.Percentage,
			result.Summary.FlaggedForReview,
			result.Summary.OverallAssessment,
		)
	}
	for _, id := range sortedKeys(report.Errors) {
		fmt.Printf("%-24s  FAILED: %s\n", truncate(id, 24), report.Errors[id])
	}

	fmt.Println(line(84))
	fmt.Printf("Graded %d/%d sheets in %.2fs (%.2fs per sheet)\n",
		report.Successful, report.Total, report.ElapsedTime, report.AvgTimePerUnit)
}

func init() {
	gradeCmd.Flags().String("paper", "", "Question paper text file (required)")
	gradeCmd.Flags().String("key", "", "Answer key JSON file (required)")
	gradeCmd.Flags().IntP("concurrency", "c", 0, "Max sheets graded in parallel (0 = CPU count)")
	gradeCmd.Flags().Duration("timeout", 0, "Overall deadline for the batch (0 = none)")
	gradeCmd.Flags().Float64("ocr-confidence", 0.9, "Recognition confidence to assume for text files")
	gradeCmd.Flags().Bool("json", false, "Emit the full report as JSON")

	gradeCmd.MarkFlagRequired("paper")
	gradeCmd.MarkFlagRequired("key")
}

func line(n int) string {
	return strings.Repeat("─", n)
}

// sortedKeys returns the map's keys in lexical order so report rows
// print deterministically.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// saveCalibrationSnapshot persists the calibration state so future
// inspection does not require a full override replay. Failure is not
// fatal: the override log remains the source of truth.
func saveCalibrationSnapshot(ctx context.Context, st *store.Store, cal *calibration.Calibrator) {
	repo := st.SnapshotRepo()
	if err := repo.Save(ctx, &store.Snapshot{Data: cal.Snapshot()}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save calibration snapshot: %v\n", err)
		return
	}
	if err := repo.Prune(ctx, 10); err != nil {
		fmt.Fprintf(os.Stderr, "warning: prune snapshots: %v\n", err)
	}
}
