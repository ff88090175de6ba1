package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kusasa/backend/agent"
	"github.com/kusasa/backend/config"
	"github.com/kusasa/backend/intake"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one CV and print ranked job matches",
	Long:  "Runs profile extraction and job matching once for a CV file (PDF, DOCX, TXT) or pasted text and prints the ranked results.",
	RunE:  runAnalyze,
}

var (
	analyzeFile string
	analyzeText string
	analyzeJSON bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a CV file (PDF, DOCX or TXT)")
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "CV text to analyze")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the results view as JSON")
	analyzeCmd.MarkFlagsMutuallyExclusive("file", "text")
	analyzeCmd.MarkFlagsOneRequired("file", "text")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	input, err := a.inputEvent(analyzeFile, analyzeText)
	if err != nil {
		if isInputError(err) {
			return errors.New(intake.UserMessage(err))
		}
		return err
	}

	view, err := a.analyzeOnce(ctx, input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	printResults(out, view)
	return nil
}

// inputEvent turns the CLI flags into the same input event the API dispatches
func (a *app) inputEvent(path, text string) (agent.Event, error) {
	if path == "" {
		if _, err := intake.FromText(text); err != nil {
			return nil, err
		}
		return agent.TextChanged{Text: text}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV file: %w", err)
	}
	if info.Size() > a.normalizer.MaxBytes() {
		return nil, intake.ErrFileTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV file: %w", err)
	}

	selection, err := a.normalizer.Normalize(intake.Upload{
		Name: filepath.Base(path),
		Data: data,
	})
	if err != nil {
		return nil, err
	}
	return agent.FileSelected{Selection: selection}, nil
}

// analyzeOnce drives a fresh controller through one run
func (a *app) analyzeOnce(ctx context.Context, input agent.Event) (*agent.ResultsView, error) {
	ctrl := agent.NewController(agent.NewState())
	for _, ev := range []agent.Event{agent.Started{}, input} {
		if _, err := ctrl.Dispatch(ev); err != nil {
			return nil, err
		}
	}

	if err := a.analyzer.Analyze(ctx, ctrl); err != nil {
		var failure *agent.StageFailure
		if errors.As(err, &failure) {
			return nil, errors.New(failure.Message())
		}
		return nil, err
	}

	view, ok := agent.BuildResultsView(ctrl.State(), a.catalog)
	if !ok {
		return nil, fmt.Errorf("analysis finished without results")
	}
	return view, nil
}

func isInputError(err error) bool {
	var extractErr *intake.ExtractionError
	return errors.Is(err, intake.ErrFileTooLarge) ||
		errors.Is(err, intake.ErrUnsupportedFormat) ||
		errors.Is(err, intake.ErrEmptyInput) ||
		errors.As(err, &extractErr)
}

func printResults(w io.Writer, view *agent.ResultsView) {
	p := view.Profile
	fmt.Fprintf(w, "Profile: %s\n", p.Summary)
	fmt.Fprintf(w, "Experience: %g years\n", p.YearsExperience)
	if len(p.SuggestedRoles) > 0 {
		fmt.Fprintf(w, "Suggested roles: %s\n", strings.Join(p.SuggestedRoles, ", "))
	}
	for _, s := range view.SkillChart {
		fmt.Fprintf(w, "  %-24s %3d\n", s.Name, s.Strength)
	}

	if len(view.Matches) == 0 {
		fmt.Fprintln(w, "\nNo matching jobs found.")
		return
	}

	fmt.Fprintf(w, "\nTop matches (%d):\n", len(view.Matches))
	for i, m := range view.Matches {
		fmt.Fprintf(w, "\n%d. %s  %s at %s (%s, %s)\n", i+1, m.ScoreLabel, m.Job.Title, m.Job.Company, m.Job.Location, m.Job.Type)
		if m.Reasoning != "" {
			fmt.Fprintf(w, "   %s\n", m.Reasoning)
		}
		if len(m.MissingSkills) > 0 {
			fmt.Fprintf(w, "   Missing: %s\n", strings.Join(m.MissingSkills, ", "))
		}
		for _, c := range m.Courses {
			fmt.Fprintf(w, "   Course: %s (%s, %s, %s) %s\n", c.Title, c.Provider, c.Duration, c.Cost, c.URL)
		}
		for _, l := range m.Job.ApplicationLinks {
			fmt.Fprintf(w, "   Apply on %s: %s\n", l.Source, l.URL)
		}
	}
}
