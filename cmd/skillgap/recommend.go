package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"skill-gap/internal/dataset"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/logging"
	"skill-gap/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	recommendUserID int
	gapsUserID      int
	gapsJobID       int
	outputJSON      bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend skills and matching jobs for a user",
	RunE:  runRecommend,
}

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "List a user's skill gaps, optionally against one job",
	RunE:  runGaps,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendUserID, "user", "u", 0, "User ID (required)")
	gapsCmd.Flags().IntVarP(&gapsUserID, "user", "u", 0, "User ID (required)")
	gapsCmd.Flags().IntVarP(&gapsJobID, "job", "j", 0, "Job ID to compare against")
	for _, c := range []*cobra.Command{recommendCmd, gapsCmd} {
		c.Flags().BoolVar(&outputJSON, "json", false, "Print JSON instead of text")
		if err := c.MarkFlagRequired("user"); err != nil {
			panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
		}
	}

	rootCmd.AddCommand(recommendCmd, gapsCmd)
}

func loadRecommendations(ctx context.Context) (*usecase.Recommendations, error) {
	snap, err := dataset.Load(ctx, usersPath, jobsPath)
	if err != nil {
		return nil, fmt.Errorf("load data files: %w", err)
	}
	store := dataset.NewStore(snap)
	return usecase.NewRecommendationUsecase(store, nil, logging.WithComponent("cli")), nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	uc, err := loadRecommendations(cmd.Context())
	if err != nil {
		return err
	}
	rec, err := uc.RecommendSkills(cmd.Context(), recommendUserID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return writeJSON(out, rec)
	}

	fmt.Fprintln(out, rec.Analysis)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Market recommendations: %s\n", joinOrNone(rec.MarketRecommendations))
	fmt.Fprintf(out, "Similar users also know: %s\n", joinOrNone(rec.CollaborativeRecommendations))
	fmt.Fprintln(out, "\nTop job matches:")
	for _, m := range rec.JobMatches {
		fmt.Fprintf(out, "  %5.1f%%  #%d %s at %s\n", m.MatchScore*100, m.ID, m.Title, m.Company)
	}
	return nil
}

func runGaps(cmd *cobra.Command, _ []string) error {
	uc, err := loadRecommendations(cmd.Context())
	if err != nil {
		return err
	}

	var jobID *int
	if cmd.Flags().Changed("job") {
		jobID = &gapsJobID
	}
	gaps, err := uc.AnalyzeSkillGaps(cmd.Context(), gapsUserID, jobID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		return writeJSON(out, gaps)
	}
	if len(gaps) == 0 {
		fmt.Fprintln(out, "No skill gaps found.")
		return nil
	}
	for _, g := range gaps {
		fmt.Fprintf(out, "%-9s %.2f  %s\n", matching.ImportanceLevel(g.Importance), g.Importance, g.Skill)
	}
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
