package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slidecast/internal/extract"
	"slidecast/internal/planner"
)

var (
	planTranscript string
	planDoc        string
	planOutput     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a timeline plan from a transcript JSON and a slide document",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planTranscript, "json", "", "path to transcription JSON (required)")
	planCmd.Flags().StringVar(&planDoc, "doc", "", "path to slide document: docx, pdf or plain text (required)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "master_plan.json", "output plan path")
	planCmd.MarkFlagRequired("json")
	planCmd.MarkFlagRequired("doc")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, client, err := setup(ctx)
	if err != nil {
		return err
	}

	transcriptJSON, err := os.ReadFile(planTranscript)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	docBytes, err := os.ReadFile(planDoc)
	if err != nil {
		return fmt.Errorf("read slide document: %w", err)
	}

	slideText, err := extract.Text(docBytes, planDoc)
	if err != nil {
		return err
	}
	log.Info(ctx, "Extracted %d characters from %s", len(slideText), planDoc)

	pl := planner.New(client, cfg.Gemini.PlannerModel, log)
	result, err := pl.Plan(ctx, transcriptJSON, slideText)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, result.Raw, "", "  "); err != nil {
		return fmt.Errorf("indent plan: %w", err)
	}
	if err := os.WriteFile(planOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}

	log.Info(ctx, "Plan with %d clips written to %s", len(result.Plan.Clips), planOutput)
	for _, warning := range result.Warnings {
		log.Warn(ctx, "plan check: %s", warning)
	}
	if result.Usage != nil {
		log.Info(ctx, "Token usage: %d in / %d out (%s)", result.Usage.Input, result.Usage.Output, result.Usage.Model)
	}
	return nil
}
