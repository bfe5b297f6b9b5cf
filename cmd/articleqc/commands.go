package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"articleqc/internal/pipeline"
	"articleqc/internal/report"
)

func (a *app) newCleanCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Normalize raw articles and write the cleaned dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				a.cfg.Input.Path = input
			}

			if cmd.Flags().Changed("output") {
				a.cfg.Output.CleanedPath = output
			}

			p, err := a.processor()
			if err != nil {
				return err
			}

			cleaned, err := p.CleanFile(a.cfg.Input.Path, a.cfg.Output.CleanedPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %d articles -> %s\n", len(cleaned.Articles), a.cfg.Output.CleanedPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "raw articles JSON (overrides input.path)")
	cmd.Flags().StringVar(&output, "output", "", "cleaned articles JSON (overrides output.cleaned_path)")

	return cmd
}

// reportFlags are shared by the validate and run commands.
type reportFlags struct {
	report     string
	format     string
	validOnly  string
	minContent int
	details    bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.report, "report", "", "report output path (overrides output.report_path)")
	cmd.Flags().StringVar(&f.format, "format", "", "report format: text or json (overrides output.report_format)")
	cmd.Flags().StringVar(&f.validOnly, "valid-only", "", "also write the valid articles to this path")
	cmd.Flags().IntVar(&f.minContent, "min-content-length", 0, "minimum content length in characters")
	cmd.Flags().BoolVar(&f.details, "details", false, "print a table of invalid articles")
}

func (f *reportFlags) apply(cmd *cobra.Command, a *app) {
	flags := cmd.Flags()

	if flags.Changed("report") {
		a.cfg.Output.ReportPath = f.report
	}

	if flags.Changed("format") {
		a.cfg.Output.ReportFormat = f.format
	}

	if flags.Changed("valid-only") {
		a.cfg.Output.ValidOnlyPath = f.validOnly
	}

	if flags.Changed("min-content-length") {
		a.cfg.Validation.MinContentLength = f.minContent
	}
}

func (a *app) newValidateCmd() *cobra.Command {
	var (
		input string
		flags reportFlags
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a cleaned dataset and write the quality report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				a.cfg.Output.CleanedPath = input
			}

			flags.apply(cmd, a)

			p, err := a.processor()
			if err != nil {
				return err
			}

			outcome, err := p.ValidateFile(a.cfg.Output.CleanedPath, a.cfg.Output.ReportPath)
			if err != nil {
				return err
			}

			printOutcome(cmd.OutOrStdout(), outcome, flags.details)

			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "cleaned articles JSON (overrides output.cleaned_path)")
	flags.register(cmd)

	return cmd
}

func (a *app) newRunCmd() *cobra.Command {
	var (
		input, output string
		flags         reportFlags
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Clean, validate and report in one pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				a.cfg.Input.Path = input
			}

			if cmd.Flags().Changed("output") {
				a.cfg.Output.CleanedPath = output
			}

			flags.apply(cmd, a)

			p, err := a.processor()
			if err != nil {
				return err
			}

			outcome, err := p.Run()
			if err != nil {
				return err
			}

			printOutcome(cmd.OutOrStdout(), outcome, flags.details)

			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "raw articles JSON (overrides input.path)")
	cmd.Flags().StringVar(&output, "output", "", "cleaned articles JSON (overrides output.cleaned_path)")
	flags.register(cmd)

	return cmd
}

func printOutcome(w io.Writer, outcome *pipeline.Outcome, details bool) {
	fmt.Fprint(w, outcome.Report)

	if details && len(outcome.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprint(w, report.FormatFailures(outcome.Failures))
	}
}
