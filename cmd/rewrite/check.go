package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/diagfmt"
	"github.com/jbessels/rewrite-static-analysis/internal/driver"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/version"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.jx|directory>",
	Short: "Report files that would be rewritten, without writing",
	Long:  "Run the rewriter in dry-run mode. Exits non-zero when any file would change, which makes it usable as a CI gate.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("style", "", "path to a TOML style file (default: all categories enabled)")
	checkCmd.Flags().Int("jobs", 0, "number of files to process concurrently (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
	checkCmd.Flags().Int("max-cycles", 0, "fixpoint cycle cap (0 = default)")
	checkCmd.Flags().String("format", "text", "report format (text|json|sarif)")
}

var (
	checkDirtyColor = color.New(color.FgRed)
	checkCleanColor = color.New(color.FgGreen)
)

func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	var fileSet *source.FileSet
	var results []driver.FileResult
	if info.IsDir() {
		fileSet, results, err = driver.RewriteDir(cmd.Context(), targetPath, opts, jobs)
		if err != nil {
			return err
		}
	} else {
		fileSet = source.NewFileSet()
		id, err := fileSet.Load(targetPath)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
		res, err := driver.RewriteSource(fileSet, id, opts)
		if err != nil {
			return err
		}
		results = []driver.FileResult{res}
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dirty := 0
	switch format {
	case "text":
		for _, res := range results {
			printDiagnostics(cmd, fileSet, res)
			if res.Changed {
				dirty++
				checkDirtyColor.Fprintf(out, "would rewrite %s\n", res.Path)
			}
		}
	case "json", "sarif":
		report, n := checkReport(cmd, fileSet, results, opts.MaxDiagnostics)
		dirty = n
		if format == "json" {
			err = diagfmt.JSON(out, report, fileSet, diagfmt.JSONOpts{IncludePositions: true})
		} else {
			err = diagfmt.Sarif(out, report, fileSet, diagfmt.SarifRunMeta{
				ToolName:       "rewrite",
				ToolVersion:    version.Number,
				InvocationArgs: os.Args,
			})
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("check: invalid --format value %q (must be text, json, or sarif)", format)
	}

	if dirty > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("check: %d file(s) need rewriting", dirty)
	}
	if !quiet && format == "text" {
		checkCleanColor.Fprintf(out, "%d file(s) clean\n", len(results))
	}
	return nil
}

// checkReport folds per-file bags plus a marker diagnostic for every file
// that would change into one bag for machine output. Load failures have no
// resolvable spans and go to stderr instead.
func checkReport(cmd *cobra.Command, fileSet *source.FileSet, results []driver.FileResult, maxDiagnostics int) (*diag.Bag, int) {
	report := diag.NewBag(max(maxDiagnostics, len(results)))
	dirty := 0
	for _, res := range results {
		f, ok := fileSet.GetByPath(res.Path)
		if !ok {
			printDiagnostics(cmd, fileSet, res)
			continue
		}
		if res.Bag != nil {
			for _, d := range res.Bag.Items() {
				report.Add(d)
			}
		}
		if res.Changed {
			dirty++
			report.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.StyleRedundantParens,
				Message:  "file contains unnecessary parentheses",
				Primary:  source.Span{File: f.ID},
			})
		}
	}
	return report, dirty
}
