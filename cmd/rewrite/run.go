package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jbessels/rewrite-static-analysis/internal/diagfmt"
	"github.com/jbessels/rewrite-static-analysis/internal/driver"
	"github.com/jbessels/rewrite-static-analysis/internal/observ"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/style"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] <file.jx|directory>",
	Short: "Rewrite a source file or directory in place",
	Long:  "Parse the target, remove unnecessary parentheses per the active style, and write the result back. Foreign-dialect files and files with parse errors are left untouched.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().String("style", "", "path to a TOML style file (default: all categories enabled)")
	runCmd.Flags().Bool("stdout", false, "print the rewritten file instead of writing it (single file only)")
	runCmd.Flags().Int("jobs", 0, "number of files to process concurrently (0 = GOMAXPROCS)")
	runCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
	runCmd.Flags().Int("max-cycles", 0, "fixpoint cycle cap (0 = default)")
	runCmd.Flags().Bool("timings", false, "print phase timings to stderr")
	runCmd.Flags().Bool("no-ui", false, "disable the live progress view for directory runs")
}

func runRun(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	toStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return err
	}

	opts, err := driverOptions(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	timer := observ.NewTimer()

	if !info.IsDir() {
		phase := timer.Begin("rewrite")
		fileSet := source.NewFileSet()
		id, err := fileSet.Load(targetPath)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		res, err := driver.RewriteSource(fileSet, id, opts)
		timer.End(phase, "")
		if err != nil {
			return err
		}
		if toStdout {
			printDiagnostics(cmd, fileSet, res)
			_, err = os.Stdout.Write(res.Output)
			return err
		}
		if err := writeResult(cmd, fileSet, res, info.Mode(), quiet); err != nil {
			return err
		}
		if timings {
			fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
		}
		return nil
	}

	if toStdout {
		return fmt.Errorf("run: --stdout works only with a single file")
	}

	phase := timer.Begin("rewrite")
	var fileSet *source.FileSet
	var results []driver.FileResult
	if !noUI && !quiet && isTerminal(os.Stdout) {
		fileSet, results, err = rewriteDirWithUI(cmd.Context(), "rewrite "+targetPath, targetPath, opts, jobs)
	} else {
		fileSet, results, err = driver.RewriteDir(cmd.Context(), targetPath, opts, jobs)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return err
	}

	phase = timer.Begin("write")
	changed := 0
	for _, res := range results {
		mode := os.FileMode(0o644)
		if st, statErr := os.Stat(res.Path); statErr == nil {
			mode = st.Mode()
		}
		if err := writeResult(cmd, fileSet, res, mode, quiet); err != nil {
			return err
		}
		if res.Changed {
			changed++
		}
	}
	timer.End(phase, fmt.Sprintf("%d rewritten", changed))

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d of %d file(s) rewritten\n", changed, len(results))
	}
	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return nil
}

// driverOptions assembles driver.Options from the shared run/check flags.
func driverOptions(cmd *cobra.Command) (driver.Options, error) {
	stylePath, err := cmd.Flags().GetString("style")
	if err != nil {
		return driver.Options{}, err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return driver.Options{}, err
	}
	maxCycles, err := cmd.Flags().GetInt("max-cycles")
	if err != nil {
		return driver.Options{}, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, err
	}

	cfg := style.Default()
	if stylePath != "" {
		cfg, err = style.Load(stylePath)
		if err != nil {
			return driver.Options{}, err
		}
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("rewrite")
		if err != nil {
			// A broken cache dir should not block rewriting.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache unavailable: %v\n", err)
			cache = nil
		}
	}

	return driver.Options{
		Style:          cfg,
		MaxDiagnostics: maxDiagnostics,
		MaxCycles:      maxCycles,
		Cache:          cache,
	}, nil
}

func writeResult(cmd *cobra.Command, fileSet *source.FileSet, res driver.FileResult, mode os.FileMode, quiet bool) error {
	printDiagnostics(cmd, fileSet, res)
	if !res.Changed {
		return nil
	}
	if err := os.WriteFile(res.Path, res.Output, mode.Perm()); err != nil {
		return fmt.Errorf("run: write %s: %w", res.Path, err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "rewrote %s\n", res.Path)
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, fileSet *source.FileSet, res driver.FileResult) {
	if res.Bag == nil || res.Bag.Len() == 0 {
		return
	}
	out := cmd.ErrOrStderr()
	if _, ok := fileSet.GetByPath(res.Path); !ok {
		// The file never made it into the set (load failure), so the bag's
		// spans resolve nowhere.
		for _, d := range res.Bag.Items() {
			fmt.Fprintf(out, "%s: %s %s: %s\n", res.Path, d.Severity, d.Code.ID(), d.Message)
		}
		return
	}
	diagfmt.Pretty(out, res.Bag, fileSet, diagfmt.PrettyOpts{
		Color:     !color.NoColor,
		ShowNotes: true,
	})
}
