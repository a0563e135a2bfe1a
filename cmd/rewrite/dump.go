package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/diagfmt"
	"github.com/jbessels/rewrite-static-analysis/internal/lexer"
	"github.com/jbessels/rewrite-static-analysis/internal/parser"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] <file.jx>",
	Short: "Print the parse tree or token stream of a file",
	Long:  "Parse one file and dump its tree, or with --tokens the raw token stream. Meant for debugging rewrites that do not fire where expected.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Bool("tokens", false, "dump the token stream instead of the parse tree")
	dumpCmd.Flags().Bool("json", false, "emit JSON (tokens only)")
}

func runDump(cmd *cobra.Command, args []string) error {
	tokens, err := cmd.Flags().GetBool("tokens")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if asJSON && !tokens {
		return fmt.Errorf("dump: --json is only available with --tokens")
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	out := cmd.OutOrStdout()

	if tokens {
		toks := lexer.Tokenize(fileSet.Get(id), lexer.Options{})
		if asJSON {
			return diagfmt.FormatTokensJSON(out, toks)
		}
		diagfmt.FormatTokensPretty(out, toks, fileSet)
		return nil
	}

	bag := diag.NewBag(maxDiagnostics)
	res := parser.ParseFile(fileSet.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, fileSet, diagfmt.PrettyOpts{ShowNotes: true})
		cmd.SilenceUsage = true
		return fmt.Errorf("dump: %s does not parse", args[0])
	}
	diagfmt.FormatASTPretty(out, res.File)
	return nil
}
