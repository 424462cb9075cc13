package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/sdt/grammar"
	"github.com/npillmayer/sdt/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var grammarFlags = struct {
	ebnf *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the expression grammar and its selection table",
		Args:  cobra.NoArgs,
		RunE:  runGrammar,
	}
	grammarFlags.ebnf = cmd.Flags().Bool("ebnf", false, "print and verify the EBNF description only")
	rootCmd.AddCommand(cmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	if *grammarFlags.ebnf {
		return printEBNF()
	}
	t := grammar.ExpressionTable()
	pterm.DefaultSection.Println("Rules")
	t.Grammar().EachRule(func(p grammar.Production) {
		pterm.Println(p.String())
	})
	pterm.DefaultSection.Println("FIRST and FOLLOW")
	ga := t.Analysis()
	sets := pterm.TableData{{"non-terminal", "nullable", "FIRST", "FOLLOW"}}
	for k := grammar.Kind(0); int(k) < grammar.KindCount; k++ {
		sets = append(sets, []string{
			k.String(), fmt.Sprint(ga.Nullable(k)), symbolList(ga.First(k)), symbolList(ga.Follow(k)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(sets).Render()
	pterm.DefaultSection.Println("Selection table")
	sel := pterm.TableData{{"non-terminal", "lookahead", "production"}}
	t.Each(func(k grammar.Kind, la scanner.Symbol, p grammar.Production) {
		sel = append(sel, []string{k.String(), la.String(), p.String()})
	})
	pterm.DefaultTable.WithHasHeader().WithData(sel).Render()
	return nil
}

func printEBNF() error {
	g, err := grammar.CheckEBNF()
	if err != nil {
		return err
	}
	pterm.Println(strings.TrimSpace(grammar.EBNF))
	pterm.Success.Printf("%d productions, all reachable from %s\n", len(g), grammar.Expr)
	return nil
}

func symbolList(syms []scanner.Symbol) string {
	s := make([]string, len(syms))
	for i, sym := range syms {
		s[i] = sym.String()
	}
	return strings.Join(s, " ")
}
