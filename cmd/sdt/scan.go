package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/sdt/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var scanFlags = struct {
	expr  *string
	table *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "scan [file]",
		Short:   "Classify the words of the input",
		Example: `  echo "begin x := 3 end ." | sdt scan`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runScan,
	}
	scanFlags.expr = cmd.Flags().StringP("expr", "e", "", "scan this text instead of a file")
	scanFlags.table = cmd.Flags().Bool("table", false, "print the tokens as a table")
	rootCmd.AddCommand(cmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	src := input{name: name}
	if *scanFlags.expr != "" {
		src = input{name: "-e", text: *scanFlags.expr}
	}
	s := scanner.New(scanner.WithErrorHandler(func(err error) {
		pterm.Error.Println(err.Error())
	}))
	if err := src.scan(s); err != nil {
		return err
	}
	tokens := s.Tokens()
	if *scanFlags.table {
		printTokenTable(tokens)
	} else if err := scanner.WriteReport(os.Stdout, tokens); err != nil {
		return err
	}
	if n := s.ErrorCount(); n > 0 {
		return fmt.Errorf("%d unrecognized words in %d lines", n, s.Lines())
	}
	return nil
}

func printTokenTable(tokens []scanner.Token) {
	data := pterm.TableData{{"line", "text", "category", "symbol"}}
	for _, t := range tokens {
		data = append(data, []string{
			fmt.Sprint(t.Line()), t.Lexeme(), t.Category().String(), t.Symbol().String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// input is a named source of text: a file, stdin ("-") or literal text.
type input struct {
	name string
	text string
}

func (in input) String() string {
	return in.name
}

func (in input) open() (io.ReadCloser, error) {
	switch {
	case in.text != "":
		return ioutil.NopCloser(strings.NewReader(in.text)), nil
	case in.name == "-":
		return ioutil.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(in.name)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", in.name, err)
	}
	return f, nil
}

func (in input) scan(s *scanner.Scanner) error {
	r, err := in.open()
	if err != nil {
		return err
	}
	defer r.Close()
	return s.ScanReader(r)
}
