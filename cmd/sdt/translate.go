package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/sdt/scanner"
	"github.com/npillmayer/sdt/tac"
	"github.com/npillmayer/sdt/translate"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var translateFlags = struct {
	expr *string
	run  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "translate [files…]",
		Short: "Translate expressions into three-address code",
		Example: `  sdt translate -e "(a+2)*b" --let a=1,b=3
  sdt translate one.expr two.expr`,
		RunE: runTranslate,
	}
	translateFlags.expr = cmd.Flags().StringP("expr", "e", "", "translate this expression instead of files")
	translateFlags.run = cmd.Flags().Bool("run", false, "run the generated code and compare its result")
	rootCmd.AddCommand(cmd)
}

// outcome is the result of translating one input.
type outcome struct {
	src       input
	lexErrors []error
	result    *translate.Result
	runValue  float64
	err       error
}

func (o *outcome) failed() bool {
	return o.err != nil || len(o.lexErrors) > 0
}

func runTranslate(cmd *cobra.Command, args []string) error {
	bindings, err := parseBindings(*rootFlags.bindings)
	if err != nil {
		return err
	}
	var sources []input
	switch {
	case *translateFlags.expr != "":
		sources = []input{{name: "-e", text: *translateFlags.expr}}
	case len(args) == 0:
		sources = []input{{name: "-"}}
	default:
		for _, arg := range args {
			sources = append(sources, input{name: arg})
		}
	}
	outcomes, err := translateAll(sources, bindings, *translateFlags.run)
	if err != nil {
		return err
	}
	failed := 0
	for _, o := range outcomes {
		if o.failed() {
			failed++
		}
		printOutcome(os.Stdout, o)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d translations failed", failed, len(outcomes))
	}
	return nil
}

// translateAll translates every input concurrently. Outcomes are returned in
// the order of the inputs. Failing to read an input aborts the whole run.
func translateAll(sources []input, bindings map[string]float64, run bool) ([]*outcome, error) {
	outcomes := make([]*outcome, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			o, err := translateInput(src, bindings, run)
			outcomes[i] = o
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func translateInput(src input, bindings map[string]float64, run bool) (*outcome, error) {
	o := &outcome{src: src}
	s := scanner.New(scanner.WithErrorHandler(func(err error) {
		o.lexErrors = append(o.lexErrors, err)
	}))
	if err := src.scan(s); err != nil {
		return nil, err
	}
	tracer().Debugf("%s: %d lines scanned", src, s.Lines())
	o.result, o.err = translate.Translate(s.Tokens(), translateOptions(bindings)...)
	if o.err != nil || !run {
		return o, nil
	}
	o.runValue, o.err = tac.Eval(o.result.Code, o.result.Place, bindings)
	if o.err == nil && o.runValue != o.result.Value {
		o.err = fmt.Errorf("code computes %g, translation synthesized %g", o.runValue, o.result.Value)
	}
	return o, nil
}

func printOutcome(w io.Writer, o *outcome) {
	pterm.Info.Printf("%s\n", o.src)
	for _, err := range o.lexErrors {
		pterm.Error.Println(err.Error())
	}
	if o.result != nil {
		o.result.Code.WriteTo(w)
	}
	if o.failed() {
		if o.err != nil {
			pterm.Error.Println(o.err.Error())
		}
		fmt.Fprintln(w, "FAILED")
		return
	}
	fmt.Fprintf(w, "value %g in %s (%d temporaries)\n", o.result.Value, o.result.Place, o.result.Temporaries)
	fmt.Fprintln(w, "SUCCEEDED")
}
