package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/sdt/scanner"
	"github.com/npillmayer/sdt/translate"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace      *string
	noOptimize *bool
	bindings   *[]string
}{}

var rootCmd = &cobra.Command{
	Use:   "sdt",
	Short: "Translate arithmetic expressions into three-address code",
	Long: `sdt is a front end for arithmetic expressions:
- scans input into keywords, operators, delimiters, numerals and identifiers,
- parses it with an LL(1) table and translates it into three-address code,
- eliminates additions of 0 and multiplications by 1 (unless --no-optimize).`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDisplay()
		initTracing(*rootFlags.trace)
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.noOptimize = rootCmd.PersistentFlags().Bool("no-optimize", false, "keep additions of 0 and multiplications by 1")
	rootFlags.bindings = rootCmd.PersistentFlags().StringSlice("let", nil, "identifier values, e.g. a=3,b=0.5")
}

// Execute runs the command line.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Success.Prefix = pterm.Prefix{
		Text:  "    OK",
		Style: pterm.NewStyle(pterm.BgGreen, pterm.FgBlack),
	}
}

var traceKeys = []string{"sdt.scanner", "sdt.grammar", "sdt.translate", "sdt.tac", "sdt.cmd"}

func initTracing(level string) {
	l := tracing.TraceLevelFromString(level)
	gtrace.SyntaxTracer = gologadapter.New()
	gtrace.SyntaxTracer.SetTraceLevel(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("trace level is %s", level)
}

// translateOptions collects parser options from the global flags. Identity
// elimination follows the configuration unless --no-optimize is given.
func translateOptions(bindings map[string]float64) []translate.Option {
	var opts []translate.Option
	if rootCmd.PersistentFlags().Changed("no-optimize") {
		opts = append(opts, translate.Optimize(!*rootFlags.noOptimize))
	}
	if len(bindings) > 0 {
		opts = append(opts, translate.Bindings(bindings))
	}
	return opts
}

// parseBindings reads assignments of the form name=value.
func parseBindings(assignments []string) (map[string]float64, error) {
	bindings := make(map[string]float64, len(assignments))
	for _, a := range assignments {
		eq := strings.IndexByte(a, '=')
		if eq < 0 {
			return nil, fmt.Errorf("binding %q: expected name=value", a)
		}
		name, v, err := parseBinding(a[:eq], a[eq+1:])
		if err != nil {
			return nil, err
		}
		bindings[name] = v
	}
	return bindings, nil
}

func parseBinding(name, value string) (string, float64, error) {
	toks := scanner.Scan(name)
	if len(toks) != 2 || toks[0].Symbol() != scanner.Identifier {
		return "", 0, fmt.Errorf("binding %q: not an identifier", name)
	}
	name = toks[0].Lexeme()
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", 0, fmt.Errorf("binding %q: %w", name, err)
	}
	return name, v, nil
}
