package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/sdt/scanner"
	"github.com/npillmayer/sdt/translate"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Translate expressions interactively",
		Long: `repl reads one expression per line and prints its three-address code.
Commands:
  :let <name> <value>   bind an identifier
  :opt on|off           switch identity elimination
  :tokens               switch printing of tokens
  :quit                 leave (or <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	bindings, err := parseBindings(*rootFlags.bindings)
	if err != nil {
		return err
	}
	repl, err := readline.New("sdt> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	s := newSession(os.Stdout, bindings)
	if rootCmd.PersistentFlags().Changed("no-optimize") {
		s.optimize = !*rootFlags.noOptimize
	}
	pterm.Info.Println("Welcome to the sdt REPL")
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := s.eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// session is the state of an interactive run. Results of translations are
// cached by input, optimization mode and bindings.
type session struct {
	out        io.Writer
	bindings   map[string]float64
	optimize   bool
	showTokens bool
	cache      map[string]*translate.Result
	hits       int
}

func newSession(out io.Writer, bindings map[string]float64) *session {
	if bindings == nil {
		bindings = make(map[string]float64)
	}
	return &session{
		out:      out,
		bindings: bindings,
		optimize: !gconf.GetBool("disable-identity-elimination"),
		cache:    make(map[string]*translate.Result),
	}
}

// eval evaluates a line of input: either a command starting with ':' or an
// expression to translate.
func (s *session) eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return s.command(strings.Fields(line[1:]))
	}
	var lexErrors []string
	sc := scanner.New(scanner.WithErrorHandler(func(err error) {
		lexErrors = append(lexErrors, err.Error())
	}))
	sc.ScanLine(line)
	tokens := sc.Tokens()
	if s.showTokens {
		scanner.WriteReport(s.out, tokens)
	}
	if len(lexErrors) > 0 {
		return false, fmt.Errorf("%s", strings.Join(lexErrors, "; "))
	}
	key, err := s.cacheKey(tokens)
	if err != nil {
		return false, err
	}
	res, ok := s.cache[key]
	if ok {
		s.hits++
		tracer().Debugf("cache hit for %q", line)
	} else {
		res, err = translate.Translate(tokens, translate.Optimize(s.optimize), translate.Bindings(s.bindings))
		if err != nil {
			return false, err
		}
		s.cache[key] = res
	}
	res.Code.WriteTo(s.out)
	fmt.Fprintf(s.out, "= %g\n", res.Value)
	return false, nil
}

func (s *session) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("missing command")
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "let":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: :let <name> <value>")
		}
		name, v, err := parseBinding(args[1], args[2])
		if err != nil {
			return false, err
		}
		s.bindings[name] = v
		fmt.Fprintf(s.out, "%s = %g\n", name, v)
	case "opt":
		if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
			return false, fmt.Errorf("usage: :opt on|off")
		}
		s.optimize = args[1] == "on"
		fmt.Fprintf(s.out, "identity elimination %s\n", args[1])
	case "tokens":
		s.showTokens = !s.showTokens
		fmt.Fprintf(s.out, "printing tokens: %v\n", s.showTokens)
	default:
		return false, fmt.Errorf("unknown command :%s", args[0])
	}
	return false, nil
}

type binding struct {
	Name  string
	Value float64
}

type translationKey struct {
	Input    []string
	Optimize bool
	Bindings []binding
}

// cacheKey fingerprints a translation request. Identifiers not occurring in
// the input do not matter, but are part of the key nevertheless.
func (s *session) cacheKey(tokens []scanner.Token) (string, error) {
	key := translationKey{Optimize: s.optimize}
	for _, t := range tokens {
		key.Input = append(key.Input, t.Lexeme())
	}
	for name, v := range s.bindings {
		key.Bindings = append(key.Bindings, binding{Name: name, Value: v})
	}
	sort.Slice(key.Bindings, func(i, j int) bool {
		return key.Bindings[i].Name < key.Bindings[j].Name
	})
	return structhash.Hash(key, 1)
}
