package translate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/sdt"
	"github.com/npillmayer/sdt/grammar"
	"github.com/npillmayer/sdt/scanner"
	"github.com/npillmayer/sdt/tac"
)

// Parser is a predictive parser with a symbol stack and an attribute stack.
// A parser performs a single translation run; create a new one for every
// input.
type Parser struct {
	table   *grammar.Table
	comp    *Compilation
	obs     Observer
	syms    *arraystack.Stack // of stackSymbol
	groups  *arraystack.Stack // of *group
	tokens  []scanner.Token
	cursor  int // index of the lookahead token
	steps   int
	root    *Instance
	started bool
	panics  bool // panic on internal errors
}

// stackSymbol is an entry of the symbol stack. Non-terminals carry their
// attribute record, action symbols the attribute group of their production.
type stackSymbol struct {
	sym  grammar.Symbol
	inst *Instance
	grp  *group
}

func (s stackSymbol) String() string {
	return s.sym.String()
}

// Result is the outcome of a translation run.
type Result struct {
	Code        *tac.Code // generated code
	Value       float64   // value of the expression, computed during parsing
	Place       string    // place holding the value after running Code
	Temporaries int       // number of temporaries used
	Steps       int       // number of symbols processed
}

// NewParser creates a parser for the expression grammar.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		table: grammar.ExpressionTable(),
		comp: &Compilation{
			optimize: !gconf.GetBool("disable-identity-elimination"),
		},
		obs:    NoOpObserver{},
		syms:   arraystack.New(),
		groups: arraystack.New(),
		panics: gconf.GetBool("panic-on-internal-error"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Translate parses a token sequence and translates it into three-address
// code. The sequence should be terminated by an EndOfInput token; if it is
// not, one is appended.
//
// If parsing fails, Translate returns the error together with a result
// holding the code generated up to the error. Value and Place of such a
// result are meaningless.
func (p *Parser) Translate(tokens []scanner.Token) (*Result, error) {
	if p.started {
		return nil, errors.New("parser has already been used for a translation")
	}
	p.started = true
	p.tokens = terminated(tokens)
	err := p.run()
	res := &Result{
		Code:        p.comp.Code(),
		Temporaries: p.comp.temps.Count(),
		Steps:       p.steps,
	}
	if err != nil {
		tracer().Errorf(err.Error())
		var ie *InternalError
		if p.panics && errors.As(err, &ie) {
			panic(err)
		}
		return res, err
	}
	res.Value, _ = p.root.Value()
	res.Place, _ = p.root.Place()
	tracer().Infof("translated %d tokens into %d instructions", len(p.tokens), res.Code.Len())
	return res, nil
}

func terminated(tokens []scanner.Token) []scanner.Token {
	if n := len(tokens); n > 0 && tokens[n-1].Symbol() == scanner.EndOfInput {
		return tokens
	}
	line := 0
	if n := len(tokens); n > 0 {
		line = tokens[n-1].Line()
	}
	toks := make([]scanner.Token, len(tokens), len(tokens)+1)
	copy(toks, tokens)
	return append(toks, scanner.EOI(line))
}

func (p *Parser) run() error {
	start := p.table.Grammar().Start
	p.root = newInstance(start, 0)
	p.syms.Push(stackSymbol{sym: grammar.T(scanner.EndOfInput)})
	p.syms.Push(stackSymbol{sym: grammar.N(start), inst: p.root})
	p.groups.Push(&group{members: []*Instance{p.root}})
	for !p.syms.Empty() {
		v, _ := p.syms.Pop()
		top := v.(stackSymbol)
		p.steps++
		p.obs.SymbolPopped(p, top.sym)
		var err error
		switch top.sym.Class() {
		case grammar.Terminal:
			err = p.match(top)
		case grammar.NonTerminal:
			err = p.expand(top)
		case grammar.Action:
			err = p.execute(top)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// match matches a terminal against the lookahead.
func (p *Parser) match(top stackSymbol) error {
	la := p.Lookahead()
	if la.Symbol() != top.sym.Terminal() {
		return &SyntaxError{
			Pos:      p.cursor,
			Found:    la,
			Expected: []scanner.Symbol{top.sym.Terminal()},
		}
	}
	if la.Symbol() == scanner.Number || la.Symbol() == scanner.Identifier {
		if err := p.comp.hold(la, p.cursor); err != nil {
			return err
		}
	}
	p.obs.TerminalMatched(p, la)
	p.cursor++
	if g := p.topGroup(); g != nil && g.resolved() {
		p.groups.Pop()
		g.popped = true
	}
	return nil
}

// expand replaces a non-terminal by the right hand side of the production
// selected by the lookahead, preceded by the production's action symbol.
func (p *Parser) expand(top stackSymbol) error {
	la := p.Lookahead()
	k := top.sym.Kind()
	prod, ok := p.table.Select(k, la.Symbol())
	if !ok {
		return &SyntaxError{
			Pos:       p.cursor,
			Found:     la,
			Expected:  p.table.Expected(k),
			Expanding: true,
			NonTerm:   k,
		}
	}
	p.obs.ProductionChosen(p, prod)
	top.inst.Span = sdt.SpanAt(p.cursor)
	g := &group{prod: prod, owner: top.inst}
	insts := make([]*Instance, len(prod.RHS))
	for i, sym := range prod.RHS {
		if sym.IsNonTerminal() {
			insts[i] = newInstance(sym.Kind(), p.cursor)
			g.members = append(g.members, insts[i])
		}
	}
	p.syms.Push(stackSymbol{sym: grammar.A(prod.ID), grp: g})
	for i := len(prod.RHS) - 1; i >= 0; i-- {
		if prod.RHS[i].IsEpsilon() {
			continue
		}
		p.syms.Push(stackSymbol{sym: prod.RHS[i], inst: insts[i]})
	}
	if prod.IsEpsilon() {
		g.popped = true // nothing to collect, discard at once
	} else {
		p.groups.Push(g)
	}
	return nil
}

// execute runs the semantic action of a completed production. The
// production's group leaves the attribute stack, if still there; the owner
// then has to be a member of the group on top.
func (p *Parser) execute(top stackSymbol) error {
	g := top.grp
	if !g.popped {
		if p.topGroup() != g {
			return &InternalError{Production: g.prod.ID, Msg: "attribute group is not on top of the attribute stack"}
		}
		p.groups.Pop()
		g.popped = true
	}
	if enclosing := p.topGroup(); enclosing == nil || !enclosing.contains(g.owner) {
		return &InternalError{Production: g.prod.ID, Msg: "owner is not part of the enclosing attribute group"}
	}
	if err := runAction(p.comp, g); err != nil {
		return err
	}
	g.owner.Span = g.owner.Span.Close(p.cursor)
	p.obs.ActionExecuted(p, g.prod, g.owner)
	return nil
}

func (p *Parser) topGroup() *group {
	v, ok := p.groups.Peek()
	if !ok {
		return nil
	}
	return v.(*group)
}

// --- Inspection ------------------------------------------------------------

// Lookahead returns the current lookahead token.
func (p *Parser) Lookahead() scanner.Token {
	if p.cursor >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.cursor]
}

// Cursor returns the index of the lookahead token.
func (p *Parser) Cursor() int {
	return p.cursor
}

// Compilation returns the state of the current translation run.
func (p *Parser) Compilation() *Compilation {
	return p.comp
}

// Depth returns the sizes of symbol stack and attribute stack.
func (p *Parser) Depth() (symbols int, groups int) {
	return p.syms.Size(), p.groups.Size()
}

// StackString returns the symbol stack, bottom first.
func (p *Parser) StackString() string {
	return stackString(p.syms.Values())
}

// GroupString returns the attribute stack, bottom first.
func (p *Parser) GroupString() string {
	return stackString(p.groups.Values())
}

func stackString(values []interface{}) string {
	var b bytes.Buffer
	for i := len(values) - 1; i >= 0; i-- {
		b.WriteString(fmt.Sprintf("%v", values[i]))
		if i > 0 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// --- Shortcuts -------------------------------------------------------------

// Translate translates a token sequence with a new parser.
func Translate(tokens []scanner.Token, opts ...Option) (*Result, error) {
	return NewParser(opts...).Translate(tokens)
}

// TranslateString scans src and translates it with a new parser. Lexical
// errors are reported by the scanner's default error handler; the parser
// will then fail with a syntax error at the unrecognized word.
func TranslateString(src string, opts ...Option) (*Result, error) {
	return Translate(scanner.ScanString(src), opts...)
}
