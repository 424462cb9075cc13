package translate

import (
	"github.com/npillmayer/sdt/grammar"
	"github.com/npillmayer/sdt/scanner"
)

// Observer is notified at the hook points of a parser run. Observers are
// called synchronously; they may inspect the parser but must not modify it.
type Observer interface {
	SymbolPopped(p *Parser, sym grammar.Symbol)
	ProductionChosen(p *Parser, prod grammar.Production)
	TerminalMatched(p *Parser, tok scanner.Token)
	ActionExecuted(p *Parser, prod grammar.Production, owner *Instance)
}

// NoOpObserver ignores all notifications. It is the default observer.
type NoOpObserver struct{}

// SymbolPopped is part of interface Observer.
func (NoOpObserver) SymbolPopped(*Parser, grammar.Symbol) {}

// ProductionChosen is part of interface Observer.
func (NoOpObserver) ProductionChosen(*Parser, grammar.Production) {}

// TerminalMatched is part of interface Observer.
func (NoOpObserver) TerminalMatched(*Parser, scanner.Token) {}

// ActionExecuted is part of interface Observer.
func (NoOpObserver) ActionExecuted(*Parser, grammar.Production, *Instance) {}

// TraceObserver traces every step of a parser run at debug level, including
// both stacks.
type TraceObserver struct{}

// SymbolPopped is part of interface Observer.
func (TraceObserver) SymbolPopped(p *Parser, sym grammar.Symbol) {
	tracer().Debugf("pop %-10v  LA=%v", sym, p.Lookahead())
	tracer().Debugf("    symbols = %s", p.StackString())
}

// ProductionChosen is part of interface Observer.
func (TraceObserver) ProductionChosen(p *Parser, prod grammar.Production) {
	tracer().Debugf("    expand %v", prod)
}

// TerminalMatched is part of interface Observer.
func (TraceObserver) TerminalMatched(p *Parser, tok scanner.Token) {
	tracer().Debugf("    match %v", tok)
}

// ActionExecuted is part of interface Observer.
func (TraceObserver) ActionExecuted(p *Parser, prod grammar.Production, owner *Instance) {
	tracer().Debugf("    action %d => %v", prod.ID, owner)
	tracer().Debugf("    groups  = %s", p.GroupString())
}
