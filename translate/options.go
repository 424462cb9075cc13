package translate

import "github.com/npillmayer/sdt/grammar"

// Option configures a parser.
type Option func(p *Parser)

// Optimize switches identity elimination on or off. If off, every operation
// emits an instruction, even if one of its operands is an identity.
func Optimize(b bool) Option {
	return func(p *Parser) {
		p.comp.optimize = b
	}
}

// WithObserver installs an observer for the parser's hook points.
func WithObserver(o Observer) Option {
	return func(p *Parser) {
		if o == nil {
			o = NoOpObserver{}
		}
		p.obs = o
	}
}

// Bindings sets values for identifiers. Unbound identifiers have the value
// IdentifierPlaceholder. The map is not modified.
func Bindings(b map[string]float64) Option {
	return func(p *Parser) {
		p.comp.bindings = b
	}
}

// WithTable replaces the selection table of the expression grammar. Semantic
// actions are looked up by production id, so a replacement grammar has to
// follow the ids of the expression grammar.
func WithTable(t *grammar.Table) Option {
	return func(p *Parser) {
		if t != nil {
			p.table = t
		}
	}
}
