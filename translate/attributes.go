package translate

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/sdt"
	"github.com/npillmayer/sdt/grammar"
	"github.com/npillmayer/sdt/scanner"
)

// Instance is the attribute record of a single occurrence of a non-terminal
// during a parse. Each attribute may be set at most once.
type Instance struct {
	Kind     grammar.Kind
	Span     sdt.Span // token positions covered
	op       scanner.Symbol
	value    float64
	place    string
	hasOp    bool
	hasValue bool
	hasPlace bool
}

func newInstance(k grammar.Kind, pos int) *Instance {
	return &Instance{Kind: k, Span: sdt.SpanAt(pos)}
}

// Operator returns the synthesized operator of Sign, AddOp and MulOp
// instances.
func (in *Instance) Operator() (scanner.Symbol, bool) {
	return in.op, in.hasOp
}

// Value returns the synthesized numeric value.
func (in *Instance) Value() (float64, bool) {
	return in.value, in.hasValue
}

// Place returns the synthesized place: a numeral, an identifier or a
// temporary.
func (in *Instance) Place() (string, bool) {
	return in.place, in.hasPlace
}

// Resolved is true as soon as an instance has synthesized what its kind
// provides: an operator for Sign, AddOp and MulOp, a value and a place for
// all other kinds.
func (in *Instance) Resolved() bool {
	if in.Kind.IsOperator() {
		return in.hasOp
	}
	return in.hasValue && in.hasPlace
}

func (in *Instance) setOperator(op scanner.Symbol) error {
	if in.hasOp {
		return internalf("operator of %s already set", in.Kind)
	}
	in.op, in.hasOp = op, true
	return nil
}

// synthesize sets value and place.
func (in *Instance) synthesize(v float64, place string) error {
	if in.hasValue || in.hasPlace {
		return internalf("value of %s already set", in.Kind)
	}
	in.value, in.hasValue = v, true
	in.place, in.hasPlace = place, true
	return nil
}

// operand returns value and place, which must have been set.
func (in *Instance) operand() (float64, string, error) {
	if !in.hasValue || !in.hasPlace {
		return 0, "", internalf("%s has no value", in.Kind)
	}
	return in.value, in.place, nil
}

func (in *Instance) String() string {
	switch {
	case in.hasOp:
		return fmt.Sprintf("%s%v[%s]", in.Kind, in.Span, in.op)
	case in.hasPlace:
		return fmt.Sprintf("%s%v[%s=%g]", in.Kind, in.Span, in.place, in.value)
	}
	return fmt.Sprintf("%s%v[?]", in.Kind, in.Span)
}

// --- Attribute groups ------------------------------------------------------

// group holds the attribute records of the non-terminals of an expanded
// production. The owner is the record of the production's left hand side,
// it belongs to the enclosing group.
type group struct {
	prod    grammar.Production
	owner   *Instance
	members []*Instance
	popped  bool // no longer on the attribute stack
}

// member returns the record of the non-terminal of kind k.
func (g *group) member(k grammar.Kind) (*Instance, error) {
	for _, m := range g.members {
		if m.Kind == k {
			return m, nil
		}
	}
	return nil, internalf("production %d has no attribute record for %s", g.prod.ID, k)
}

// operator returns the operator synthesized by member k.
func (g *group) operator(k grammar.Kind) (scanner.Symbol, error) {
	m, err := g.member(k)
	if err != nil {
		return scanner.Error, err
	}
	op, ok := m.Operator()
	if !ok {
		return scanner.Error, internalf("%s has no operator", k)
	}
	return op, nil
}

// resolved is true if every member is resolved; groups without members are
// resolved.
func (g *group) resolved() bool {
	for _, m := range g.members {
		if !m.Resolved() {
			return false
		}
	}
	return true
}

func (g *group) contains(in *Instance) bool {
	for _, m := range g.members {
		if m == in {
			return true
		}
	}
	return false
}

func (g *group) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, m := range g.members {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.String())
	}
	b.WriteString("]")
	return b.String()
}
