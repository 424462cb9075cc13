package translate

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sdt/grammar"
	"github.com/npillmayer/sdt/scanner"
)

// groupFor creates an attribute group for production id, with fresh members
// and owner.
func groupFor(t *testing.T, id int) *group {
	t.Helper()
	prod, ok := grammar.ExpressionTable().Grammar().Rule(id)
	if !ok {
		t.Fatalf("no production %d", id)
	}
	g := &group{prod: prod, owner: newInstance(prod.LHS, 0)}
	for _, k := range prod.NonTerminals() {
		g.members = append(g.members, newInstance(k, 0))
	}
	return g
}

func member(t *testing.T, g *group, k grammar.Kind) *Instance {
	m, err := g.member(k)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSumAction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.translate")
	defer teardown()
	//
	c := &Compilation{optimize: true}
	g := groupFor(t, grammar.ExprRule)
	member(t, g, grammar.Sign).setOperator(scanner.Minus)
	member(t, g, grammar.Term).synthesize(5, "a")
	member(t, g, grammar.ExprTail).synthesize(2, "T7")
	if err := runAction(c, g); err != nil {
		t.Fatal(err)
	}
	v, _ := g.owner.Value()
	place, _ := g.owner.Place()
	if v != -3 || place != "T2" {
		t.Errorf("expected -3 in T2, have %g in %s", v, place)
	}
	if lines := c.Code().Lines(); len(lines) != 2 || lines[0] != "- 0 a T1" || lines[1] != "+ T1 T7 T2" {
		t.Errorf("unexpected code %v", lines)
	}
}

func TestProductAction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.translate")
	defer teardown()
	//
	c := &Compilation{optimize: true}
	g := groupFor(t, grammar.TermTailMore)
	member(t, g, grammar.MulOp).setOperator(scanner.Slash)
	member(t, g, grammar.Factor).synthesize(4, "b")
	member(t, g, grammar.TermTail).synthesize(1, "1")
	if err := runAction(c, g); err != nil {
		t.Fatal(err)
	}
	v, _ := g.owner.Value()
	place, _ := g.owner.Place()
	if v != 0.25 || place != "T1" || c.Code().Len() != 1 || c.Code().At(0).String() != "/ 1 b T1" {
		t.Errorf("expected 0.25 in T1 from [/ 1 b T1], have %g in %s from %v", v, place, c.Code().Lines())
	}
}

func TestLeafActions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.translate")
	defer teardown()
	//
	c := &Compilation{bindings: map[string]float64{"y": 2.5}}
	if err := c.hold(scanner.NewToken("y", scanner.Identifier, 1), 0); err != nil {
		t.Fatal(err)
	}
	g := groupFor(t, grammar.FactorIdentifier)
	if err := runAction(c, g); err != nil {
		t.Fatal(err)
	}
	if v, _ := g.owner.Value(); v != 2.5 {
		t.Errorf("expected bound value 2.5, have %g", v)
	}
	// holding area is one-shot
	if err := runAction(c, groupFor(t, grammar.FactorIdentifier)); err == nil {
		t.Errorf("expected internal error for empty holding area")
	}
	c.hold(scanner.NewToken("12", scanner.Number, 1), 0)
	if err := runAction(c, groupFor(t, grammar.FactorIdentifier)); err == nil {
		t.Errorf("expected internal error for number held for identifier action")
	}
}

func TestNumeralOutOfRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.translate")
	defer teardown()
	//
	big := "1"
	for i := 0; i < 400; i++ {
		big += "0"
	}
	_, err := TranslateString(big + " + 1")
	if err == nil {
		t.Fatalf("expected error for numeral out of range")
	}
	var serr *SyntaxError
	var ierr *InternalError
	if errors.As(err, &serr) || errors.As(err, &ierr) {
		t.Errorf("expected a range error, have %v", err)
	}
}

func TestInternalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.translate")
	defer teardown()
	//
	var ierr *InternalError
	in := newInstance(grammar.AddOp, 0)
	in.setOperator(scanner.Plus)
	if err := in.setOperator(scanner.Minus); !errors.As(err, &ierr) {
		t.Errorf("expected internal error for double assignment, have %v", err)
	}
	g := groupFor(t, grammar.TermRule)
	member(t, g, grammar.Factor).synthesize(2, "2")
	err := runAction(&Compilation{}, g) // TermTail has no value
	if !errors.As(err, &ierr) || ierr.Production != grammar.TermRule {
		t.Errorf("expected internal error in action 4, have %v", err)
	}
	g = groupFor(t, grammar.ExprTailEnd)
	g.owner = nil
	if err = runAction(&Compilation{}, g); !errors.As(err, &ierr) {
		t.Errorf("expected internal error for missing owner, have %v", err)
	}
	g = groupFor(t, grammar.ExprTailEnd)
	g.prod.ID = 99
	if err = runAction(&Compilation{}, g); !errors.As(err, &ierr) {
		t.Errorf("expected internal error for unknown action, have %v", err)
	}
}

// brokenTable creates a grammar Expr ➞ Term, Term ➞ number. It reuses
// the id of Expr ➞ Sign Term ExprTail, whose action misses Sign and ExprTail.
func brokenTable(t *testing.T) *grammar.Table {
	b := grammar.NewBuilder("broken")
	b.LHS(grammar.Expr).N(grammar.Term).End(grammar.ExprRule)
	b.LHS(grammar.Term).T(scanner.Number).End(grammar.FactorNumber)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	table, err := grammar.BuildTable(grammar.Analyze(g))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestMissingAttributeRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.translate")
	defer teardown()
	//
	_, err := Translate(scanner.Scan("7"), WithTable(brokenTable(t)))
	var ierr *InternalError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected internal error, have %v", err)
	}
	if ierr.Production != grammar.ExprRule {
		t.Errorf("expected error in action 1, have %v", ierr)
	}
}

func TestPanicOnInternalError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sdt.translate")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"panic-on-internal-error": true})
	defer gconf.Initialize(testconfig.Conf{})
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected translator to panic")
		}
	}()
	Translate(scanner.Scan("7"), WithTable(brokenTable(t)))
}
