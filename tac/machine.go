package tac

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/sdt/runtime"
)

// Machine runs three-address code. Identifiers are read from the global scope
// of its environment, temporaries are written to the local scope.
type Machine struct {
	env *runtime.Environment
}

// NewMachine creates a machine with identifiers bound to values.
func NewMachine(bindings map[string]float64) *Machine {
	return &Machine{env: runtime.NewEnvironment(bindings)}
}

// Environment returns the variable store of the machine.
func (m *Machine) Environment() *runtime.Environment {
	return m.env
}

// Run executes code instruction by instruction. Division follows IEEE 754
// semantics, dividing by zero yields an infinity.
func (m *Machine) Run(code *Code) error {
	for i, instr := range code.Instructions() {
		l, err := m.Value(instr.Left)
		if err != nil {
			return fmt.Errorf("instruction %d (%v): %w", i+1, instr, err)
		}
		r, err := m.Value(instr.Right)
		if err != nil {
			return fmt.Errorf("instruction %d (%v): %w", i+1, instr, err)
		}
		var v float64
		switch instr.Op {
		case Add:
			v = l + r
		case Sub:
			v = l - r
		case Mul:
			v = l * r
		case Div:
			v = l / r
		default:
			return fmt.Errorf("instruction %d (%v): unknown operator", i+1, instr)
		}
		if !IsTemporary(instr.Dest) {
			return fmt.Errorf("instruction %d (%v): destination is not a temporary", i+1, instr)
		}
		tag, found := m.env.Locals.Tags().ResolveOrDefineTag(instr.Dest)
		if found {
			return fmt.Errorf("instruction %d (%v): temporary %s assigned twice", i+1, instr, instr.Dest)
		}
		tag.Kind = runtime.TemporaryTag
		tag.Set(v)
		tracer().Debugf("%s := %g", instr.Dest, v)
	}
	return nil
}

// Value returns the value of a place: a numeral, an identifier or a
// temporary which has been assigned. Identifiers without a binding have the
// value IdentifierPlaceholder.
func (m *Machine) Value(place string) (float64, error) {
	if IsNumeral(place) {
		v, err := strconv.ParseFloat(place, 64)
		if err != nil {
			return 0, fmt.Errorf("numeral %s: %w", place, err)
		}
		return v, nil
	}
	tag, _ := m.env.Locals.ResolveTag(place)
	if tag == nil && !IsTemporary(place) {
		return IdentifierPlaceholder, nil
	}
	if tag == nil {
		return 0, fmt.Errorf("unbound place %q", place)
	}
	v, ok := tag.Value()
	if !ok {
		return 0, fmt.Errorf("place %q has no value", place)
	}
	return v, nil
}

// Eval runs code on a fresh machine and returns the value of place.
func Eval(code *Code, place string, bindings map[string]float64) (float64, error) {
	m := NewMachine(bindings)
	if err := m.Run(code); err != nil {
		return 0, err
	}
	return m.Value(place)
}
