package tac

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Op is an arithmetic operator.
type Op byte

// Operators of instructions.
const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

func (op Op) String() string {
	return string(op)
}

// Sentinel places of the identity elements. They are operands like any
// numeral, but translators use them to decide whether an operation can be
// dropped.
const (
	AdditiveIdentity       = "0"
	MultiplicativeIdentity = "1"
)

// IdentifierPlaceholder is the value of identifiers without a binding.
const IdentifierPlaceholder = 1.0

// Instruction is a three-address instruction Dest := Left Op Right.
type Instruction struct {
	Op    Op
	Left  string
	Right string
	Dest  string
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %s %s %s", i.Op, i.Left, i.Right, i.Dest)
}

// Code is an append-only buffer of instructions. The zero value is an empty
// buffer.
type Code struct {
	instrs []Instruction
}

// Emit appends an instruction.
func (c *Code) Emit(op Op, left, right, dest string) Instruction {
	instr := Instruction{Op: op, Left: left, Right: right, Dest: dest}
	tracer().Debugf("emit %v", instr)
	c.instrs = append(c.instrs, instr)
	return instr
}

// Len returns the number of instructions.
func (c *Code) Len() int {
	if c == nil {
		return 0
	}
	return len(c.instrs)
}

// At returns the instruction at position i.
func (c *Code) At(i int) Instruction {
	return c.instrs[i]
}

// Instructions returns a copy of the instructions.
func (c *Code) Instructions() []Instruction {
	if c == nil {
		return nil
	}
	instrs := make([]Instruction, len(c.instrs))
	copy(instrs, c.instrs)
	return instrs
}

// Lines returns every instruction in text form.
func (c *Code) Lines() []string {
	lines := make([]string, c.Len())
	for i := range lines {
		lines[i] = c.instrs[i].String()
	}
	return lines
}

// WriteTo writes one instruction per line, as
//
//     <op> <left> <right> <dest>
//
func (c *Code) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, instr := range c.Instructions() {
		k, err := fmt.Fprintln(w, instr.String())
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *Code) String() string {
	var b bytes.Buffer
	c.WriteTo(&b)
	return b.String()
}

// --- Temporaries -----------------------------------------------------------

// Temps generates names for temporaries. The zero value starts at T1.
type Temps struct {
	count int
}

// Next returns a fresh temporary.
func (t *Temps) Next() string {
	t.count++
	return "T" + strconv.Itoa(t.count)
}

// Count returns the number of temporaries handed out.
func (t *Temps) Count() int {
	return t.count
}

// IsTemporary is true for names of the form T<n>, n ≥ 1.
func IsTemporary(place string) bool {
	return len(place) >= 2 && place[0] == 'T' && place[1] != '0' && IsNumeral(place[1:])
}

// IsNumeral is true for places consisting of decimal digits.
func IsNumeral(place string) bool {
	if place == "" {
		return false
	}
	for i := 0; i < len(place); i++ {
		if place[i] < '0' || place[i] > '9' {
			return false
		}
	}
	return true
}
