package scanner

import "fmt"

// --- Categories ------------------------------------------------------------

// Category is the coarse class of a lexical token.
type Category int8

// Token categories. CatError is used for unrecognized words and for the
// end marker.
const (
	CatError Category = iota
	CatKeyword
	CatOperator
	CatDelimiter
	CatNumber
	CatIdentifier
)

var categoryNames = [...]string{"Error", "Keyword", "Operator", "Delimiter", "Number", "Identifier"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// --- Symbols ---------------------------------------------------------------

// Symbol is the fine grained class of a lexical token. Parsers match
// terminals by symbol.
type Symbol int16

// Symbols produced by the scanner. Empty is never produced, it is reserved
// for the right hand side of ε-productions.
const (
	Error Symbol = iota
	// keywords
	BeginSym
	CallSym
	ConstSym
	DoSym
	EndSym
	IfSym
	OddSym
	ProcedureSym
	ReadSym
	ThenSym
	VarSym
	WhileSym
	WriteSym
	// operators
	Plus
	Minus
	Times
	Slash
	Eql
	Neq
	Leq
	Lss
	Geq
	Gtr
	Becomes
	// delimiters
	Lparen
	Rparen
	Comma
	Semicolon
	Period
	// literals
	Number
	Identifier
	// markers
	EndOfInput
	Empty
)

// SymbolCount is the number of distinct symbols.
const SymbolCount = int(Empty) + 1

var symbolNames = [SymbolCount]string{
	"Error",
	"BeginSym", "CallSym", "ConstSym", "DoSym", "EndSym", "IfSym", "OddSym",
	"ProcedureSym", "ReadSym", "ThenSym", "VarSym", "WhileSym", "WriteSym",
	"Plus", "Minus", "Times", "Slash", "Eql", "Neq", "Leq", "Lss", "Geq", "Gtr", "Becomes",
	"Lparen", "Rparen", "Comma", "Semicolon", "Period",
	"Number", "Identifier",
	"EndOfInput", "Empty",
}

func (s Symbol) String() string {
	if s < 0 || int(s) >= SymbolCount {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return symbolNames[s]
}

// Category returns the category a symbol belongs to.
func (s Symbol) Category() Category {
	switch {
	case s >= BeginSym && s <= WriteSym:
		return CatKeyword
	case s >= Plus && s <= Becomes:
		return CatOperator
	case s >= Lparen && s <= Period:
		return CatDelimiter
	case s == Number:
		return CatNumber
	case s == Identifier:
		return CatIdentifier
	}
	return CatError
}

type lexeme struct {
	text string
	sym  Symbol
}

// Reserved words, operators and delimiters. The order of operators matters
// for spacing normalization: a relational operator must precede its
// one-character prefix.
var (
	keywords = []lexeme{
		{"begin", BeginSym}, {"call", CallSym}, {"const", ConstSym}, {"do", DoSym},
		{"end", EndSym}, {"if", IfSym}, {"odd", OddSym}, {"procedure", ProcedureSym},
		{"read", ReadSym}, {"then", ThenSym}, {"var", VarSym}, {"while", WhileSym},
		{"write", WriteSym},
	}
	operators = []lexeme{
		{"+", Plus}, {"-", Minus}, {"*", Times}, {"/", Slash}, {"=", Eql}, {"#", Neq},
		{"<=", Leq}, {"<", Lss}, {">=", Geq}, {">", Gtr}, {":=", Becomes},
	}
	delimiters = []lexeme{
		{"(", Lparen}, {")", Rparen}, {",", Comma}, {";", Semicolon}, {".", Period},
	}
)

// --- Tokens ----------------------------------------------------------------

// Token is a classified word of the input. Tokens are immutable.
type Token struct {
	lexeme string
	cat    Category
	sym    Symbol
	line   int
}

// NewToken creates a token. The category is derived from the symbol.
func NewToken(lexeme string, sym Symbol, line int) Token {
	return Token{lexeme: lexeme, cat: sym.Category(), sym: sym, line: line}
}

// EOI creates the end marker for input consisting of lines lines.
func EOI(lines int) Token {
	return Token{cat: CatError, sym: EndOfInput, line: lines}
}

// Lexeme returns the lower-cased text of the token.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Category returns the category of the token.
func (t Token) Category() Category {
	return t.cat
}

// Symbol returns the symbol of the token.
func (t Token) Symbol() Symbol {
	return t.sym
}

// Line returns the 1-based input line the token has been found in.
func (t Token) Line() int {
	return t.line
}

// IsError is true for unrecognized words.
func (t Token) IsError() bool {
	return t.sym == Error
}

func (t Token) String() string {
	if t.sym == EndOfInput {
		return "<EndOfInput>"
	}
	return fmt.Sprintf("<%s %q>", t.sym, t.lexeme)
}
