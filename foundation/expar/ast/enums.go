// File: enums.go
// Title: Expression Operator, Scope and SI Prefix Enumerations
// Description: Defines the operator kinds, bracket scope kinds and SI unit
//              prefixes used by the expression AST, together with their
//              symbolic and canonical string forms in both directions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial enumerations with round-trip conversions

package ast

// Operator identifies the operation of a BinaryExpr or UnaryExpr
type Operator int

const (
	OpNone Operator = iota
	OpPlus
	OpMinus
	OpMult
	OpDiv
	OpOr
	OpAnd
	OpXor
	OpNot
	OpBor
	OpBand
	OpBsl
	OpBsr
	OpEq
	OpNeq
	OpLt
	OpGt
	OpLe
	OpGe
	OpMod
	OpPow
	OpAssign
)

type operatorInfo struct {
	op     Operator
	symbol string
	name   string
}

// operatorTable is the single source for both string directions.
var operatorTable = []operatorInfo{
	{OpPlus, "+", "op_plus"},
	{OpMinus, "-", "op_minus"},
	{OpMult, "*", "op_mult"},
	{OpDiv, "/", "op_div"},
	{OpOr, "||", "op_or"},
	{OpAnd, "&&", "op_and"},
	{OpXor, "^^", "op_xor"},
	{OpNot, "!", "op_not"},
	{OpBor, "|", "op_bor"},
	{OpBand, "&", "op_band"},
	{OpBsl, "<<", "op_bsl"},
	{OpBsr, ">>", "op_bsr"},
	{OpEq, "==", "op_eq"},
	{OpNeq, "!=", "op_neq"},
	{OpLt, "<", "op_lt"},
	{OpGt, ">", "op_gt"},
	{OpLe, "<=", "op_le"},
	{OpGe, ">=", "op_ge"},
	{OpMod, "%", "op_mod"},
	{OpPow, "^", "op_pow"},
	{OpAssign, "=", "op_assign"},
}

var (
	operatorsBySymbol = make(map[string]Operator, len(operatorTable))
	operatorsByName   = make(map[string]Operator, len(operatorTable))
)

func init() {
	for _, info := range operatorTable {
		operatorsBySymbol[info.symbol] = info.op
		operatorsByName[info.name] = info.op
	}
}

func (op Operator) info() (operatorInfo, bool) {
	if op <= OpNone || int(op) > len(operatorTable) {
		return operatorInfo{}, false
	}
	return operatorTable[op-1], true
}

// String returns the symbolic form of the operator (e.g. OpAnd returns "&&").
// OpNone and unknown values render as "NONE".
func (op Operator) String() string {
	if info, ok := op.info(); ok {
		return info.symbol
	}
	return "NONE"
}

// Name returns the canonical identifier of the operator (e.g. OpAnd returns "op_and")
func (op Operator) Name() string {
	if info, ok := op.info(); ok {
		return info.name
	}
	return "op_none"
}

// IsValid reports whether op is a defined operator other than OpNone
func (op Operator) IsValid() bool {
	_, ok := op.info()
	return ok
}

// ParseOperator returns the operator with the given symbolic form, or OpNone
func ParseOperator(symbol string) Operator {
	if op, ok := operatorsBySymbol[symbol]; ok {
		return op
	}
	return OpNone
}

// OperatorFromName returns the operator with the given canonical name, or OpNone
func OperatorFromName(name string) Operator {
	if op, ok := operatorsByName[name]; ok {
		return op
	}
	return OpNone
}

// Operators returns every defined operator in declaration order
func Operators() []Operator {
	ops := make([]Operator, 0, len(operatorTable))
	for _, info := range operatorTable {
		ops = append(ops, info.op)
	}
	return ops
}

// ScopeType identifies which symbols delimit a ScopeExpr
type ScopeType int

const (
	ScpNone   ScopeType = iota
	ScpRound            // ( )
	ScpSquare           // [ ]
	ScpCurly            // { }
	ScpApex             // ' '
	ScpQuotes           // " "
)

type scopeInfo struct {
	scope ScopeType
	open  string
	close string
	name  string
}

var scopeTable = []scopeInfo{
	{ScpRound, "(", ")", "scp_round"},
	{ScpSquare, "[", "]", "scp_square"},
	{ScpCurly, "{", "}", "scp_curly"},
	{ScpApex, "'", "'", "scp_apex"},
	{ScpQuotes, `"`, `"`, "scp_quotes"},
}

func (s ScopeType) info() (scopeInfo, bool) {
	if s <= ScpNone || int(s) > len(scopeTable) {
		return scopeInfo{}, false
	}
	return scopeTable[s-1], true
}

// Name returns the canonical identifier of the scope type (e.g. "scp_round")
func (s ScopeType) Name() string {
	if info, ok := s.info(); ok {
		return info.name
	}
	return "scp_none"
}

// Open returns the opening delimiter, or "" for ScpNone
func (s ScopeType) Open() string {
	info, _ := s.info()
	return info.open
}

// Close returns the closing delimiter, or "" for ScpNone
func (s ScopeType) Close() string {
	info, _ := s.info()
	return info.close
}

// String returns both delimiters (e.g. "()"), or "NONE"
func (s ScopeType) String() string {
	if info, ok := s.info(); ok {
		return info.open + info.close
	}
	return "NONE"
}

// IsValid reports whether s is a defined scope type other than ScpNone
func (s ScopeType) IsValid() bool {
	_, ok := s.info()
	return ok
}

// ScopeTypeFromName returns the scope type with the given canonical name, or ScpNone
func ScopeTypeFromName(name string) ScopeType {
	for _, info := range scopeTable {
		if info.name == name {
			return info.scope
		}
	}
	return ScpNone
}

// ScopeTypeFromBracket returns the scope type opened or closed by the given
// delimiter, or ScpNone
func ScopeTypeFromBracket(bracket string) ScopeType {
	for _, info := range scopeTable {
		if info.open == bracket || info.close == bracket {
			return info.scope
		}
	}
	return ScpNone
}

// ScopeTypes returns every defined scope type in declaration order
func ScopeTypes() []ScopeType {
	scopes := make([]ScopeType, 0, len(scopeTable))
	for _, info := range scopeTable {
		scopes = append(scopes, info.scope)
	}
	return scopes
}

// SiPrefix is a prefix of the International System of Units
type SiPrefix int

const (
	SiYotta SiPrefix = iota // Y  1e24
	SiZetta                 // Z  1e21
	SiExa                   // E  1e18
	SiPeta                  // P  1e15
	SiTera                  // T  1e12
	SiGiga                  // G  1e9
	SiMega                  // M  1e6
	SiKilo                  // k  1e3
	SiNone                  // -  1
	SiMilli                 // m  1e-3
	SiMicro                 // u  1e-6
	SiNano                  // n  1e-9
	SiPico                  // p  1e-12
	SiFemto                 // f  1e-15
	SiAtto                  // a  1e-18
	SiZepto                 // z  1e-21
	SiYocto                 // y  1e-24
)

type siInfo struct {
	letter byte
	name   string
	factor float64
}

var siTable = [...]siInfo{
	SiYotta: {'Y', "si_yotta", 1e24},
	SiZetta: {'Z', "si_zetta", 1e21},
	SiExa:   {'E', "si_exa", 1e18},
	SiPeta:  {'P', "si_peta", 1e15},
	SiTera:  {'T', "si_tera", 1e12},
	SiGiga:  {'G', "si_giga", 1e9},
	SiMega:  {'M', "si_mega", 1e6},
	SiKilo:  {'k', "si_kilo", 1e3},
	SiNone:  {' ', "si_none", 1},
	SiMilli: {'m', "si_milli", 1e-3},
	SiMicro: {'u', "si_micro", 1e-6},
	SiNano:  {'n', "si_nano", 1e-9},
	SiPico:  {'p', "si_pico", 1e-12},
	SiFemto: {'f', "si_femto", 1e-15},
	SiAtto:  {'a', "si_atto", 1e-18},
	SiZepto: {'z', "si_zepto", 1e-21},
	SiYocto: {'y', "si_yocto", 1e-24},
}

func (si SiPrefix) info() siInfo {
	if si < SiYotta || si > SiYocto {
		return siTable[SiNone]
	}
	return siTable[si]
}

// Name returns the canonical identifier of the prefix (e.g. "si_kilo")
func (si SiPrefix) Name() string {
	return si.info().name
}

// String is an alias for Name
func (si SiPrefix) String() string {
	return si.Name()
}

// Letter returns the unit letter of the prefix (e.g. 'k'); SiNone returns ' '
func (si SiPrefix) Letter() byte {
	return si.info().letter
}

// ScalingFactor returns the multiplier of the prefix (e.g. 1e3 for SiKilo)
func (si SiPrefix) ScalingFactor() float64 {
	return si.info().factor
}

// SiPrefixFromLetter returns the prefix for a unit letter, or SiNone
func SiPrefixFromLetter(letter byte) SiPrefix {
	if letter == ' ' {
		return SiNone
	}
	for i, info := range siTable {
		if info.letter == letter {
			return SiPrefix(i)
		}
	}
	return SiNone
}

// SiPrefixFromName returns the prefix with the given canonical name, or SiNone
func SiPrefixFromName(name string) SiPrefix {
	for i, info := range siTable {
		if info.name == name {
			return SiPrefix(i)
		}
	}
	return SiNone
}

// SiPrefixes returns every prefix from largest to smallest, SiNone included
func SiPrefixes() []SiPrefix {
	prefixes := make([]SiPrefix, 0, len(siTable))
	for i := range siTable {
		prefixes = append(prefixes, SiPrefix(i))
	}
	return prefixes
}
