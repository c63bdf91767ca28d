package quantity

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse reads a quantity expression: an optional magnitude followed by a
// compound unit expression.
//
//	r.Parse("100 kg")
//	r.Parse("9.81 m/s^2")
//	r.Parse("1e9 g*mm**2/s**2")
//	r.Parse("kg m / s")
//	r.Parse("42")            // dimensionless
//
// '*' and whitespace both act as multiplication, '/' as division, '^' and
// '**' as exponentiation with integer exponents. A bare number parses as a
// dimensionless quantity.
func (r *Registry) Parse(s string) (Quantity, error) {
	p := &parser{reg: r, input: s}
	p.next()

	magnitude := 1.0
	if p.tok == tokNumber {
		magnitude = p.num
		p.next()
		if p.tok == tokMul {
			p.next()
		}
	} else if p.tok == tokEOF {
		return Quantity{}, &SyntaxError{Input: s, Pos: p.pos, Msg: "empty expression"}
	}

	if p.tok == tokEOF {
		return New(magnitude, Dimensionless), nil
	}

	unit, err := p.parseExpr()
	if err != nil {
		return Quantity{}, err
	}
	if p.tok != tokEOF {
		return Quantity{}, &SyntaxError{Input: s, Pos: p.pos, Msg: "unexpected trailing input"}
	}
	return New(magnitude, unit), nil
}

// ParseUnit reads a unit expression. A numeric factor is folded into the
// returned unit ("15 * minute" is a unit fifteen times the minute), so the
// result always converts with magnitude preserved.
func (r *Registry) ParseUnit(s string) (Unit, error) {
	q, err := r.Parse(s)
	if err != nil {
		return Unit{}, err
	}
	u := q.unit
	if v := q.Value(); v != 1 {
		if u.IsOffset() {
			return Unit{}, &SyntaxError{Input: s, Msg: "offset units cannot be scaled"}
		}
		u.factor *= v
		u.name = strings.TrimSpace(s)
	}
	return u, nil
}

type token int

const (
	tokEOF token = iota
	tokNumber
	tokName
	tokMul
	tokDiv
	tokPow
)

type parser struct {
	reg   *Registry
	input string
	pos   int

	tok     token
	num     float64
	name    string
	started bool
}

func (p *parser) errf(msg string) *SyntaxError {
	return &SyntaxError{Input: p.input, Pos: p.pos, Msg: msg}
}

// parseExpr := term { ("*" | "/" | juxtaposition) term }
func (p *parser) parseExpr() (Unit, error) {
	unit, err := p.parseTerm()
	if err != nil {
		return Unit{}, err
	}
	for {
		var div bool
		switch p.tok {
		case tokMul:
			p.next()
		case tokDiv:
			div = true
			p.next()
		case tokName:
			// "kg m" style juxtaposition.
		default:
			return unit, nil
		}
		next, err := p.parseTerm()
		if err != nil {
			return Unit{}, err
		}
		if unit.IsOffset() || next.IsOffset() {
			return Unit{}, p.errf("offset units cannot be combined with other units")
		}
		if div {
			unit = unit.Div(next)
		} else {
			unit = unit.Mul(next)
		}
	}
}

// parseTerm := name [ ("^" | "**") signed-integer ]
func (p *parser) parseTerm() (Unit, error) {
	if p.tok != tokName {
		return Unit{}, p.errf("expected unit name")
	}
	u, err := p.reg.Unit(p.name)
	if err != nil {
		return Unit{}, err
	}
	p.next()
	if p.tok != tokPow {
		return u, nil
	}
	p.next()
	if p.tok != tokNumber {
		return Unit{}, p.errf("expected integer exponent")
	}
	exp := int(p.num)
	if float64(exp) != p.num {
		return Unit{}, p.errf("exponents must be integers")
	}
	p.next()
	if exp != 1 && u.IsOffset() {
		return Unit{}, p.errf("offset units cannot be raised to a power")
	}
	return u.Pow(exp), nil
}

func (p *parser) next() {
	// A sign is part of a number only at the start of the expression
	// ("-40 degC") or right after an exponent operator ("s^-2").
	signOK := !p.started || p.tok == tokPow
	p.started = true

	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
	if p.pos >= len(p.input) {
		p.tok = tokEOF
		return
	}
	switch c := p.input[p.pos]; {
	case c == '*':
		if p.pos+1 < len(p.input) && p.input[p.pos+1] == '*' {
			p.pos += 2
			p.tok = tokPow
		} else {
			p.pos++
			p.tok = tokMul
		}
	case c == '/':
		p.pos++
		p.tok = tokDiv
	case c == '^':
		p.pos++
		p.tok = tokPow
	case c == 0xC2 && p.pos+1 < len(p.input) && p.input[p.pos+1] == 0xB7: // '·'
		p.pos += 2
		p.tok = tokMul
	case isNumberStart(c) || ((c == '-' || c == '+') && signOK):
		p.scanNumber()
	default:
		p.scanName()
	}
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

func (p *parser) scanNumber() {
	start := p.pos
	if c := p.input[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		if c == 'e' || c == 'E' {
			// Scientific notation, possibly with a signed exponent.
			if p.pos+1 < len(p.input) && isExponentTail(p.input[p.pos+1:]) {
				p.pos++
				if c := p.input[p.pos]; c == '-' || c == '+' {
					p.pos++
				}
				continue
			}
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		// Leave the bad run as a name token; the parser reports it as an
		// unknown unit with the offending text intact.
		p.tok = tokName
		p.name = p.input[start:p.pos]
		return
	}
	p.tok = tokNumber
	p.num = v
}

func isExponentTail(rest string) bool {
	if rest[0] == '-' || rest[0] == '+' {
		rest = rest[1:]
	}
	return len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9'
}

func (p *parser) scanName() {
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isNameRune(r) {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		// Skip the unrecognized byte so the error position advances.
		p.pos++
	}
	p.tok = tokName
	p.name = p.input[start:p.pos]
}

func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '°'
}
