package scanner

import (
	"github.com/mna/nenuphar-lox/lang/token"
)

// scanNumber scans a decimal number literal with an optional single '.'
// fractional part. A '.' not followed by a digit is left for the next
// token (e.g. a trailing method call dot).
func (s *Scanner) scanNumber(start token.Pos) token.Token {
	s.sb.Reset()

	for isDigit(s.cur) {
		s.sb.WriteRune(s.cur)
		s.advance()
	}

	// a '.' is only part of the literal when followed by a digit, otherwise
	// it is a separate Dot token.
	if s.cur == '.' && isDigit(s.peek()) {
		s.sb.WriteRune(s.cur)
		s.advance()
		for isDigit(s.cur) {
			s.sb.WriteRune(s.cur)
			s.advance()
		}
	}

	lit := s.sb.String()
	end := s.pos()
	return token.Token{Kind: token.Number, Raw: lit, Loc: token.Loc{Start: start, End: end}}
}
