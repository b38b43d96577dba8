package mml

// Scanner streams tokens out of a score text. It holds only a cursor; no
// token is buffered beyond the one being returned.
type Scanner struct {
	src string
	pos int
}

func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Next returns the next token, or ok=false once the input is exhausted.
// Whitespace and bar dividers are skipped before each token, and any
// character that does not start a token is skipped silently; end of input
// is the normal terminal condition, not an error.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == ' ' || ch == '\t' || ch == '|' {
			s.pos++
			continue
		}
		s.pos++
		c := upper(ch)
		switch {
		case c == 'R' || c == 'P':
			return Token{Kind: KindRest, Length: s.scanLength()}, true
		case c >= 'A' && c <= 'G':
			tok := Token{Kind: KindNote, Letter: c}
			// At most one accidental character applies; a second modifier is
			// left in place for the length scan or the next token.
			if s.pos < len(s.src) {
				switch s.src[s.pos] {
				case '+', '#':
					tok.Accidental = 1
					s.pos++
				case '-':
					tok.Accidental = -1
					s.pos++
				}
			}
			tok.Length = s.scanLength()
			return tok, true
		}
	}
	return Token{}, false
}

// scanLength consumes a run of ASCII digits. 0 means no explicit length.
func (s *Scanner) scanLength() int {
	n := 0
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		n = n*10 + int(s.src[s.pos]-'0')
		s.pos++
	}
	return n
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
