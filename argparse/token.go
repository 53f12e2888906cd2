package argparse

// TokenKind is the lexical class of a command-line token.
type TokenKind int

const (
	TokenPositional TokenKind = iota
	TokenShortOption
	TokenLongOption
	TokenMalformed
)

func (k TokenKind) String() string {
	switch k {
	case TokenPositional:
		return "positional"
	case TokenShortOption:
		return "short option"
	case TokenLongOption:
		return "long option"
	case TokenMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Classify reports the kind of tok. The empty string is positional; "-", "--"
// and anything starting with "---" are malformed.
func Classify(tok string) TokenKind {
	switch {
	case len(tok) == 0 || tok[0] != '-':
		return TokenPositional
	case len(tok) >= 3 && tok[1] == '-':
		if tok[2] == '-' {
			return TokenMalformed
		}
		return TokenLongOption
	case len(tok) >= 2 && tok[1] != '-':
		return TokenShortOption
	default:
		return TokenMalformed
	}
}

// IsOption reports whether k is a short or long option.
func (k TokenKind) IsOption() bool {
	return k == TokenShortOption || k == TokenLongOption
}
