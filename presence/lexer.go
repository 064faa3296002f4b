package presence

type tokenKind string

const (
	tokenKindName   tokenKind = "name"
	tokenKindAnd    tokenKind = "&&"
	tokenKindOr     tokenKind = "||"
	tokenKindNot    tokenKind = "!"
	tokenKindEq     tokenKind = "="
	tokenKindNeq    tokenKind = "!="
	tokenKindLParen tokenKind = "("
	tokenKindRParen tokenKind = ")"
	tokenKindEOF    tokenKind = "eof"
)

type token struct {
	kind tokenKind
	text string // only meaningful for tokenKindName
}

// isNameRune reports whether r may appear in a NAME token. The grammar
// allows a NAME to begin with a digit (Kconfig has integer-valued option
// names like 64BIT) or to be a bare integer, so unlike most languages'
// identifiers there's no special first-character rule here: any maximal run
// of letters, digits and underscores is a single NAME.
func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// lex tokenizes the full input up front; the parser consumes the resulting
// slice. Inputs are short dependency expressions, so there's no need for a
// streaming lexer here.
func lex(input string) ([]token, error) {
	runes := []rune(input)
	var toks []token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case isSpace(r):
			i++

		case r == '(':
			toks = append(toks, token{kind: tokenKindLParen})
			i++

		case r == ')':
			toks = append(toks, token{kind: tokenKindRParen})
			i++

		case r == '!':
			// "!" followed immediately by "=" is the start of "!=", not a
			// unary not.
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{kind: tokenKindNeq})
				i += 2
			} else {
				toks = append(toks, token{kind: tokenKindNot})
				i++
			}

		case r == '=':
			// A single "=" is accepted as equality, same as "==".
			if i+1 < len(runes) && runes[i+1] == '=' {
				i += 2
			} else {
				i++
			}
			toks = append(toks, token{kind: tokenKindEq})

		case r == '&':
			if i+1 < len(runes) && runes[i+1] == '&' {
				toks = append(toks, token{kind: tokenKindAnd})
				i += 2
			} else {
				return nil, &ParseError{Input: input}
			}

		case r == '|':
			if i+1 < len(runes) && runes[i+1] == '|' {
				toks = append(toks, token{kind: tokenKindOr})
				i += 2
			} else {
				return nil, &ParseError{Input: input}
			}

		case isNameRune(r):
			start := i
			for i < len(runes) && isNameRune(runes[i]) {
				i++
			}
			text := string(runes[start:i])
			switch text {
			case "and":
				toks = append(toks, token{kind: tokenKindAnd})
			case "or":
				toks = append(toks, token{kind: tokenKindOr})
			case "not":
				toks = append(toks, token{kind: tokenKindNot})
			default:
				toks = append(toks, token{kind: tokenKindName, text: text})
			}

		default:
			return nil, &ParseError{Input: input}
		}
	}
	toks = append(toks, token{kind: tokenKindEOF})
	return toks, nil
}
