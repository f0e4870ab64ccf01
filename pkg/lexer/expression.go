package lexer

import "strings"

// SplitExpression splits a single expression into whitespace-separated
// tokens. Whitespace inside (), [], {} or a quoted string belongs to the
// token. A bracketed group or a quoted string ends its token as soon as it
// closes, so `"a"b` yields `"a"` followed by `b`. Unterminated groups and
// quotes drop the trailing partial token.
func SplitExpression(src string) []string {
	var (
		tokens  []string
		current strings.Builder
		depth   int
		inQuote bool
	)

	emit := func() {
		if current.Len() == 0 {
			return
		}
		tokens = append(tokens, current.String())
		current.Reset()
	}

	for _, r := range src {
		switch {
		case r == '"' && depth == 0:
			current.WriteRune(r)
			if inQuote {
				inQuote = false
				emit()
			} else {
				inQuote = true
			}
		case inQuote:
			current.WriteRune(r)
		case isOpener(r):
			depth++
			current.WriteRune(r)
		case isCloser(r):
			if depth == 0 {
				continue
			}
			current.WriteRune(r)
			depth--
			if depth == 0 {
				emit()
			}
		case isSpace(r):
			if depth > 0 {
				current.WriteRune(r)
				continue
			}
			emit()
		default:
			current.WriteRune(r)
		}
	}

	if depth == 0 && !inQuote {
		emit()
	}
	return tokens
}

func isOpener(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

func isCloser(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '　':
		return true
	}
	return false
}
