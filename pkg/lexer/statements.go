package lexer

import "strings"

// Statement is one `;`-terminated unit of program text. Assign reports
// whether the statement binds Name to the value of Expr.
type Statement struct {
	Name   string
	Expr   string
	Assign bool
}

// SplitStatements breaks program text into statements. Only `{` and `}` nest;
// a `;` or `=` inside a block or a quoted string is ordinary content.
func SplitStatements(src string) []Statement {
	var (
		out     []Statement
		name    strings.Builder
		expr    strings.Builder
		assign  bool
		depth   int
		inQuote bool
	)

	write := func(r rune) {
		if assign {
			expr.WriteRune(r)
		} else {
			name.WriteRune(r)
		}
	}
	flush := func() {
		stmt := Statement{Assign: assign}
		if assign {
			stmt.Name = name.String()
			stmt.Expr = expr.String()
		} else {
			stmt.Expr = name.String()
		}
		name.Reset()
		expr.Reset()
		assign = false
		if strings.TrimSpace(stmt.Name) == "" && strings.TrimSpace(stmt.Expr) == "" {
			return
		}
		out = append(out, stmt)
	}

	for _, r := range src {
		switch {
		case r == '"':
			inQuote = !inQuote
			write(r)
		case inQuote:
			write(r)
		case r == '{':
			depth++
			write(r)
		case r == '}':
			if depth > 0 {
				depth--
			}
			write(r)
		case r == ';' && depth == 0:
			flush()
		case r == '=' && depth == 0 && !assign:
			assign = true
		default:
			write(r)
		}
	}

	if depth == 0 {
		flush()
	}
	return out
}
