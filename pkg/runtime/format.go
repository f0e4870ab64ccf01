package runtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders a value for display. Handles render in their constructor
// syntax, so a displayed File or Folder can be pasted back into the shell.
func Format(val Value) string {
	switch v := val.(type) {
	case NumberValue:
		return FormatNumber(v.Val)
	case StringValue:
		return strconv.Quote(v.Val)
	case *ArrayValue:
		parts := make([]string, len(v.Elements))
		for i, elem := range v.Elements {
			parts[i] = Format(elem)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case FileValue:
		return fmt.Sprintf("File(%q)", v.Path)
	case FolderValue:
		return fmt.Sprintf("Folder(%q)", v.Path)
	case AppValue:
		return fmt.Sprintf("App(%q)", v.Name)
	case nil:
		return ""
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

// FormatNumber prints plain decimal notation, switching to exponent form
// only for very large or very small magnitudes.
func FormatNumber(n float64) string {
	abs := math.Abs(n)
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Text coerces a value to the text used for paths, names and process
// arguments. Arrays have no text form.
func Text(val Value) (string, bool) {
	switch v := val.(type) {
	case NumberValue:
		return FormatNumber(v.Val), true
	case StringValue:
		return v.Val, true
	case FileValue:
		return v.Path, true
	case FolderValue:
		return v.Path, true
	case AppValue:
		return v.Name, true
	default:
		return "", false
	}
}
