package interpreter

import (
	"errors"
	"strconv"
	"strings"

	"fortio.org/log"

	"objsh/shell-go/pkg/lexer"
	"objsh/shell-go/pkg/resource"
	"objsh/shell-go/pkg/runtime"
)

var constructors = []struct {
	prefix string
	kind   runtime.Kind
}{
	{"File(", runtime.KindFile},
	{"Folder(", runtime.KindFolder},
	{"App(", runtime.KindApp},
}

// parseValue turns one token into a value. Nested forms are evaluated on a
// clone of env; nothing here writes to env itself.
func (i *Interpreter) parseValue(token string, env *runtime.Environment) (runtime.Value, error) {
	return i.parseToken(token, env, false)
}

// parseToken is parseValue with control over the bare-word fallback: when
// requireBinding is set an unbound bare word is a lookup fault instead of a
// String.
func (i *Interpreter) parseToken(token string, env *runtime.Environment, requireBinding bool) (runtime.Value, error) {
	src := strings.TrimSpace(token)

	if v, ok := env.Lookup(src); ok {
		return v, nil
	}
	if n, ok := parseNumber(src); ok {
		return runtime.NumberValue{Val: n}, nil
	}

	switch {
	case wrapped(src, `"`, `"`):
		return runtime.StringValue{Val: src[1 : len(src)-1]}, nil
	case wrapped(src, "(", ")"):
		val, err := i.evaluateGroup(src[1:len(src)-1], env.Clone())
		return requireValue(val, err, "sub-expression %s", src)
	case wrapped(src, "{", "}"):
		val, err := i.runBlock(src[1:len(src)-1], env.Clone())
		return requireValue(val, err, "block %s", src)
	case wrapped(src, "[", "]"):
		return i.parseArray(src[1:len(src)-1], env.Clone())
	}

	for _, ctor := range constructors {
		if strings.HasPrefix(src, ctor.prefix) && strings.HasSuffix(src, ")") && len(src) > len(ctor.prefix) {
			return i.construct(ctor.kind, src[len(ctor.prefix):len(src)-1], env.Clone())
		}
	}

	if requireBinding {
		return nil, softFault("unbound variable %q", src)
	}
	return runtime.StringValue{Val: src}, nil
}

func (i *Interpreter) parseArray(inner string, env *runtime.Environment) (runtime.Value, error) {
	tokens := lexer.SplitExpression(inner)
	elems := make([]runtime.Value, 0, len(tokens))
	for _, tok := range tokens {
		v, err := i.parseValue(tok, env)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &runtime.ArrayValue{Elements: elems}, nil
}

// construct builds a handle from the text of its argument expression. File
// and Folder create the entry when it does not exist yet.
func (i *Interpreter) construct(kind runtime.Kind, inner string, env *runtime.Environment) (runtime.Value, error) {
	arg, err := i.evaluate(inner, env)
	arg, err = requireValue(arg, err, "%s argument %q", kind, inner)
	if err != nil {
		return nil, err
	}
	text, ok := runtime.Text(arg)
	if !ok {
		return nil, softFault("%s argument must be text, got %s", kind, arg.Kind())
	}

	switch kind {
	case runtime.KindFile:
		path := resource.Resolve(i.workDir, text)
		if err := resource.EnsureFile(path); err != nil {
			return nil, hardFault("create file", path, err)
		}
		log.LogVf("File handle %s", path)
		return runtime.FileValue{Path: path}, nil
	case runtime.KindFolder:
		path := resource.Resolve(i.workDir, text)
		if err := resource.EnsureFolder(path); err != nil {
			return nil, hardFault("create folder", path, err)
		}
		log.LogVf("Folder handle %s", path)
		return runtime.FolderValue{Path: path}, nil
	default:
		return runtime.AppValue{Name: text}, nil
	}
}

// parseNumber accepts decimal literals only; Go's hex and underscore forms
// are not part of the shell syntax.
func parseNumber(src string) (float64, bool) {
	if src == "" || strings.ContainsAny(src, "_xX") {
		return 0, false
	}
	n, err := strconv.ParseFloat(src, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return n, true
		}
		return 0, false
	}
	return n, true
}

func wrapped(src, opener, closer string) bool {
	return len(src) >= len(opener)+len(closer) && strings.HasPrefix(src, opener) && strings.HasSuffix(src, closer)
}

// requireValue turns "no result" from a nested evaluation into a soft fault.
func requireValue(val runtime.Value, err error, format string, args ...any) (runtime.Value, error) {
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, softFault(format+" produced no value", args...)
	}
	return val, nil
}
