package interpreter

import (
	"fortio.org/log"

	"objsh/shell-go/pkg/lexer"
	"objsh/shell-go/pkg/runtime"
)

// evaluate resolves `receiver [method [args...]]`. The receiver and every
// argument are parsed against the same env, which nothing below mutates.
func (i *Interpreter) evaluate(expr string, env *runtime.Environment) (runtime.Value, error) {
	return i.evaluateTokens(lexer.SplitExpression(expr), env)
}

// evaluateGroup evaluates the inside of `( ... )`. A lone bare word there is
// a variable reference and must be bound.
func (i *Interpreter) evaluateGroup(expr string, env *runtime.Environment) (runtime.Value, error) {
	tokens := lexer.SplitExpression(expr)
	if len(tokens) == 1 {
		return i.parseToken(tokens[0], env, true)
	}
	return i.evaluateTokens(tokens, env)
}

func (i *Interpreter) evaluateTokens(tokens []string, env *runtime.Environment) (runtime.Value, error) {
	if len(tokens) == 0 {
		return nil, softFault("empty expression")
	}

	receiver, err := i.parseValue(tokens[0], env)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 1 {
		return receiver, nil
	}

	method := tokens[1]
	args := make([]runtime.Value, 0, len(tokens)-2)
	for _, tok := range tokens[2:] {
		arg, err := i.parseValue(tok, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	log.LogVf("eval %s %s with %d args", receiver.Kind(), method, len(args))
	return i.invokeMethod(receiver, method, args)
}

func (i *Interpreter) invokeMethod(receiver runtime.Value, method string, args []runtime.Value) (runtime.Value, error) {
	switch v := receiver.(type) {
	case runtime.FileValue:
		return i.fileMember(v, method, args)
	case runtime.FolderValue:
		return i.folderMember(v, method, args)
	case runtime.AppValue:
		return i.appMember(v, method, args)
	case runtime.NumberValue:
		return numberMember(v, method, args)
	case runtime.StringValue:
		return i.stringMember(v, method, args)
	case *runtime.ArrayValue:
		return arrayMember(v, method, args)
	default:
		return nil, unknownMethod(receiver, method)
	}
}

func numberArg(method string, args []runtime.Value) (float64, error) {
	if len(args) == 0 {
		return 0, softFault("%s expects a Number argument", method)
	}
	n, ok := args[0].(runtime.NumberValue)
	if !ok {
		return 0, softFault("%s expects a Number argument, got %s", method, args[0].Kind())
	}
	return n.Val, nil
}

func stringArg(method string, args []runtime.Value) (string, error) {
	if len(args) == 0 {
		return "", softFault("%s expects a String argument", method)
	}
	s, ok := args[0].(runtime.StringValue)
	if !ok {
		return "", softFault("%s expects a String argument, got %s", method, args[0].Kind())
	}
	return s.Val, nil
}
