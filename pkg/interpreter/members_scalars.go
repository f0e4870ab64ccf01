package interpreter

import (
	"fmt"
	"math"

	"objsh/shell-go/pkg/runtime"
)

// Division and modulo by zero follow IEEE 754 (±Inf, NaN) rather than
// faulting.
var numberOperators = map[string]func(a, b float64) float64{
	"+": func(a, b float64) float64 { return a + b },
	"-": func(a, b float64) float64 { return a - b },
	"*": func(a, b float64) float64 { return a * b },
	"/": func(a, b float64) float64 { return a / b },
	"%": math.Mod,
	"^": math.Pow,
}

func numberMember(n runtime.NumberValue, method string, args []runtime.Value) (runtime.Value, error) {
	op, ok := numberOperators[method]
	if !ok {
		return nil, unknownMethod(n, method)
	}
	rhs, err := numberArg(method, args)
	if err != nil {
		return nil, err
	}
	return runtime.NumberValue{Val: op(n.Val, rhs)}, nil
}

func (i *Interpreter) stringMember(s runtime.StringValue, method string, args []runtime.Value) (runtime.Value, error) {
	switch method {
	case "+":
		rhs, err := stringArg(method, args)
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: s.Val + rhs}, nil
	case "PrintLn":
		fmt.Fprintln(i.stdout, s.Val)
		return nil, nil
	}
	return nil, unknownMethod(s, method)
}

func arrayMember(arr *runtime.ArrayValue, method string, args []runtime.Value) (runtime.Value, error) {
	switch method {
	case "Index":
		n, err := numberArg(method, args)
		if err != nil {
			return nil, err
		}
		idx := math.Trunc(n)
		if math.IsNaN(idx) || idx < 0 || idx >= float64(len(arr.Elements)) {
			return nil, softFault("Array index %s out of bounds (length %d)", runtime.FormatNumber(n), len(arr.Elements))
		}
		return arr.Elements[int(idx)], nil
	case "Length":
		return runtime.NumberValue{Val: float64(len(arr.Elements))}, nil
	}
	return nil, unknownMethod(arr, method)
}
