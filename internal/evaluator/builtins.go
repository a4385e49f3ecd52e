package evaluator

import (
	"fmt"

	"github.com/mujiansu/monkey-lang/internal/config"
)

// builtins is the base catalog (spec §4.4.2), keyed by the names in
// internal/config so the registry and the constants never disagree
// on what's bound at the top level. The domain-stack additions (uuid,
// store*) register themselves into this same map from their own files'
// init().
var builtins = map[string]*Builtin{
	config.LenFuncName: {
		Name: config.LenFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=1", len(args))
			}
			switch arg := args[0].(type) {
			case *Array:
				return &Integer{Value: int64(len(arg.Elements))}
			case *String:
				return &Integer{Value: int64(len(arg.Value))}
			default:
				return newError(InvalidToken, "argument to `len` not supported, got %s", args[0].Type())
			}
		},
	},
	config.FirstFuncName: {
		Name: config.FirstFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newError(InvalidToken, "argument to `first` must be ARRAY, got %s", args[0].Type())
			}
			if len(arr.Elements) > 0 {
				return arr.Elements[0]
			}
			return NULL
		},
	},
	config.LastFuncName: {
		Name: config.LastFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newError(InvalidToken, "argument to `last` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length > 0 {
				return arr.Elements[length-1]
			}
			return NULL
		},
	},
	config.RestFuncName: {
		Name: config.RestFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newError(InvalidToken, "argument to `rest` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length > 0 {
				newElements := make([]Object, length-1)
				copy(newElements, arr.Elements[1:length])
				return &Array{Elements: newElements}
			}
			return NULL
		},
	},
	config.PushFuncName: {
		Name: config.PushFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 2 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=2", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newError(InvalidToken, "argument to `push` must be ARRAY, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			newElements := make([]Object, length+1)
			copy(newElements, arr.Elements)
			newElements[length] = args[1]
			return &Array{Elements: newElements}
		},
	},
	config.PutsFuncName: {
		Name: config.PutsFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			for _, arg := range args {
				fmt.Fprintln(e.Out, arg.Inspect())
			}
			return NULL
		},
	},
}
