package evaluator

import (
	"github.com/google/uuid"

	"github.com/mujiansu/monkey-lang/internal/config"
)

// uuid() generates a random (v4) UUID and returns it as a String. The
// teacher's funxy catalog exposes a whole uuid virtual package (v4/v5/v7,
// namespaces, byte conversion); this language has no Bytes or Result
// object to hang that surface off of, so only generation survives.
func init() {
	builtins[config.UUIDFuncName] = &Builtin{
		Name: config.UUIDFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 0 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=0", len(args))
			}
			return &String{Value: uuid.New().String()}
		},
	}
}
