package evaluator

import (
	"database/sql"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mujiansu/monkey-lang/internal/config"
)

// store is a process-wide, in-memory SQLite-backed key/value table
// (spec's non-goals rule out file I/O, so the DSN is always ":memory:").
// storePut/storeGet/storeQuery give scripts a persistence builtin that
// survives across evaluations of the same *Evaluator without ever
// touching disk. The teacher's builtins_sql.go exposes the full
// database/sql surface (arbitrary drivers, transactions, typed SQL
// values); that's out of scope here, so only this one fixed table
// survives, grounded on the teacher's lazy-open-and-register pattern.
var (
	storeOnce sync.Once
	storeDB   *sql.DB
	storeErr  error
)

func openStore() (*sql.DB, error) {
	storeOnce.Do(func() {
		storeDB, storeErr = sql.Open("sqlite", ":memory:")
		if storeErr != nil {
			return
		}
		_, storeErr = storeDB.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	})
	return storeDB, storeErr
}

func init() {
	builtins[config.StorePutFuncName] = &Builtin{
		Name: config.StorePutFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 2 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=2", len(args))
			}
			key, ok := args[0].(*String)
			if !ok {
				return newError(InvalidToken, "argument to `storePut` key must be STRING, got %s", args[0].Type())
			}
			value, ok := args[1].(*String)
			if !ok {
				return newError(InvalidToken, "argument to `storePut` value must be STRING, got %s", args[1].Type())
			}
			db, err := openStore()
			if err != nil {
				return newError(InvalidToken, "storePut: %s", err.Error())
			}
			_, err = db.Exec(`INSERT INTO kv(key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key.Value, value.Value)
			if err != nil {
				return newError(InvalidToken, "storePut: %s", err.Error())
			}
			return NULL
		},
	}

	builtins[config.StoreGetFuncName] = &Builtin{
		Name: config.StoreGetFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=1", len(args))
			}
			key, ok := args[0].(*String)
			if !ok {
				return newError(InvalidToken, "argument to `storeGet` must be STRING, got %s", args[0].Type())
			}
			db, err := openStore()
			if err != nil {
				return newError(InvalidToken, "storeGet: %s", err.Error())
			}
			var value string
			err = db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key.Value).Scan(&value)
			if err == sql.ErrNoRows {
				return NULL
			}
			if err != nil {
				return newError(InvalidToken, "storeGet: %s", err.Error())
			}
			return &String{Value: value}
		},
	}

	builtins[config.StoreQueryFuncName] = &Builtin{
		Name: config.StoreQueryFuncName,
		Fn: func(e *Evaluator, args ...Object) Object {
			if len(args) != 1 {
				return newError(WrongArity, "wrong number of arguments. got=%d, want=1", len(args))
			}
			prefix, ok := args[0].(*String)
			if !ok {
				return newError(InvalidToken, "argument to `storeQuery` must be STRING, got %s", args[0].Type())
			}
			db, err := openStore()
			if err != nil {
				return newError(InvalidToken, "storeQuery: %s", err.Error())
			}
			rows, err := db.Query(`SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`, prefix.Value)
			if err != nil {
				return newError(InvalidToken, "storeQuery: %s", err.Error())
			}
			defer rows.Close()

			var keys []Object
			for rows.Next() {
				var key string
				if err := rows.Scan(&key); err != nil {
					return newError(InvalidToken, "storeQuery: %s", err.Error())
				}
				keys = append(keys, &String{Value: key})
			}
			return &Array{Elements: keys}
		},
	}
}
