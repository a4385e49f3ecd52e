// Package config is the single source of truth for names the evaluator
// and the built-ins registry need to agree on, so they aren't duplicated
// as string literals across files.
package config

// Built-in function names (spec §4.4.2's catalog, plus the domain-stack
// additions in SPEC_FULL.md §2).
const (
	LenFuncName   = "len"
	FirstFuncName = "first"
	LastFuncName  = "last"
	RestFuncName  = "rest"
	PushFuncName  = "push"
	PutsFuncName  = "puts"

	UUIDFuncName = "uuid"

	StorePutFuncName   = "storePut"
	StoreGetFuncName   = "storeGet"
	StoreQueryFuncName = "storeQuery"
)

// Prompt is an input prompt string for an interactive loop (spec §6.3).
// No package in this repository reads it.
const Prompt = ">> "
