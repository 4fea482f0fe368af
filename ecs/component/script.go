package component

import "github.com/d5/tengo/v2"

// Script is a compiled per-entity tengo program. Compiled is nil until the
// script system first runs it.
type Script struct {
	Name     string
	Source   []byte
	Compiled *tengo.Compiled
	Failed   bool
}

var ScriptComponent = NewComponent[Script]()
