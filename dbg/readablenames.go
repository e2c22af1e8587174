package dbg

import (
	"fmt"
	"reflect"

	petname "github.com/dustinkirkland/golang-petname"
)

// Hands out short readable names for arbitrary pointers, so that tree dumps
// can be followed by eye instead of comparing hex addresses. Names are
// assigned lazily and never released; that leak is harmless at debugging
// scale.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are assigned in order of demand, so we keep them nondeterministic
	// as a reminder that a name never identifies the same node across runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s-%s", petname.Adjective(), petname.Name())
	memo[obj] = r
	return r
}
