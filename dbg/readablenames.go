// Package dbg gives arbitrary geometry values (pivots, arcs, candidate
// events) a short, human-memorable label for trace output, instead of
// printing raw float coordinates that are hard to tell apart at a glance.
package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This memoizes names per key. It flagrantly leaks memory but generates
// names lazily, so it's not a problem unless you're actually using it.

var memo = map[interface{}]string{}

func init() {
	// Since names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns a memoized readable name for key. Any comparable value can
// be used as a key: a pivot point, a vertex index, a pointer — whatever the
// caller needs to keep visually distinct across a trace.
func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

// PivotName returns Name(pivot) colored cyan, the convention this module
// uses for reflex pivots in colored trace output.
func PivotName(pivot interface{}) string {
	return aurora.Cyan(Name(pivot)).String()
}
