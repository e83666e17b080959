// Package internalerr provides the module's invariant-assertion helper.
//
// An invariant violation here always indicates a bug in this module's own
// algorithms, never bad caller input (those are reported as ordinary errors
// by the packages that validate input). Assert panics with a Violation, which
// the package boundary most able to add useful context recovers and converts
// back into a normal error — currently solver.Solve, the one entry point
// that drives every heuristic pass.
package internalerr

// Violation is the panic value raised by Assert. It is recovered and
// converted into an error at a package boundary, never left to escape to an
// external caller of this module as a panic.
type Violation struct {
	Msg string
}

func (v Violation) Error() string {
	return "tokswap: internal invariant violated: " + v.Msg
}

// Assert panics with a Violation if cond is false. msg should name the
// invariant that failed, not the symptom.
func Assert(cond bool, msg string) {
	if !cond {
		panic(Violation{Msg: msg})
	}
}
