//go:build quicconndebug

package quicconn

import "fmt"

// assertInterestInvariant is the debug-build half of the
// InterestInvariantViolated error kind: a hard assertion, mirroring
// the reference implementation's debug_assert!, enabled by building
// with -tags quicconndebug. See invariant_release.go for the
// production behavior (log + best-effort resync).
func assertInterestInvariant(ok bool, id InternalConnectionID, c category, logger Logger) {
	if !ok {
		panic(fmt.Sprintf("%v", &InterestInvariantError{ID: id, List: c.String()}))
	}
}
