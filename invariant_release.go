//go:build !quicconndebug

package quicconn

// assertInterestInvariant is the release-build half of the
// InterestInvariantViolated error kind: best-effort — log a warning
// and carry on, rather than panicking. Build with -tags quicconndebug
// to get the hard assertion instead (invariant_debug.go).
func assertInterestInvariant(ok bool, id InternalConnectionID, c category, logger Logger) {
	if !ok {
		logger.Warnf("%v", &InterestInvariantError{ID: id, List: c.String()})
	}
}
