package align

// Internals, only visible to the tests.
var (
	NormNdx = normNdx
	Parse   = parse
	Detect  = detect
	DumpsAs = dumps
)
