package trimmer

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/msatrim/pkg/align"
)

// Method names one of the engine's automatic heuristics.
type Method int

const (
	Strict     Method = iota // fixed gap and similarity cut offs
	StrictPlus               // strict, tuned for neighbour joining
	GappyOut                 // gap distribution only
	NoGaps                   // drop every column with a gap
	NoAllGaps                // drop columns made only of gaps
	Automated1               // choose between strict and gappyout
)

var methodNames = [...]string{
	Strict:     "strict",
	StrictPlus: "strictplus",
	GappyOut:   "gappyout",
	NoGaps:     "nogaps",
	NoAllGaps:  "noallgaps",
	Automated1: "automated1",
}

func (m Method) valid() bool { return m >= 0 && int(m) < len(methodNames) }

func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod turns a name like "gappyout" into a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(m), nil
		}
	}
	return 0, fmt.Errorf("unknown trimming method %q: %w", s, align.ErrValue)
}
