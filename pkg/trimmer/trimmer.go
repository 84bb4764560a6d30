// 15 Oct 2026

// Package trimmer decides which sequences and columns of an alignment
// to keep. It does not do the sums itself. They are done by an Engine,
// which is handed names, sequences and parameters, and gives back one
// flag per sequence and one per column. This package checks what goes
// in and what comes back, and wraps the answer as an align.Trimmed.
package trimmer

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/andrew-torda/msatrim/pkg/align"
)

// Engine computes masks. It must not hang on to names or seqs after
// it returns.
type Engine interface {
	Masks(names, seqs []string, p Params) (rows, cols []bool, err error)
}

// EngineFunc lets an ordinary function be an Engine.
type EngineFunc func(names, seqs []string, p Params) (rows, cols []bool, err error)

// Masks calls f.
func (f EngineFunc) Masks(names, seqs []string, p Params) ([]bool, []bool, error) {
	return f(names, seqs, p)
}

// Kind says which sort of trimming a Params describes.
type Kind int

const (
	Automatic Kind = iota // a named heuristic, see Method
	Manual                // thresholds, see ManualOptions
)

func (k Kind) String() string {
	if k == Manual {
		return "manual"
	}
	return "automatic"
}

// Params is what an Engine gets told. For Automatic, Method is set.
// For Manual, Options is set.
type Params struct {
	Kind    Kind
	Method  Method
	Options ManualOptions
}

func (p Params) String() string {
	if p.Kind == Manual {
		return "manual " + p.Options.String()
	}
	return "automatic " + p.Method.String()
}

// Trimmer is one trimming strategy bound to an engine.
type Trimmer struct {
	params Params
	engine Engine
}

// noEngine catches a nil interface and a nil EngineFunc inside one.
func noEngine(e Engine) bool {
	if f, ok := e.(EngineFunc); ok && f == nil {
		return true
	}
	return e == nil
}

// NewAutomatic returns a trimmer which leaves everything to the
// engine's heuristic m.
func NewAutomatic(m Method, e Engine) (*Trimmer, error) {
	if !m.valid() {
		return nil, fmt.Errorf("automatic trimmer method %v: %w", m, align.ErrValue)
	}
	if noEngine(e) {
		return nil, fmt.Errorf("automatic trimmer with no engine: %w", align.ErrValue)
	}
	return &Trimmer{params: Params{Kind: Automatic, Method: m}, engine: e}, nil
}

// NewManual returns a trimmer which passes opts to the engine. The
// options are checked for sensible ranges, but how they interact is
// the engine's business.
func NewManual(opts ManualOptions, e Engine) (*Trimmer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if noEngine(e) {
		return nil, fmt.Errorf("manual trimmer with no engine: %w", align.ErrValue)
	}
	return &Trimmer{params: Params{Kind: Manual, Options: opts.clone()}, engine: e}, nil
}

// Params returns the parameters handed to the engine.
func (t *Trimmer) Params() Params {
	p := t.params
	p.Options = p.Options.clone()
	return p
}

// Trim runs the engine on a and wraps the result. a is not changed.
// An error from the engine is passed back. Masks of the wrong length
// are a broken engine, not bad input, and we panic.
func (t *Trimmer) Trim(a *align.Alignment) (*align.Trimmed, error) {
	names, seqs := a.Names(), a.Sequences().Strings()
	nrow, ncol := len(seqs), a.Residues().Len()
	rows, cols, err := t.engine.Masks(names, seqs, t.Params())
	if err != nil {
		return nil, fmt.Errorf("trimming with %v: %w", t.params, err)
	}
	if len(rows) != nrow || len(cols) != ncol {
		panic(fmt.Sprintf("trimming engine broke contract: masks %d x %d for alignment %d x %d",
			len(rows), len(cols), nrow, ncol))
	}
	trimmed, err := align.Trim(a, align.NewMask(rows), align.NewMask(cols))
	if err != nil {
		panic("program bug: " + err.Error())
	}
	log.Debugf("trimmed with %v: sequences %v, residues %v",
		t.params, trimmed.SequencesMask(), trimmed.ResiduesMask())
	return trimmed, nil
}
