// Package air carries the randomness and composition coefficients that a
// STARK prover and verifier exchange across the protocol boundary. The
// types are plain containers: an external coefficient generator fills them
// once and the protocol reads them by field access.
package air

import (
	"github.com/vybium/vybium-tip/pkg/vybium-tip/field"
)

// AuxTraceRandElements stores the random elements drawn for each auxiliary
// trace segment, in segment order. It is append-only during construction.
type AuxTraceRandElements struct {
	segments [][]field.Element
}

// NewAuxTraceRandElements creates an empty container.
func NewAuxTraceRandElements() AuxTraceRandElements {
	return AuxTraceRandElements{}
}

// AddSegment appends the random elements for the next auxiliary segment.
func (a *AuxTraceRandElements) AddSegment(elements []field.Element) {
	a.segments = append(a.segments, elements)
}

// NumSegments returns the number of stored segments.
func (a *AuxTraceRandElements) NumSegments() int {
	return len(a.segments)
}

// SegmentElements returns the random elements of segment i. Passing an
// index that was never added is a programmer error and panics.
func (a *AuxTraceRandElements) SegmentElements(i int) []field.Element {
	return a.segments[i]
}

// CompositionCoefficient is an (alpha, beta) pair attached to a single
// constraint or trace column.
type CompositionCoefficient struct {
	Alpha field.Element
	Beta  field.Element
}

// ConstraintCompositionCoefficients holds the coefficients used to combine
// transition and boundary constraints into the composition polynomial.
type ConstraintCompositionCoefficients struct {
	Transition []CompositionCoefficient
	Boundary   []CompositionCoefficient
}

// DeepCompositionCoefficients holds the coefficients used to combine trace
// and constraint composition polynomials during the DEEP phase, plus the
// final degree adjustment pair.
type DeepCompositionCoefficients struct {
	// Trace holds one (alpha, beta) pair per trace column.
	Trace []CompositionCoefficient
	// Constraints holds one delta per constraint composition column.
	Constraints []field.Element
	// Lambda and Mu adjust the degree of the combined polynomial.
	Lambda field.Element
	Mu     field.Element
}
