// Package party implements the ShareIdentifier data model and the pluggable
// identifier-generation subsystem of spec §4.2: sequential, hash-based
// pseudorandom, list-driven, and hybrid generators, all of which must
// produce pairwise distinct, nonzero identifiers for a split.
package party

import (
	"fmt"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
)

// ID is a nonzero field-valued share identifier with a fixed-width byte
// projection, the x-coordinate of a share's (x, y) point.
type ID struct {
	scalar field.Scalar
	width  int
}

// New wraps scalar as an ID of the given byte width. It fails with
// errs.ZeroIdentifier if scalar is zero — an identifier may never equal the
// field's additive identity (spec §3, "ShareIdentifier").
func New(scalar field.Scalar, width int) (ID, error) {
	if scalar.IsZero() {
		return ID{}, errs.New("party.New", errs.ZeroIdentifier, nil)
	}
	return ID{scalar: scalar, width: width}, nil
}

// Scalar returns the identifier's field value.
func (id ID) Scalar() field.Scalar { return id.scalar }

// Bytes is the to_buffer projection: exactly Width() bytes, big-endian.
func (id ID) Bytes() []byte {
	raw := id.scalar.Bytes()
	if len(raw) == id.width {
		return raw
	}
	out := make([]byte, id.width)
	if len(raw) > id.width {
		copy(out, raw[len(raw)-id.width:])
		return out
	}
	copy(out[id.width-len(raw):], raw)
	return out
}

// Width is the fixed encoded byte width of this identifier type.
func (id ID) Width() int { return id.width }

// Equal reports whether two identifiers carry the same field value.
func (id ID) Equal(other ID) bool {
	return id.scalar.Equal(other.scalar)
}

// FromBytes is the from_buffer projection: parses exactly width bytes into
// an ID over f.
func FromBytes(f field.Field, width int, b []byte) (ID, error) {
	if len(b) != width {
		return ID{}, errs.New("party.FromBytes", errs.InvalidShare,
			fmt.Errorf("expected %d bytes, got %d", width, len(b)))
	}
	padded := b
	if size := f.ScalarSize(); width != size {
		padded = make([]byte, size)
		if width > size {
			copy(padded, b[width-size:])
		} else {
			copy(padded[size-width:], b)
		}
	}
	s, err := f.ScalarFromBytes(padded)
	if err != nil {
		return ID{}, errs.New("party.FromBytes", errs.SerializationError, err)
	}
	return New(s, width)
}

// Generator exposes Get(index) -> ID for index in [0, limit) and must
// produce limit pairwise distinct, nonzero identifiers (spec §4.2). Get
// must be called with index == 0, 1, 2, … in order for a single split:
// RandomGenerator and ListThenRandomGenerator keep every value emitted so far
// to reject duplicates. The sequential and list variants are checked at
// construction and compute Get from index alone.
type Generator interface {
	Get(index int) (ID, error)
}
