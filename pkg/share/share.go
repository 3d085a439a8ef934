// Package share implements the Share/ShareSet data model: a share is a
// (ShareIdentifier, value) pair, with a surge wire layout and the equality
// and indexing helpers the combiner needs.
package share

import (
	"fmt"

	"github.com/renproject/surge"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/party"
)

// Share is one party's (identifier, value) point on the dealer's polynomial
// (spec §3, "Share"). value lives in the same field as the polynomial that
// produced it, never in the group of a commitment.
type Share struct {
	ID    party.ID
	Value field.Scalar
}

// New constructs a Share. It does not validate id against any particular
// generator or verifier set — that is the caller's job at combine time.
func New(id party.ID, value field.Scalar) Share {
	return Share{ID: id, Value: value}
}

// SizeHint implements surge.SizeHinter: the identifier's fixed width plus
// the value's canonical scalar encoding.
func (s Share) SizeHint() int {
	return s.ID.Width() + len(s.Value.Bytes())
}

// Marshal implements surge.Marshaler. The wire layout is the identifier's
// fixed-width big-endian projection immediately followed by the value's
// canonical scalar encoding — no length prefix, since both widths are fixed
// for a given field and identifier width (spec §6, "Share" byte layout).
func (s Share) Marshal(buf []byte, rem int) ([]byte, int, error) {
	idBytes := s.ID.Bytes()
	valueBytes := s.Value.Bytes()
	if rem < len(idBytes)+len(valueBytes) {
		return buf, rem, surge.ErrMaxBytesExceeded
	}
	n := copy(buf, idBytes)
	buf = buf[n:]
	rem -= n
	n = copy(buf, valueBytes)
	buf = buf[n:]
	rem -= n
	return buf, rem, nil
}

// Unmarshal parses one Share in the layout Share.Marshal writes, returning
// the remaining buffer and budget. f and identifierWidth must match
// the scheme that produced the original bytes; there is no self-describing
// width in the wire format.
func Unmarshal(f field.Field, identifierWidth int, buf []byte, rem int) (Share, []byte, int, error) {
	total := identifierWidth + f.ScalarSize()
	if rem < total || len(buf) < total {
		return Share{}, buf, rem, surge.ErrMaxBytesExceeded
	}
	id, err := party.FromBytes(f, identifierWidth, buf[:identifierWidth])
	if err != nil {
		return Share{}, buf, rem, fmt.Errorf("share: unmarshaling identifier: %w", err)
	}
	value, err := f.ScalarFromBytes(buf[identifierWidth:total])
	if err != nil {
		return Share{}, buf, rem, errs.New("share.Unmarshal", errs.SerializationError, err)
	}
	return Share{ID: id, Value: value}, buf[total:], rem - total, nil
}

// Set is a dealer's full collection of shares for one split, or a verifier's
// partial collection gathered at combine time.
type Set []Share

// Identifiers projects the x-coordinates out of a Set, the slice shape
// pkg/polynomial's Lagrange helpers consume directly.
func (s Set) Identifiers() []field.Scalar {
	out := make([]field.Scalar, len(s))
	for i, sh := range s {
		out[i] = sh.ID.Scalar()
	}
	return out
}

// Values projects the y-coordinates out of a Set, in the same order as
// Identifiers.
func (s Set) Values() []field.Scalar {
	out := make([]field.Scalar, len(s))
	for i, sh := range s {
		out[i] = sh.Value
	}
	return out
}

// HasDuplicateIdentifiers reports whether any two shares in the set carry
// the same identifier — an invalid input to any combiner (spec §4.1,
// combine_shares edge case "duplicate identifiers among provided shares").
func (s Set) HasDuplicateIdentifiers() bool {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i].ID.Equal(s[j].ID) {
				return true
			}
		}
	}
	return false
}

// SizeHint implements surge.SizeHinter.
func (s Set) SizeHint() int {
	total := 4
	for _, sh := range s {
		total += sh.SizeHint()
	}
	return total
}

// Marshal implements surge.Marshaler: a uint32 length prefix followed by
// each share's fixed-width encoding, mirroring the teacher's length-prefixed
// slice convention for variable-length collections.
func (s Set) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.MarshalU32(uint32(len(s)), buf, rem)
	if err != nil {
		return buf, rem, fmt.Errorf("share: marshaling set length: %w", err)
	}
	for i := range s {
		buf, rem, err = s[i].Marshal(buf, rem)
		if err != nil {
			return buf, rem, fmt.Errorf("share: marshaling share %d: %w", i, err)
		}
	}
	return buf, rem, nil
}

// UnmarshalSet parses a Set previously produced by Marshal.
func UnmarshalSet(f field.Field, identifierWidth int, buf []byte, rem int) (Set, []byte, int, error) {
	var length uint32
	buf, rem, err := surge.UnmarshalU32(&length, buf, rem)
	if err != nil {
		return nil, buf, rem, fmt.Errorf("share: unmarshaling set length: %w", err)
	}
	out := make(Set, 0, length)
	for i := uint32(0); i < length; i++ {
		var sh Share
		sh, buf, rem, err = Unmarshal(f, identifierWidth, buf, rem)
		if err != nil {
			return nil, buf, rem, fmt.Errorf("share: unmarshaling share %d: %w", i, err)
		}
		out = append(out, sh)
	}
	return out, buf, rem, nil
}
