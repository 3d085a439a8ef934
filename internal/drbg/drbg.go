// Package drbg provides a deterministic byte stream for tests and property
// fixtures that need a reproducible "random" source (e.g. re-running a
// property-test failure with the same seed). It is never imported by
// pkg/vss, pkg/polynomial, pkg/field, pkg/group, or pkg/party — production
// split/combine paths always take their randomness from the caller's
// io.Reader, per spec §6's RNG capability.
package drbg

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
)

// DRBG is a blake3-based deterministic byte generator: Read output is the
// (unkeyed) BLAKE3 hash of the seed followed by a big-endian monotonic
// counter, squeezed in 32-byte blocks.
type DRBG struct {
	seed    []byte
	counter uint64
	buf     []byte
}

// New returns a DRBG seeded with seed. Equal seeds produce identical output
// streams, which is the point — it lets a failing property test be re-run
// byte-for-byte from the seed alone.
func New(seed []byte) *DRBG {
	return &DRBG{seed: append([]byte(nil), seed...)}
}

// Read implements io.Reader.
func (d *DRBG) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(d.buf) == 0 {
			d.buf = d.block()
		}
		copied := copy(p[n:], d.buf)
		d.buf = d.buf[copied:]
		n += copied
	}
	return n, nil
}

func (d *DRBG) block() []byte {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], d.counter)
	d.counter++

	h := blake3.New()
	h.Write(d.seed)
	h.Write(ctr[:])
	return h.Sum(nil)
}

var _ io.Reader = (*DRBG)(nil)
