package party

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
	"golang.org/x/crypto/sha3"
)

// RandomGenerator produces identifiers by absorbing
// domainSeparator ‖ big-endian-u32(index) into a SHAKE-256 XOF and
// rejection-sampling the squeezed output against zero and every previously
// emitted value (spec §4.2, "Random"). Two RandomGenerators built from the
// same (domainSeparator, seed) emit identical sequences — scenario S5.
type RandomGenerator struct {
	f                 field.Field
	domainSeparator   []byte
	seed              []byte
	width             int
	emitted           []field.Scalar
	squeezeExtraBytes int
}

// NewRandomGenerator constructs a generator over f. squeezeExtraBytes widens
// the XOF output beyond the scalar's canonical size to keep rejection-
// sampling bias negligible (spec §4.2 leaves the exact width
// implementation-defined); 16 bytes is the default used throughout this
// module (see SPEC_FULL.md §4.2a).
func NewRandomGenerator(f field.Field, domainSeparator, seed []byte, width int) *RandomGenerator {
	return &RandomGenerator{
		f:                 f,
		domainSeparator:   append([]byte(nil), domainSeparator...),
		seed:              append([]byte(nil), seed...),
		width:             width,
		squeezeExtraBytes: 16,
	}
}

// Get is deterministic in (domainSeparator, seed, index) but stateful across
// calls on the same generator: it rejection-samples against every scalar
// this generator has already emitted, so callers must invoke it with
// index == 0, 1, 2, … for a single split (spec §4.2, "rejection-samples if
// the candidate is zero or a duplicate of any prior").
func (g *RandomGenerator) Get(index int) (ID, error) {
	const maxAttempts = 1 << 16
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := g.squeeze(index, attempt)
		if candidate.IsZero() {
			continue
		}
		if g.isDuplicate(candidate) {
			continue
		}
		g.emitted = append(g.emitted, candidate)
		return New(candidate, g.width)
	}
	return ID{}, errs.New("RandomGenerator.Get", errs.GeneratorExhausted,
		fmt.Errorf("could not sample a fresh nonzero identifier for index %d after %d attempts", index, maxAttempts))
}

func (g *RandomGenerator) squeeze(index, attempt int) field.Scalar {
	xof := sha3.NewShake256()
	xof.Write(g.domainSeparator)

	var idxBuf [4]byte
	binary.BigEndian.PutUint32(idxBuf[:], uint32(index))
	xof.Write(idxBuf[:])

	if attempt > 0 {
		var attemptBuf [4]byte
		binary.BigEndian.PutUint32(attemptBuf[:], uint32(attempt))
		xof.Write([]byte("retry"))
		xof.Write(attemptBuf[:])
	}

	xof.Write(g.seed)

	out := make([]byte, g.f.ScalarSize()+g.squeezeExtraBytes)
	if _, err := xof.Read(out); err != nil {
		panic(fmt.Sprintf("party: SHAKE-256 squeeze failed unexpectedly: %v", err))
	}
	return g.f.ScalarFromWideBytes(out)
}

func (g *RandomGenerator) isDuplicate(candidate field.Scalar) bool {
	for _, e := range g.emitted {
		if e.Equal(candidate) {
			return true
		}
	}
	return false
}
