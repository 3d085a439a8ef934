// Package polynomial implements the generic constant-time polynomial engine
// shared by every VSS scheme: coefficient sampling with a forced nonzero
// leading term, Horner evaluation, and the Lagrange basis used by
// reconstruction. It is written entirely against field.Scalar/field.Field so
// it has no notion of which concrete field or curve a caller has chosen.
package polynomial

import (
	"io"

	"github.com/luxfi/vss/internal/zeroize"
	"github.com/luxfi/vss/pkg/errs"
	"github.com/luxfi/vss/pkg/field"
)

// Polynomial is f(x) = coefficients[0] + coefficients[1]*x + ... +
// coefficients[degree]*x^degree, stored lowest-degree-first.
type Polynomial struct {
	coefficients []field.Scalar
}

// Degree is len(coefficients) - 1.
func (p *Polynomial) Degree() int { return len(p.coefficients) - 1 }

// Constant is coefficients[0], the shared secret in every scheme that uses
// this engine (spec §4.1/§4.3/§4.5, "the secret is f(0)").
func (p *Polynomial) Constant() field.Scalar { return p.coefficients[0] }

// Coefficient returns coefficients[i] for diagnostic/commitment use; callers
// must not mutate the returned Scalar.
func (p *Polynomial) Coefficient(i int) field.Scalar { return p.coefficients[i] }

// New wraps an explicit coefficient list, lowest-degree-first. Used by tests
// and by callers reconstructing a polynomial from known coefficients.
func New(coefficients []field.Scalar) *Polynomial {
	return &Polynomial{coefficients: append([]field.Scalar(nil), coefficients...)}
}

// NewRandomPolynomial samples a degree-(threshold-1) polynomial with
// coefficients[0] fixed to secret and coefficients[1:] drawn uniformly from
// f using rng, re-drawing the leading coefficient until it is nonzero (spec
// §4.1, Open Question: "the distilled spec's resolution is to mandate a
// nonzero leading coefficient, accepting negligible-probability redraw").
// threshold must be >= 2 (spec §3/§4.1, "polynomial creation fails if
// t < 2") — a threshold of 1 would admit a bare constant polynomial with no
// leading term for the nonzero-coefficient rule to apply to.
func NewRandomPolynomial(f field.Field, secret field.Scalar, threshold int, rng io.Reader) (*Polynomial, error) {
	if threshold < 2 {
		return nil, errs.New("polynomial.NewRandomPolynomial", errs.InvalidParameters, nil)
	}
	coefficients := make([]field.Scalar, threshold)
	// Copy the secret so that Zeroize wipes the polynomial's own value, not
	// the caller's Scalar.
	coefficients[0] = secret.Add(f.Zero())
	for i := 1; i < threshold-1; i++ {
		c, err := f.RandomScalar(rng)
		if err != nil {
			zeroizeAll(coefficients[:i])
			return nil, errs.New("polynomial.NewRandomPolynomial", errs.InvalidParameters, err)
		}
		coefficients[i] = c
	}
	const maxAttempts = 1 << 16
	leading, err := drawNonzero(f, rng, maxAttempts)
	if err != nil {
		zeroizeAll(coefficients[:threshold-1])
		return nil, errs.New("polynomial.NewRandomPolynomial", errs.GeneratorExhausted, err)
	}
	coefficients[threshold-1] = leading
	return &Polynomial{coefficients: coefficients}, nil
}

func drawNonzero(f field.Field, rng io.Reader, maxAttempts int) (field.Scalar, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c, err := f.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		if !c.IsZero() {
			return c, nil
		}
	}
	return nil, errs.New("polynomial.drawNonzero", errs.GeneratorExhausted, nil)
}

// Evaluate computes f(x) by Horner's rule, a fixed number of Add/Mul calls
// determined only by the degree, never by the value of x or of any
// coefficient (spec §9, "no branching on secret-dependent values").
func (p *Polynomial) Evaluate(x field.Scalar) field.Scalar {
	acc := p.coefficients[len(p.coefficients)-1]
	for i := len(p.coefficients) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coefficients[i])
	}
	return acc
}

// Zeroize wipes every coefficient that implements zeroize.Zeroer. Callers
// must invoke this on every exit path of a split operation, success or
// failure, per spec §9.
func (p *Polynomial) Zeroize() {
	zeroizeAll(p.coefficients)
}

func zeroizeAll(coefficients []field.Scalar) {
	for _, c := range coefficients {
		if z, ok := c.(zeroize.Zeroer); ok {
			z.Zeroize()
		}
	}
}
