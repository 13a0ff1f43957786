package fraction

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// continued-fraction expansion stops once the convergent is this close to the input
const epsilon = 1e-9

// largest denominator Rationalize will produce
const MaxDenominator = 1 << 24

// Fraction is a rational number. It is not kept in lowest terms: Commonize
// deliberately produces values like 4/8 so offsets can share a denominator.
type Fraction struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

// New builds n/d with the sign carried on the numerator. A zero denominator
// is treated as 1.
func New(n, d int64) Fraction {
	if d == 0 {
		d = 1
	}
	if d < 0 {
		n, d = -n, -d
	}
	return Fraction{Numerator: n, Denominator: d}
}

var One = Fraction{Numerator: 1, Denominator: 1}

func gcd[A constraints.Signed](a, b A) A {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm[A constraints.Signed](a, b A) A {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// Rationalize approximates x with a bounded continued-fraction expansion.
// Decimal tempo and measure-length values like 145.5 or 0.75 come back exact.
func Rationalize(x float64) Fraction {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fraction{Numerator: 0, Denominator: 1}
	}
	if math.Abs(x) >= 1<<53 {
		return Fraction{Numerator: int64(x), Denominator: 1}
	}

	neg := x < 0
	v := math.Abs(x)

	var h0, h1 int64 = 0, 1
	var k0, k1 int64 = 1, 0
	f := v
	for i := 0; i < 64; i++ {
		a := int64(math.Floor(f))
		h := a*h1 + h0
		k := a*k1 + k0
		if k > MaxDenominator {
			break
		}
		h0, h1 = h1, h
		k0, k1 = k1, k

		if math.Abs(v-float64(h1)/float64(k1)) <= epsilon*math.Max(1, v) {
			break
		}
		rem := f - float64(a)
		if rem == 0 {
			break
		}
		f = 1 / rem
	}

	if k1 == 0 {
		h1, k1 = int64(math.Round(v)), 1
	}
	if neg {
		h1 = -h1
	}
	return Fraction{Numerator: h1, Denominator: k1}
}

// Commonize re-expresses a and b over the least common multiple of their
// denominators. Feeding the second result back in as b across a set of
// fractions grows a denominator that expresses all of them exactly.
func Commonize(a, b Fraction) (Fraction, Fraction) {
	a, b = New(a.Numerator, a.Denominator), New(b.Numerator, b.Denominator)
	d := lcm(a.Denominator, b.Denominator)
	return Fraction{Numerator: a.Numerator * (d / a.Denominator), Denominator: d},
		Fraction{Numerator: b.Numerator * (d / b.Denominator), Denominator: d}
}

// Reduced returns the fraction in lowest terms.
func (f Fraction) Reduced() Fraction {
	f = New(f.Numerator, f.Denominator)
	g := gcd(f.Numerator, f.Denominator)
	if g <= 1 {
		return f
	}
	return Fraction{Numerator: f.Numerator / g, Denominator: f.Denominator / g}
}

// Equal compares values, not representations: 1/2 equals 2/4.
func (f Fraction) Equal(o Fraction) bool {
	f, o = New(f.Numerator, f.Denominator), New(o.Numerator, o.Denominator)
	return f.Numerator*o.Denominator == o.Numerator*f.Denominator
}

// Less reports whether f < o.
func (f Fraction) Less(o Fraction) bool {
	f, o = New(f.Numerator, f.Denominator), New(o.Numerator, o.Denominator)
	return f.Numerator*o.Denominator < o.Numerator*f.Denominator
}

func (f Fraction) Float64() float64 {
	if f.Denominator == 0 {
		return float64(f.Numerator)
	}
	return float64(f.Numerator) / float64(f.Denominator)
}

// Int is the integer quotient, truncated toward zero.
func (f Fraction) Int() int64 {
	if f.Denominator == 0 {
		return f.Numerator
	}
	return f.Numerator / f.Denominator
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}
