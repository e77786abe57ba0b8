// Package field implements the complex-valued target field a beam-search
// depth step blends rule-category bias vectors into, plus the
// diversity-pressure correction that shrinks the blend toward the local
// bias when the frontier collapses.
package field

import "math"

// Complex is a single-precision complex number, matching the precision the
// reference field arithmetic is defined over.
type Complex struct {
	Re, Im float32
}

// NewComplex constructs a Complex from its real and imaginary parts.
func NewComplex(re, im float32) Complex {
	return Complex{Re: re, Im: im}
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{Re: c.Re, Im: -c.Im}
}

// NormSqr returns the squared magnitude.
func (c Complex) NormSqr() float32 {
	return c.Re*c.Re + c.Im*c.Im
}

// Norm returns the magnitude.
func (c Complex) Norm() float32 {
	return float32(math.Sqrt(float64(c.NormSqr())))
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

// Mul returns c * o.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Re*o.Im + c.Im*o.Re,
	}
}

// Scale returns c * f, a real scalar multiply.
func (c Complex) Scale(f float32) Complex {
	return Complex{Re: c.Re * f, Im: c.Im * f}
}

// Div returns c / f, a real scalar divide. f is assumed non-zero; callers
// scaling by blend weights never pass zero.
func (c Complex) Div(f float32) Complex {
	return Complex{Re: c.Re / f, Im: c.Im / f}
}
