package model

import "math"

// Distribution is a per-region input that is either a single scalar or an
// ordered series of values. The zero value is an empty series.
type Distribution struct {
	values []float64
	scalar bool
}

// Scalar returns a distribution holding one value that is broadcast over
// any coordinate sequence.
func Scalar(v float64) Distribution {
	return Distribution{values: []float64{v}, scalar: true}
}

// Series returns a distribution whose values pair positionally with a
// coordinate sequence.
func Series(values ...float64) Distribution {
	vs := make([]float64, len(values))
	copy(vs, values)
	return Distribution{values: vs}
}

// IsScalar reports whether d was built with Scalar.
func (d Distribution) IsScalar() bool { return d.scalar }

// IsEmpty reports whether d carries no values at all.
func (d Distribution) IsEmpty() bool { return len(d.values) == 0 }

// Len returns the number of stored values (1 for a scalar).
func (d Distribution) Len() int { return len(d.values) }

// Values returns a copy of the stored values.
func (d Distribution) Values() []float64 {
	vs := make([]float64, len(d.values))
	copy(vs, d.values)
	return vs
}

// Within reports whether every stored value lies in [lo, hi]. NaN never does.
func (d Distribution) Within(lo, hi float64) bool {
	for _, v := range d.values {
		if math.IsNaN(v) || v < lo || v > hi {
			return false
		}
	}
	return true
}

// Finite reports whether every stored value is a finite number.
func (d Distribution) Finite() bool {
	for _, v := range d.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
