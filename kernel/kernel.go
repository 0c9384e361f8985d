// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/matrix"
)

var (
	// ErrLengthMismatch is returned when two vectors differ in length.
	ErrLengthMismatch = errors.New("kernel: vector lengths differ")
	// ErrZeroVector is returned by Cosine for a zero-norm vector.
	ErrZeroVector = errors.New("kernel: zero vector")
	// ErrLengthScale is returned for a non-positive or non-finite RBF length scale.
	ErrLengthScale = errors.New("kernel: length scale must be finite and > 0")
	// ErrUnknownKernel is returned by Parse and New for unrecognized kinds.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")
)

// Kind names a kernel.
type Kind int

const (
	KindRBF Kind = iota
	KindLinear
	KindCosine
	KindEuclidean
	KindTanimoto
)

func (k Kind) String() string {
	switch k {
	case KindRBF:
		return "rbf"
	case KindLinear:
		return "linear"
	case KindCosine:
		return "cosine"
	case KindEuclidean:
		return "euclidean"
	case KindTanimoto:
		return "tanimoto"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Parse maps a kernel name (case-insensitive) to its Kind.
func Parse(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rbf", "gaussian":
		return KindRBF, nil
	case "linear", "dot":
		return KindLinear, nil
	case "cosine":
		return KindCosine, nil
	case "euclidean", "l2":
		return KindEuclidean, nil
	case "tanimoto", "jaccard":
		return KindTanimoto, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
}

// New returns the metric for kind. lengthScale is used by RBF only.
func New(kind Kind, lengthScale float64) (gso.Metric, error) {
	switch kind {
	case KindRBF:
		return NewRBF(lengthScale)
	case KindLinear:
		return Linear{}, nil
	case KindCosine:
		return Cosine{}, nil
	case KindEuclidean:
		return Euclidean{}, nil
	case KindTanimoto:
		return Tanimoto{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKernel, kind)
	}
}

// RBF is the Gaussian kernel exp(−‖a−b‖² / (2ℓ²)).
type RBF struct {
	lengthScale float64
}

// NewRBF returns an RBF kernel with length scale ℓ.
func NewRBF(lengthScale float64) (*RBF, error) {
	if math.IsNaN(lengthScale) || math.IsInf(lengthScale, 0) || lengthScale <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrLengthScale, lengthScale)
	}

	return &RBF{lengthScale: lengthScale}, nil
}

// LengthScale returns ℓ.
func (k *RBF) LengthScale() float64 { return k.lengthScale }

// Pair returns exp(−‖a−b‖² / (2ℓ²)).
func (k *RBF) Pair(a, b []float64) (float64, error) {
	d2, err := squaredL2(a, b)
	if err != nil {
		return 0, err
	}

	return k.fromSquared(d2), nil
}

// Batch fills the upper triangle and mirrors it; the diagonal is exactly 1.
func (k *RBF) Batch(x *gso.Representations) (*matrix.Dense, error) {
	vecs := x.Vectors()
	n := len(vecs)
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	var d2 float64
	for i = 0; i < n; i++ {
		if err = out.Set(i, i, 1); err != nil {
			return nil, err
		}
		for j = i + 1; j < n; j++ {
			if d2, err = squaredL2(vecs[i], vecs[j]); err != nil {
				return nil, err
			}
			v := k.fromSquared(d2)
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
			if err = out.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func (k *RBF) fromSquared(d2 float64) float64 {
	return math.Exp(-d2 / (2 * k.lengthScale * k.lengthScale))
}

// Linear is the dot product a·b.
type Linear struct{}

// Pair returns a·b.
func (Linear) Pair(a, b []float64) (float64, error) { return dot(a, b) }

// Cosine is a·b / (‖a‖‖b‖).
type Cosine struct{}

// Pair returns the cosine similarity; ErrZeroVector if either norm is zero.
func (Cosine) Pair(a, b []float64) (float64, error) {
	ab, err := dot(a, b)
	if err != nil {
		return 0, err
	}
	na, _ := dot(a, a)
	nb, _ := dot(b, b)
	if na == 0 || nb == 0 {
		return 0, ErrZeroVector
	}

	return ab / math.Sqrt(na*nb), nil
}

// Euclidean is the distance ‖a−b‖.
type Euclidean struct{}

// Pair returns ‖a−b‖.
func (Euclidean) Pair(a, b []float64) (float64, error) {
	d2, err := squaredL2(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(d2), nil
}

// Tanimoto is the continuous Tanimoto (Jaccard) similarity
// a·b / (‖a‖² + ‖b‖² − a·b), the usual choice for molecular fingerprints.
// Two zero vectors are identical and score 1.
type Tanimoto struct{}

// Pair returns the Tanimoto similarity.
func (Tanimoto) Pair(a, b []float64) (float64, error) {
	ab, err := dot(a, b)
	if err != nil {
		return 0, err
	}
	na, _ := dot(a, a)
	nb, _ := dot(b, b)
	den := na + nb - ab
	if den == 0 {
		return 1, nil
	}

	return ab / den, nil
}

func dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s, nil
}

func squaredL2(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s, nil
}

// Compile-time assertions.
var (
	_ gso.Metric      = (*RBF)(nil)
	_ gso.BatchMetric = (*RBF)(nil)
	_ gso.Metric      = Linear{}
	_ gso.Metric      = Cosine{}
	_ gso.Metric      = Euclidean{}
	_ gso.Metric      = Tanimoto{}
)
