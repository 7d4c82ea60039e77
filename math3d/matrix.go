package math3d

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Singular values smaller than this fraction of the largest are treated as
// zero when inverting. A joint whose axis is parallel to the rest of the leg
// still produces a column of rounding noise, which must not be inverted.
const pinvRcond = 1e-12

var (
	ErrEmptyMatrix = errors.New("matrix has no rows or columns")
	ErrSVDFailed   = errors.New("singular value decomposition failed")
)

// Pinv returns the Moore-Penrose pseudoinverse of a, computed from its SVD as
// V · Σ⁺ · Uᵀ. For an r×c input, the result is c×r.
//
// Nothing is damped: near a singularity the result can be enormous, and it is
// up to the caller to check SingularValues or Condition first.
func Pinv(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrSVDFailed
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Values are returned largest first.
	sigma := svd.Values(nil)
	cutoff := pinvRcond * sigma[0]

	inv := make([]float64, len(sigma))
	for i, s := range sigma {
		if s > cutoff {
			inv[i] = 1 / s
		}
	}

	var vs mat.Dense
	vs.Mul(&v, mat.NewDiagDense(len(inv), inv))

	out := mat.NewDense(c, r, nil)
	out.Mul(&vs, u.T())
	return out, nil
}

// SingularValues returns the singular values of a, largest first.
func SingularValues(a mat.Matrix) ([]float64, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return nil, ErrSVDFailed
	}

	return svd.Values(nil), nil
}

// Condition returns the 2-norm condition number of a. It's +Inf for a
// rank-deficient matrix.
func Condition(a mat.Matrix) float64 {
	return mat.Cond(a, 2)
}

// MulVector3 returns m · v for a matrix with three columns, such as a
// pseudoinverse Jacobian, as a plain slice.
func MulVector3(m mat.Matrix, v Vector3) []float64 {
	r, _ := m.Dims()
	out := mat.NewVecDense(r, nil)
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return out.RawVector().Data
}
