package quadratic

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeDiscriminant is returned when b² - 4ac < 0 and the roots
// are not real.
var ErrNegativeDiscriminant = errors.New("negative discriminant: no real roots")

// Discriminant returns b² - 4ac.
func Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// Solve returns the two roots of a·x² + b·x + c = 0.
// root1 takes the + branch of the square root, root2 the - branch.
// When a is zero the divisions produce ±Inf or NaN and no error is returned.
func Solve(a, b, c float64) (root1, root2 float64, err error) {
	d := Discriminant(a, b, c)
	if d < 0 {
		return 0, 0, fmt.Errorf("%w (d=%g)", ErrNegativeDiscriminant, d)
	}

	s := math.Sqrt(d)
	root1 = (-b + s) / (2 * a)
	root2 = (-b - s) / (2 * a)
	return root1, root2, nil
}

// IsFinite reports whether both roots are finite numbers.
func IsFinite(root1, root2 float64) bool {
	return !math.IsNaN(root1) && !math.IsInf(root1, 0) &&
		!math.IsNaN(root2) && !math.IsInf(root2, 0)
}
