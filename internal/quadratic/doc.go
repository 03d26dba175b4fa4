// Package quadratic solves a·x² + b·x + c = 0 over the reals using the
// closed-form formula. A negative discriminant is reported as an error;
// a zero leading coefficient is not validated and follows IEEE-754
// division semantics.
package quadratic
