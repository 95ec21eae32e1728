package spatialmath

import (
	"fmt"

	"github.com/pkg/errors"
)

// NotARotationMatrixError is returned when a matrix cannot be turned into a proper rotation matrix.
type NotARotationMatrixError struct {
	Matrix [9]float64
	Reason string
}

func (e *NotARotationMatrixError) Error() string {
	return fmt.Sprintf("not a rotation matrix (%s):\n%s", e.Reason, matrixString(e.Matrix))
}

// NotUnitQuaternionError is returned by the explicit unit-norm assertions on quaternions.
type NotUnitQuaternionError struct {
	Quaternion Quaternion
	Norm       float64
}

func (e *NotUnitQuaternionError) Error() string {
	return fmt.Sprintf("quaternion %s is not a unit-quaternion, norm: %v", e.Quaternion.String(), e.Norm)
}

// NotPlanarRotationError is returned when a 2D transform is requested with a rotation that is not about the z axis.
type NotPlanarRotationError struct {
	Orientation string
}

func (e *NotPlanarRotationError) Error() string {
	return fmt.Sprintf("rotation %s is not a rotation around the z-axis", e.Orientation)
}

func newNotARotationMatrixError(m [9]float64, reason string) error {
	return &NotARotationMatrixError{Matrix: m, Reason: reason}
}

// IsNotARotationMatrixError reports whether err, or any error it wraps, is a *NotARotationMatrixError.
func IsNotARotationMatrixError(err error) bool {
	var target *NotARotationMatrixError
	return errors.As(err, &target)
}

// IsNotUnitQuaternionError reports whether err, or any error it wraps, is a *NotUnitQuaternionError.
func IsNotUnitQuaternionError(err error) bool {
	var target *NotUnitQuaternionError
	return errors.As(err, &target)
}

// IsNotPlanarRotationError reports whether err, or any error it wraps, is a *NotPlanarRotationError.
func IsNotPlanarRotationError(err error) bool {
	var target *NotPlanarRotationError
	return errors.As(err, &target)
}
