package spatialmath

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// OrientationType defines what orientation representations are known.
type OrientationType string

// The set of allowed representations for orientation.
const (
	NoOrientationType      = OrientationType("")
	QuaternionType         = OrientationType("quaternion")
	RotationMatrixType     = OrientationType("rotation_matrix")
	AxisAnglesType         = OrientationType("axis_angles")
	RotationVectorType     = OrientationType("rotation_vector")
	EulerAnglesType        = OrientationType("euler_angles")
	EulerAnglesDegreesType = OrientationType("euler_angles_degrees")
)

// RawOrientation holds the underlying type of orientation, and the value.
type RawOrientation struct {
	Type  OrientationType `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

type quaternionJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	S float64 `json:"s"`
}

type rotationVectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// MarshalJSON encodes the quaternion as {"x", "y", "z", "s"}.
func (q *Quaternion) MarshalJSON() ([]byte, error) {
	return json.Marshal(quaternionJSON{X: q.Imag, Y: q.Jmag, Z: q.Kmag, S: q.Real})
}

// UnmarshalJSON decodes a quaternion written as {"x", "y", "z", "s"}.
func (q *Quaternion) UnmarshalJSON(data []byte) error {
	var v quaternionJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	q.Set(v.X, v.Y, v.Z, v.S)
	return nil
}

// MarshalJSON encodes the matrix as its nine coefficients in row-major order.
func (rm *RotationMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(rm.mat[:])
}

// UnmarshalJSON decodes nine coefficients in row-major order. The result is not orthonormalized.
func (rm *RotationMatrix) UnmarshalJSON(data []byte) error {
	var coefficients []float64
	if err := json.Unmarshal(data, &coefficients); err != nil {
		return err
	}
	if len(coefficients) != len(rm.mat) {
		return errors.Errorf("rotation matrix needs %d coefficients, got %d", len(rm.mat), len(coefficients))
	}
	copy(rm.mat[:], coefficients)
	return nil
}

// MarshalJSON encodes the rotation vector as {"x", "y", "z"}.
func (rv *RotationVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(rotationVectorJSON(*rv))
}

// UnmarshalJSON decodes a rotation vector written as {"x", "y", "z"}.
func (rv *RotationVector) UnmarshalJSON(data []byte) error {
	var v rotationVectorJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*rv = RotationVector(v)
	return nil
}

// ParseOrientation will use the Type in RawOrientation to unmarshal the Value into the correct struct that implements
// Orientation. Quaternions are normalized and rotation matrices orthonormalized; a zero quaternion or a degenerate
// matrix is an error.
func ParseOrientation(ro RawOrientation) (Orientation, error) {
	switch ro.Type {
	case NoOrientationType:
		return NewZeroOrientation(), nil
	case QuaternionType:
		var q Quaternion
		if err := json.Unmarshal(ro.Value, &q); err != nil {
			return nil, err
		}
		if q.NormSquared() == 0 {
			return nil, errors.New("quaternion has zero norm")
		}
		q.Normalize()
		return &q, nil
	case RotationMatrixType:
		var rm RotationMatrix
		if err := json.Unmarshal(ro.Value, &rm); err != nil {
			return nil, err
		}
		if err := rm.Normalize(); err != nil {
			return nil, err
		}
		return &rm, nil
	case AxisAnglesType:
		var aa R4AA
		if err := json.Unmarshal(ro.Value, &aa); err != nil {
			return nil, err
		}
		if aa.axisNorm() == 0 {
			return nil, errors.New("axis angle has a zero axis")
		}
		aa.Normalize()
		return &aa, nil
	case RotationVectorType:
		var rv RotationVector
		if err := json.Unmarshal(ro.Value, &rv); err != nil {
			return nil, err
		}
		return &rv, nil
	case EulerAnglesType:
		var ea EulerAngles
		if err := json.Unmarshal(ro.Value, &ea); err != nil {
			return nil, err
		}
		return &ea, nil
	case EulerAnglesDegreesType:
		var ea EulerAngles
		if err := json.Unmarshal(ro.Value, &ea); err != nil {
			return nil, err
		}
		return NewEulerAnglesFromYawPitchRoll(DegToRad(ea.Yaw), DegToRad(ea.Pitch), DegToRad(ea.Roll)), nil
	default:
		return nil, errors.Errorf("orientation type %s not recognized", ro.Type)
	}
}

// OrientationMap encodes the orientation interface to something serializable and human readable.
func OrientationMap(o Orientation) (map[string]interface{}, error) {
	switch v := o.(type) {
	case *Quaternion:
		return map[string]interface{}{"type": string(QuaternionType), "value": v}, nil
	case *RotationMatrix:
		return map[string]interface{}{"type": string(RotationMatrixType), "value": v}, nil
	case *R4AA:
		return map[string]interface{}{"type": string(AxisAnglesType), "value": v}, nil
	case *RotationVector:
		return map[string]interface{}{"type": string(RotationVectorType), "value": v}, nil
	case *EulerAngles:
		return map[string]interface{}{"type": string(EulerAnglesType), "value": v}, nil
	default:
		return nil, errors.Errorf("do not know how to map Orientation type %T to json fields", o)
	}
}

// OrientationConfig is a set of named orientations, as read from a JSON file.
type OrientationConfig struct {
	Orientations map[string]RawOrientation `json:"orientations"`
}

// NewOrientationConfigFromFile reads an OrientationConfig from the JSON file at path.
func NewOrientationConfigFromFile(path string) (*OrientationConfig, error) {
	//nolint:gosec
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open orientation config")
	}
	defer utils.UncheckedErrorFunc(file.Close)

	var cfg OrientationConfig
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse orientation config %s", path)
	}
	return &cfg, nil
}

// Names returns the names of the configured orientations, sorted.
func (cfg *OrientationConfig) Names() []string {
	names := make([]string, 0, len(cfg.Orientations))
	for name := range cfg.Orientations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate ensures all parts of the config are valid. Every invalid orientation is reported.
func (cfg *OrientationConfig) Validate() error {
	_, err := cfg.Parse()
	return err
}

// Parse parses every configured orientation. The errors of all the invalid ones are combined.
func (cfg *OrientationConfig) Parse() (map[string]Orientation, error) {
	if len(cfg.Orientations) == 0 {
		return nil, errors.New("no orientations configured")
	}
	var errs error
	parsed := make(map[string]Orientation, len(cfg.Orientations))
	for _, name := range cfg.Names() {
		o, err := ParseOrientation(cfg.Orientations[name])
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "orientation %q", name))
			continue
		}
		parsed[name] = o
	}
	if errs != nil {
		return nil, errs
	}
	return parsed, nil
}

// String prints out a table of each configured orientation, with columns of name, type, euler angles in degrees
// and rotation angle. Invalid orientations show their error instead.
func (cfg *OrientationConfig) String() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Name", "Type", "Orientation", "Angle"})
	for i, name := range cfg.Names() {
		ro := cfg.Orientations[name]
		o, err := ParseOrientation(ro)
		if err != nil {
			t.AppendRow([]interface{}{fmt.Sprintf("%d", i+1), name, string(ro.Type), err.Error(), ""})
			continue
		}
		ea := o.EulerAngles()
		q := Quaternion(o.Quaternion())
		t.AppendRow([]interface{}{
			fmt.Sprintf("%d", i+1),
			name,
			string(ro.Type),
			fmt.Sprintf("Roll:%.2f, Pitch:%.2f, Yaw:%.2f", RadToDeg(ea.Roll), RadToDeg(ea.Pitch), RadToDeg(ea.Yaw)),
			fmt.Sprintf("%.2f", RadToDeg(q.Angle())),
		})
	}
	return t.Render()
}
