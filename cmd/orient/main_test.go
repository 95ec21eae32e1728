package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

const testConfig = `{
  "orientations": {
    "identity": {"type": "quaternion", "value": {"x": 0, "y": 0, "z": 0, "s": 1}},
    "flip": {"type": "quaternion", "value": {"x": 0, "y": 0, "z": 1, "s": 0}},
    "left": {"type": "euler_angles_degrees", "value": {"roll": 0, "pitch": 0, "yaw": 90}},
    "leftvec": {"type": "rotation_vector", "value": {"x": 0, "y": 0, "z": 1.5707963267948966}}
  }
}`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orientations.json")
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)
	return path
}

func runApp(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	err := newApp(&out, &errOut).Run(append([]string{"orient"}, args...))
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, errOut, err := runApp("--config", writeConfig(t, testConfig), "list")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldBeEmpty)
	for _, name := range []string{"identity", "flip", "left", "leftvec", "euler_angles_degrees", "180.00"} {
		test.That(t, out, test.ShouldContainSubstring, name)
	}

	path := writeConfig(t, `{"orientations": {"bad": {"type": "oiler_angles"}}}`)
	out, errOut, err = runApp("--config", path, "list")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "orientation type oiler_angles not recognized")
	test.That(t, errOut, test.ShouldContainSubstring, "WARN\torient")
}

func TestShow(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, errOut, err := runApp("--config", path, "show", "left")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldBeEmpty)
	test.That(t, out, test.ShouldStartWith, "left:\n")
	for _, label := range []string{"quaternion:", "rotation matrix:", "axis angles:", "rotation vector:", "euler angles:"} {
		test.That(t, out, test.ShouldContainSubstring, label)
	}
	test.That(t, out, test.ShouldNotContainSubstring, "point:")

	t.Run("all", func(t *testing.T) {
		out, _, err := runApp("-c", path, "show")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldStartWith, "flip:\n")
		for _, name := range []string{"identity:", "left:", "leftvec:"} {
			test.That(t, out, test.ShouldContainSubstring, name)
		}
	})

	t.Run("point", func(t *testing.T) {
		out, _, err := runApp("--config", path, "show", "--point=1,2,3", "identity")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "point:")
		test.That(t, out, test.ShouldContainSubstring, "(1, 2, 3) -> (1, 2, 3)")

		out, _, err = runApp("--config", path, "show", "--point=1,0,0", "--inverse", "identity")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "(1, 0, 0) -> (1, 0, 0)")
	})

	t.Run("bad point", func(t *testing.T) {
		_, _, err := runApp("--config", path, "show", "--point=1,2", "left")
		test.That(t, err, test.ShouldBeError, "point needs 3 coordinates, got 2")
	})

	t.Run("unknown name", func(t *testing.T) {
		_, _, err := runApp("--config", path, "show", "right")
		test.That(t, err, test.ShouldBeError, `no orientation named "right"`)
	})
}

func TestCompare(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, _, err := runApp("--config", path, "compare", "left", "leftvec")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldStartWith, "angle between left and leftvec: ")
	test.That(t, out, test.ShouldContainSubstring, "equal within 1e-06: true")

	out, _, err = runApp("--config", path, "compare", "--epsilon=0.1", "identity", "left")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "rad (90")
	test.That(t, out, test.ShouldContainSubstring, "equal within 0.1: false")

	_, _, err = runApp("--config", path, "compare", "left")
	test.That(t, err, test.ShouldBeError, "compare needs exactly two orientation names, got 1")
}

func TestBetween(t *testing.T) {
	path := writeConfig(t, testConfig)

	out, _, err := runApp("--config", path, "between", "identity", "flip")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldStartWith, "identity -> flip:\n")
	test.That(t, out, test.ShouldContainSubstring, "euler angles:")

	_, _, err = runApp("--config", path, "between", "identity", "nowhere")
	test.That(t, err, test.ShouldBeError, `no orientation named "nowhere"`)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := runApp("show")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "config")

	_, _, err = runApp("--config", filepath.Join(t.TempDir(), "missing.json"), "show")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldStartWith, "cannot open orientation config")

	path := writeConfig(t, `{"orientations": {
		"good": {"type": "quaternion", "value": {"x": 0, "y": 0, "z": 0, "s": 1}},
		"bad": {"type": "oiler_angles", "value": {}},
		"worse": {"type": "rotation_matrix", "value": [1, 0, 0]}
	}}`)
	_, errOut, err := runApp("--config", path, "show", "good")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldStartWith, "cannot parse "+path)
	test.That(t, err.Error(), test.ShouldContainSubstring, `orientation "bad"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `orientation "worse"`)
	test.That(t, errOut, test.ShouldContainSubstring, "ERROR\torient")
	test.That(t, errOut, test.ShouldContainSubstring, "invalid config")
}

func TestDebugLogging(t *testing.T) {
	path := writeConfig(t, testConfig)

	_, errOut, err := runApp("--config", path, "show", "--point=0,0,1", "flip")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldBeEmpty)

	_, errOut, err = runApp("--config", path, "--debug", "show", "--point=0,0,1", "flip")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "DEBUG\torient")
	test.That(t, errOut, test.ShouldContainSubstring, "loaded config")
	test.That(t, errOut, test.ShouldContainSubstring, `"orientations":["flip","identity","left","leftvec"]`)
	test.That(t, errOut, test.ShouldContainSubstring, "rotated point")

	_, errOut, err = runApp("--config", path, "--log-level", "DEBUG", "show", "flip")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "loaded config")
	test.That(t, errOut, test.ShouldNotContainSubstring, "rotated point")

	_, _, err = runApp("--config", path, "--log-level", "loud", "show")
	test.That(t, err, test.ShouldBeError, `unknown log level: "loud"`)
}

func TestErrorsLoggedAtEveryLevel(t *testing.T) {
	path := writeConfig(t, `{"orientations": {"bad": {"type": "oiler_angles"}}}`)
	_, errOut, err := runApp("--config", path, "--log-level=warn", "show")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "invalid config")

	_, errOut, err = runApp("--config", path, "--log-level=error", "show")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "invalid config")
}
