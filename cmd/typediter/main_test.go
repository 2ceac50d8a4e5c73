package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func testdata(name string) string {
	return filepath.Join("testdata", name)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "classify", testdata("shapes.yaml"))
	require.NoError(t, err)

	var report classifyReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))

	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Constructors, 3)

	byName := map[string]constructorReport{}
	for _, c := range report.Constructors {
		byName[c.Name] = c
	}

	assert.Equal(t, "VARIABLE_LENGTH_KEYWORD_ARGUMENT", byName["Point"].Convention)
	assert.Equal(t, "(x, y)", byName["Point"].Signature)
	assert.Equal(t, "K2O_FALLBACKABLE", byName["Scaled"].Convention)
	assert.Equal(t, "VARIABLE_LENGTH_ARGUMENT", byName["Pair"].Convention)
	assert.True(t, byName["Pair"].Pinned)
	assert.Nil(t, report.Diagnostics)
}

func TestClassify_Unsupported(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "classify", "-o", "json", testdata("unsupported.yaml"))
	require.Error(t, err)

	var report classifyReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))

	require.Len(t, report.Constructors, 1)
	assert.Equal(t, "AUTO", report.Constructors[0].Convention)
	assert.Contains(t, report.Constructors[0].Error, "signature not supported")
	require.NotNil(t, report.Diagnostics)
	assert.Len(t, report.Diagnostics.Errors, 1)
}

func TestCast_Skip(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "cast", "--convention", "adaptive", testdata("shapes.yaml"), "Point", testdata("points.yaml"))
	require.NoError(t, err)

	var report castReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))

	assert.Equal(t, "ADAPTIVE", report.Convention)
	require.Len(t, report.Records, 3)
	assert.Equal(t, 12, report.Records[0]["y"])
	assert.Equal(t, -1, report.Records[1]["x"])
	assert.Equal(t, -3, report.Records[2]["x"])

	assert.Equal(t, castMetrics{Attempts: 4, Successes: 3, Failures: 1}, report.Metrics)

	require.NotNil(t, report.Diagnostics)
	require.Len(t, report.Diagnostics.Warnings, 1)
	assert.Equal(t, 2, report.Diagnostics.Warnings[0].Index)
	assert.Contains(t, stderr, "skipping element that failed to construct")
	assert.Contains(t, stderr, "run_id="+report.RunID)
}

func TestCast_Fail(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "cast", "--convention", "adaptive", "--on-error", "fail", "-o", "json",
		testdata("shapes.yaml"), "Point", testdata("points.yaml"))
	require.Error(t, err)

	var report castReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))

	assert.Len(t, report.Records, 2)
	require.Len(t, report.Diagnostics.Errors, 1)
	assert.Equal(t, "convention_mismatch", report.Diagnostics.Errors[0].Code)
	assert.Equal(t, 2, report.Diagnostics.Errors[0].Index)
}

func TestCast_Fallback(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "cast", "-o", "json", testdata("shapes.yaml"), "Scaled", testdata("points.yaml"))
	require.NoError(t, err)

	var report castReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))

	// every element falls back to the one-argument form: the declared parameters take any value
	assert.Equal(t, "K2O_FALLBACKABLE", report.Convention)
	require.Len(t, report.Records, 4)
	assert.Equal(t, []any{-1.0, 3.0}, report.Records[1]["value"])
	assert.Equal(t, 7.0, report.Records[2]["value"])
	assert.Equal(t, 1.0, report.Records[2]["factor"])
	assert.Equal(t, 4.0, report.Metrics.Fallbacks)
}

func TestCast_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "cast", testdata("shapes.yaml"), "Missing", testdata("points.yaml"))
	require.ErrorIs(t, err, errUnknownConstructor)

	_, _, err = run(t, "cast", "--convention", "sideways", testdata("shapes.yaml"), "Point", testdata("points.yaml"))
	require.Error(t, err)

	_, _, err = run(t, "cast", "--on-error", "ignore", testdata("shapes.yaml"), "Point", testdata("points.yaml"))
	require.ErrorIs(t, err, errInvalidConfig)

	_, _, err = run(t, "cast", testdata("shapes.yaml"), "Point")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "--config", testdata("config.yaml"), "cast", testdata("shapes.yaml"), "Point", testdata("points.yaml"))
	require.NoError(t, err)

	var report castReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, "ADAPTIVE", report.Convention)
	assert.Empty(t, stderr)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("TYPEDITER_OUTPUT", "json")
	t.Setenv("TYPEDITER_LOG_FORMAT", "json")

	stdout, stderr, err := run(t, "cast", "--convention", "adaptive", testdata("shapes.yaml"), "Point", testdata("points.yaml"))
	require.NoError(t, err)

	var report castReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Len(t, report.Records, 3)

	var entry map[string]any
	line, _, _ := bytes.Cut([]byte(stderr), []byte("\n"))
	require.NoError(t, json.Unmarshal(line, &entry))
	assert.Equal(t, report.RunID, entry["run_id"])
}

func TestInspect(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "inspect", "typediterable/examples/shapes")
	require.NoError(t, err)

	var report inspectReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))

	assert.Equal(t, []string{"typediterable/examples/shapes"}, report.Packages)

	byName := map[string]constructorReport{}
	for _, c := range report.Constructors {
		byName[c.Name] = c
	}

	assert.Equal(t, "VARIABLE_LENGTH_ARGUMENT", byName["shapes.NewPoint"].Convention)
	assert.Equal(t, "func", byName["shapes.NewPoint"].Kind)
	assert.Equal(t, "K2O_FALLBACKABLE", byName["shapes.Scaled"].Convention)
	assert.NotEmpty(t, byName["shapes.Record"].Error)
}

func TestInspect_Descriptor(t *testing.T) {
	t.Parallel()

	descriptor := filepath.Join(t.TempDir(), "shapes.yaml")

	_, _, err := run(t, "inspect", "--descriptor", descriptor, "typediterable/examples/shapes")
	require.NoError(t, err)

	stdout, _, err := run(t, "classify", descriptor)
	require.NoError(t, err)

	var report classifyReport
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))

	byName := map[string]constructorReport{}
	for _, c := range report.Constructors {
		byName[c.Name] = c
	}

	assert.NotContains(t, byName, "Record")
	assert.Equal(t, "(x, y, /)", byName["NewPoint"].Signature)
	assert.Equal(t, "VARIABLE_LENGTH_ARGUMENT", byName["NewPoint"].Convention)
	assert.Equal(t, "(value, factor=<nil>)", byName["Scaled"].Signature)
	assert.Equal(t, "K2O_FALLBACKABLE", byName["Scaled"].Convention)
	assert.False(t, byName["Scaled"].Pinned)
	assert.Nil(t, report.Diagnostics)
}
