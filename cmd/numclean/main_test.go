package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messyCSV = "Temperature,Distance,Station\n23.5 °C,1200M,ALFA\n--,-42.7,BRAVO\n"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NUMCLEAN_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-quiet"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_WritesCleanedFile(t *testing.T) {
	input := writeInput(t, messyCSV)
	output := filepath.Join(t.TempDir(), "cleaned.csv")

	code, _, stderr := runCLI(t, "-columns", "Temperature,1", "-o", output, input)
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Temperature,Distance,Station\n23.5,1200,ALFA\n,-42.7,BRAVO\n", string(data))
}

func TestRun_StdoutWhenNoOutput(t *testing.T) {
	input := writeInput(t, messyCSV)

	code, stdout, stderr := runCLI(t, "-columns", "Temperature", input)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Temperature,Distance,Station")
	assert.Contains(t, stdout, "23.5,1200M,ALFA")
}

func TestRun_InPlaceMatchesCopy(t *testing.T) {
	input := writeInput(t, messyCSV)
	copyOut := filepath.Join(t.TempDir(), "copy.csv")
	inPlaceOut := filepath.Join(t.TempDir(), "inplace.csv")

	code, _, _ := runCLI(t, "-columns", "Temperature", "-o", copyOut, input)
	require.Equal(t, exitOK, code)
	code, _, _ = runCLI(t, "-columns", "Temperature", "-in-place", "-o", inPlaceOut, input)
	require.Equal(t, exitOK, code)

	a, err := os.ReadFile(copyOut)
	require.NoError(t, err)
	b, err := os.ReadFile(inPlaceOut)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRun_CustomSeparator(t *testing.T) {
	input := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(input, []byte("A;B\n1,5 kg;x\n"), 0644))
	output := filepath.Join(t.TempDir(), "out.csv")

	code, _, stderr := runCLI(t, "-columns", "A", "-sep", ";", "-o", output, input)
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	// "1,5 kg" keeps digits and drops the comma and unit.
	assert.Equal(t, "A;B\n15;x\n", string(data))
}

func TestRun_FailureClasses(t *testing.T) {
	input := writeInput(t, messyCSV)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "missing input file", args: []string{"-columns", "A", filepath.Join(t.TempDir(), "absent.csv")}, want: exitSourceFailed},
		{name: "no columns flag", args: []string{input}, want: exitSourceFailed},
		{name: "no input argument", args: []string{"-columns", "A"}, want: exitSourceFailed},
		{name: "unknown column", args: []string{"-columns", "Humidity", input}, want: exitRefsFailed},
		{name: "index out of range", args: []string{"-columns", "9", input}, want: exitRefsFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestRun_SinkFailure(t *testing.T) {
	input := writeInput(t, messyCSV)

	// Parent of the output path is a file, so the sink cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	output := filepath.Join(blocker, "out.csv")

	code, _, stderr := runCLI(t, "-columns", "Temperature", "-o", output, input)
	assert.Equal(t, exitSinkFailed, code)
	assert.Contains(t, stderr, "error writing")
}

func TestRun_ErrorNamesOffendingReference(t *testing.T) {
	input := writeInput(t, messyCSV)

	_, _, stderr := runCLI(t, "-columns", "Humidity", input)
	assert.Contains(t, stderr, "Humidity")
	assert.Contains(t, stderr, "Temperature")

	_, _, stderr = runCLI(t, "-columns", "9", input)
	assert.Contains(t, stderr, "9")
	assert.Contains(t, stderr, "0-2")
}

func TestSplitColumns(t *testing.T) {
	assert.Equal(t, []string{"Temperature", "2", "Distance"}, splitColumns("Temperature, 2 ,Distance"))
	assert.Equal(t, []string{"A"}, splitColumns("A,"))
	assert.Nil(t, splitColumns(""))
}
