package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runDiffCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDiffCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestDiffCommandFirstDifference(t *testing.T) {
	path := writeTempCSV(t, `ds,y
2024-01-01,1
2024-01-02,2
2024-01-03,3
2024-01-04,4
2024-01-05,5
2024-01-06,6
`)

	output, err := runDiffCommand(t, path, "--order", "1", "--window", "2")
	require.NoError(t, err)

	// The warmup position has no full lookback window and is written as NA.
	expected := "ds,y\n" +
		"2024-01-01,NA\n" +
		"2024-01-02,1\n" +
		"2024-01-03,1\n" +
		"2024-01-04,1\n" +
		"2024-01-05,1\n" +
		"2024-01-06,1\n"
	assert.Equal(t, expected, output)
}

func TestDiffCommandMissingInput(t *testing.T) {
	path := writeTempCSV(t, `ds,y
2024-01-01,1
2024-01-02,2
2024-01-03,NA
2024-01-04,4
2024-01-05,5
2024-01-06,6
`)

	output, err := runDiffCommand(t, path, "--order", "1", "--window", "2")
	require.NoError(t, err)

	// Windows overlapping the missing observation come out undefined.
	expected := "ds,y\n" +
		"2024-01-01,NA\n" +
		"2024-01-02,1\n" +
		"2024-01-03,NA\n" +
		"2024-01-04,NA\n" +
		"2024-01-05,1\n" +
		"2024-01-06,1\n"
	assert.Equal(t, expected, output)
}

func TestDiffCommandOutputFile(t *testing.T) {
	path := writeTempCSV(t, `ds,y
2024-01-01,1
2024-01-02,2
2024-01-03,3
`)
	outPath := filepath.Join(t.TempDir(), "diffed.csv")

	output, err := runDiffCommand(t, path, "--order", "1", "--window", "2", "--output", outPath)
	require.NoError(t, err)
	assert.Empty(t, output)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "ds,y\n2024-01-01,NA\n2024-01-02,1\n2024-01-03,1\n", string(data))
}

func TestDiffCommandColumnSelection(t *testing.T) {
	path := writeTempCSV(t, `ds,open,close
2024-01-01,100,10
2024-01-02,100,20
2024-01-03,100,30
`)

	output, err := runDiffCommand(t, path, "--column", "close", "--order", "1", "--window", "2")
	require.NoError(t, err)
	assert.Equal(t, "ds,y\n2024-01-01,NA\n2024-01-02,10\n2024-01-03,10\n", output)
}

func TestDiffCommandWithStats(t *testing.T) {
	path := writeTempCSV(t, `ds,y
2024-01-01,1
2024-01-02,2
2024-01-03,3
2024-01-04,4
2024-01-05,5
`)

	_, err := runDiffCommand(t, path, "--order", "0.5", "--window", "3", "--stats")
	require.NoError(t, err)
}

func TestDiffCommandMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")
	_, err := runDiffCommand(t, missing, "--order", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading")
}

func TestDiffCommandRequiresOrder(t *testing.T) {
	path := writeTempCSV(t, "y\n1\n2\n3\n")
	_, err := runDiffCommand(t, path)
	require.Error(t, err)
}
