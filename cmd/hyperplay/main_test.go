package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hyperarray/hyper"
	"github.com/magiconair/properties/assert"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	homedir.DisableCache = true
	os.Exit(m.Run())
}

// run executes hyperplay with args in a clean home directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "-l", "2,3")
	require.NoError(t, err)
	require.Contains(t, out,
		"[dimensions: 2 ][order: ROW_MAJOR ][lengths: 2 3 ][coeffs: 3 1 ][size: 6 ][data: 1 2 3 4 5 6 ]")

	out, err = run(t, "show", "-l", "2,2", "-o", "column-major", "-V", "7,8", "--fill=-1")
	require.NoError(t, err)
	require.Contains(t, out, "[order: COLUMN_MAJOR ][lengths: 2 2 ][coeffs: 1 2 ][size: 4 ][data: 7 8 -1 -1 ]")
}

func TestShowErrors(t *testing.T) {
	_, err := run(t, "show", "-l", "2,2", "-V", "1,2,3,4,5")
	require.ErrorIs(t, err, hyper.ErrTooManyValues)

	_, err = run(t, "show", "-V", "x")
	require.Error(t, err)

	_, err = run(t, "show", "-o", "diagonal")
	require.Error(t, err)
}

func TestWalk(t *testing.T) {
	out, err := run(t, "walk", "-l", "3,4", "-b", "1,1", "-e", "3,3")
	require.NoError(t, err)

	want := strings.Join([]string{
		"view: [origin: ( 1 1 ) ][lengths: 2 2 ][size: 4 ][data: 6 7 10 11 ]",
		"forward:",
		"[ [0:1] [0:1] ] 6",
		"[ [0:1] [1:1] ] 7",
		"[ [1:1] [0:1] ] 10",
		"[ [1:1] [1:1] ] 11",
		"backward:",
		"[ [1:1] [1:1] ] 11",
		"[ [1:1] [0:1] ] 10",
		"[ [0:1] [1:1] ] 7",
		"[ [0:1] [0:1] ] 6",
		"",
	}, "\n")
	require.Equal(t, want, out)

	_, err = run(t, "walk", "-l", "3,4", "-b", "2,2", "-e", "1,4")
	require.ErrorIs(t, err, hyper.ErrBadBounds)
}

func TestReshape(t *testing.T) {
	out, err := run(t, "reshape", "-l", "2,3", "--to", "3,2", "--to-order", "column-major")
	require.NoError(t, err)
	require.Contains(t, out, "from: [dimensions: 2 ][order: ROW_MAJOR ][lengths: 2 3 ]")
	require.Contains(t, out, "[order: COLUMN_MAJOR ][lengths: 3 2 ][coeffs: 1 3 ][size: 6 ][data: 1 2 3 4 5 6 ]")

	_, err = run(t, "reshape", "-l", "2,3", "--to", "4,2")
	require.ErrorIs(t, err, hyper.ErrSizeMismatch)

	_, err = run(t, "reshape", "-l", "2,3")
	require.Error(t, err) // --to is required
}

func TestConfigAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "hp.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("order: column-major\n"), 0o600))

	out, err := run(t, "--config", cfg, "show", "-l", "2,2")
	require.NoError(t, err)
	require.Contains(t, out, "COLUMN_MAJOR")

	out, err = run(t, "--config", cfg, "-o", "row-major", "show", "-l", "2,2")
	require.NoError(t, err)
	require.Contains(t, out, "ROW_MAJOR") // flag beats config

	t.Setenv("HYPERPLAY_ORDER", "fortran")
	out, err = run(t, "show", "-l", "2,2")
	require.NoError(t, err)
	require.Contains(t, out, "COLUMN_MAJOR")

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "show")
	require.Error(t, err)
}

func TestScenarioFile(t *testing.T) {
	doc := []byte(`
lengths: [3, 4]
order: column-major
values: [1, 2, 3]
fill: 9
begin: [1, 2]
`)
	var s Scenario
	if err := s.Parse(doc); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, s.Lengths, []int{3, 4})
	assert.Equal(t, s.Order, "column-major")
	assert.Equal(t, s.Fill, 9.)
	assert.Equal(t, len(s.End), 0)

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, doc, 0o600))
	out, err := run(t, "walk", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "view: [origin: ( 1 2 ) ][lengths: 2 2 ][size: 4 ][data: 9 9 9 9 ]")

	_, err = run(t, "show", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLabel(t *testing.T) {
	out, err := run(t, "label", "-l", "3,4", "-V", "0,1,1,0,1,1,0,0,0,0,1,1")
	require.NoError(t, err)
	require.Contains(t, out, "regions: 2")
	require.Contains(t, out, "[data: 0 1 1 0 1 1 0 0 0 0 2 2 ]")

	out, err = run(t, "label", "-l", "2,2", "-V", "1,0,0,1", "--full")
	require.NoError(t, err)
	require.Contains(t, out, "regions: 1")
}
