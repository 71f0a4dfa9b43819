package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menubox/pkg/imagediff"
	"menubox/pkg/layout"
)

const buttonScene = `<menu><button id="b" x="100" y="100" width="50" height="30" padding="5" margin="10" background="red"/></menu>`

// run executes the CLI with a fresh command tree and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScene(t *testing.T, markup string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.xml")
	require.NoError(t, os.WriteFile(path, []byte(markup), 0o644))
	return path
}

func TestEval(t *testing.T) {
	out, err := run(t, "--width", "1920", "--height", "1080", "eval", "calc(0.5vw - 10px)", "2em", "1920px")
	require.NoError(t, err)
	assert.Equal(t, "calc(0.5vw - 10px) = 950\n2em = 32\n1920px = 1920\n", out)

	out, err = run(t, "eval", "--em", "24", "2em")
	require.NoError(t, err)
	assert.Equal(t, "2em = 48\n", out)
}

func TestEval_Malformed(t *testing.T) {
	_, err := run(t, "eval", "abc xyz")
	assert.Error(t, err)
}

func TestBoxes_JSON(t *testing.T) {
	out, err := run(t, "boxes", "--json", writeScene(t, buttonScene))
	require.NoError(t, err)

	var got []elementBoxes
	require.NoError(t, jsoniter.UnmarshalFromString(out, &got))
	want := []elementBoxes{{
		Path:    "/menu/button[1]",
		ID:      "b",
		Margin:  layout.Rect{Left: 60, Bottom: 70, Right: 140, Top: 130},
		Padding: layout.Rect{Left: 70, Bottom: 80, Right: 130, Top: 120},
		Content: layout.Rect{Left: 75, Bottom: 85, Right: 125, Top: 115},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxes_Table(t *testing.T) {
	out, err := run(t, "boxes", writeScene(t, buttonScene))
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "/menu/button[1]")
	assert.Contains(t, out, "(75,85)-(125,115)")
}

func TestBoxes_BuildErrorNamesElement(t *testing.T) {
	_, err := run(t, "boxes", writeScene(t, `<menu><button padding="1 2 3 4 5"/></menu>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/menu/button[1]")
}

func TestRender_WritesAndMatchesReference(t *testing.T) {
	dir := t.TempDir()
	scenePath := writeScene(t, buttonScene)
	first := filepath.Join(dir, "first.png")

	out, err := run(t, "--width", "200", "--height", "200", "render", scenePath, "-o", first)
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered")

	img, err := imagediff.LoadPNG(first)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	second := filepath.Join(dir, "second.png")
	out, err = run(t, "--width", "200", "--height", "200", "render", scenePath, "-o", second, "--expect", first)
	require.NoError(t, err)
	assert.Contains(t, out, "Matches")

	third := filepath.Join(dir, "third.png")
	_, err = run(t, "--width", "200", "--height", "200", "render", scenePath, "-o", third, "--outlines", "--expect", first)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differs")
	assert.FileExists(t, third+".diff.png")
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "menubox.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("viewport:\n  width: 400\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "eval", "1vw")
	require.NoError(t, err)
	assert.Equal(t, "1vw = 400\n", out)

	_, err = run(t, "--width", "-5", "eval", "1vw")
	assert.ErrorContains(t, err, "viewport")
}
