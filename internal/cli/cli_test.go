package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testData = `
settings:
  widget_title: Summary
items:
  - id: 7
    points: ["First", "  ", "Second"]
  - id: 8
    points: ["Dark one"]
    override_settings: true
    overrides:
      view: below
      mode: dark
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)

	out, err := run(t, "", "render", "--data", data, "--item", "7", "--list-type", "ordered")
	require.NoError(t, err)

	assert.Equal(t,
		`<div class="keypoints-wrap"><div class="keypoints light"><h2>Summary</h2><ol><li>First</li><li>Second</li></ol></div></div><div style="clear: both;"></div>`+"\n",
		out)
}

func TestRenderFallback(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)

	out, err := run(t, "", "render", "--data", data, "--item", "99")
	require.NoError(t, err)
	assert.Equal(t, "<p>No key points have been set for this post.</p>\n", out)
}

func TestRenderRequiresItem(t *testing.T) {
	_, err := run(t, "", "render")
	assert.Error(t, err)
}

func TestAppendFromStdin(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)

	out, err := run(t, "<p>Body</p>", "append", "--data", data, "--item", "8", "--content", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<p>Body</p><div class=\"keypoints-wrap\"><div class=\"keypoints dark\">"), out)
}

func TestAppendSkipsAdmin(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)
	content := writeFile(t, dir, "content.html", "<p>Body</p>")

	out, err := run(t, "", "append", "--data", data, "--item", "8", "--content", content, "--admin")
	require.NoError(t, err)
	assert.Equal(t, "<p>Body</p>\n", out)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)

	out, err := run(t, `Intro [keypoints mode="dark"] outro`, "expand", "--data", data, "--item", "7")
	require.NoError(t, err)
	assert.Contains(t, out, `Intro <div class="keypoints-wrap"><div class="keypoints dark">`)
	assert.Contains(t, out, " outro")
}

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)

	out, err := run(t, "", "assets", "--data", data, "--item", "7")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "", "assets", "--data", data, "--item", "99", "--singular=false")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestConfigFileSettings(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)
	cfg := writeFile(t, dir, "keypoints.toml", "view = \"popup\"\nbutton_color = \"#ff0000\"\n")

	out, err := run(t, "", "render", "--config", cfg, "--data", data, "--item", "7")
	require.NoError(t, err)
	assert.Contains(t, out, `<button class="keypoints-popup-btn light flat" style="background-color: #ff0000;">Summary</button>`)
}

func TestEnvSettings(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "items.yaml", testData)
	t.Setenv("KEYPOINTS_DATA", data)
	t.Setenv("KEYPOINTS_TITLE", "From Env")

	out, err := run(t, "", "render", "--item", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "<h2>From Env</h2>")
}

func TestNoMatchingData(t *testing.T) {
	_, err := run(t, "", "render", "--data", filepath.Join(t.TempDir(), "*.yaml"), "--item", "1")
	assert.ErrorContains(t, err, "no data files match")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "render", "--log-level", "loud", "--item", "1")
	assert.ErrorContains(t, err, "invalid log level")
}
