package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormaestro/internal/cli"
	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/generator"
	"github.com/jmylchreest/colormaestro/internal/mood"
)

// run executes a fresh root command and returns its stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// isolate points config and template lookups at a temporary home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"COLORMAESTRO_COLORS", "COLORMAESTRO_TYPE", "COLORMAESTRO_OUTPUTS",
		"COLORMAESTRO_DISABLED_PLUGINS", "COLORMAESTRO_ENABLED_PLUGINS", "COLORMAESTRO_MOODS_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func decodePalette(t *testing.T, out string) colour.PaletteJSON {
	t.Helper()
	var p colour.PaletteJSON
	require.NoError(t, json.Unmarshal([]byte(out), &p), out)
	return p
}

func TestGenerateHarmonyJSON(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "generate", "#3A86FF", "-t", "harmony", "--harmony", "triadic", "-n", "6", "-o", "json", "-q")
	require.NoError(t, err)

	p := decodePalette(t, out)
	assert.Equal(t, 6, p.Count)
	require.Len(t, p.Palette, 6)
	assert.Equal(t, "#3a86ff", p.Palette[0].Hex)
	assert.Equal(t, "primary", p.Palette[0].Name)
}

func TestGenerateWritesFiles(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cssPath := filepath.Join(dir, "styles", "theme.css")

	_, stderr, err := run(t, "generate", "#3a86ff", "-o", "css", "--css.file", cssPath)
	require.NoError(t, err)

	content, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "--color-primary: #3a86ff;")
	assert.Contains(t, stderr, "✓ Base colour: #3a86ff (input: hex)")
	assert.Contains(t, stderr, cssPath)
	assert.Contains(t, stderr, "✓ Done! Generated 1 output plugin(s)")
}

func TestGenerateImageAndPreviewFiles(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "palette.svg")
	htmlPath := filepath.Join(dir, "site", "index.html")

	_, stderr, err := run(t, "generate", "#3a86ff", "-t", "harmony", "-n", "4",
		"-o", "svg,html", "--svg.file", svgPath, "--html.file", htmlPath, "--html.demo")
	require.NoError(t, err)
	assert.Contains(t, stderr, "✓ Done! Generated 2 output plugin(s)")

	svgContent, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svgContent), `fill="#3a86ff"`)
	assert.Contains(t, string(svgContent), ">color-4</text>")

	htmlContent, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(htmlContent), "<code>#3a86ff</code>")
	assert.Contains(t, string(htmlContent), "UI Components")
}

func TestGenerateDryRun(t *testing.T) {
	isolate(t)
	pngPath := filepath.Join(t.TempDir(), "palette.png")

	_, stderr, err := run(t, "generate", "#ff006e", "-t", "mono", "-o", "png", "--png.file", pngPath, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, stderr, "Would write: "+pngPath)
	assert.NoFileExists(t, pngPath)
}

func TestGenerateMoodSeedIsReproducible(t *testing.T) {
	isolate(t)
	args := []string{"generate", "--mood.name", "calm", "--seed", "42", "-o", "json", "-q"}

	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	table := mood.DefaultTable()
	profile, err := table.Lookup(mood.Calm)
	require.NoError(t, err)
	base, err := colour.ParseHex(decodePalette(t, first).Palette[0].Hex)
	require.NoError(t, err)
	hsv := colour.RGBToHSV(base)
	assert.InDelta(t, (profile.Value.Min+profile.Value.Max)/2, hsv.V, (profile.Value.Max-profile.Value.Min)/2+0.02)
}

func TestGenerateInputSeedMode(t *testing.T) {
	isolate(t)
	args := []string{"generate", "--mood.name", "playful", "--seed-mode", "input", "-o", "json", "-q"}

	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateAccessibilityReport(t *testing.T) {
	isolate(t)

	out, stderr, err := run(t, "generate", "#3a86ff", "-t", "accessible", "-n", "3", "-o", "json", "--accessibility")
	require.NoError(t, err)

	assert.Contains(t, out, "Accessibility Check Results:")
	assert.Contains(t, out, "On White")
	assert.Contains(t, out, "primary / secondary")
	assert.Contains(t, out, "primary / accent")
	assert.Contains(t, stderr, "✓ Generated accessible palette (3 colours)")
}

func TestGenerateErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "invalid hex", args: []string{"#12345"}, wantErr: colour.ErrInvalidFormat},
		{name: "invalid type", args: []string{"#123456", "-t", "rainbow"}, wantErr: generator.ErrUnsupportedType},
		{name: "invalid harmony", args: []string{"#123456", "--harmony", "pentadic"}, wantErr: generator.ErrUnsupportedHarmony},
		{name: "invalid count", args: []string{"#123456", "-n", "0"}, wantErr: generator.ErrInvalidCount},
		{name: "unknown mood", args: []string{"--mood.name", "grumpy"}, wantErr: mood.ErrUnknownMood},
		{name: "unknown output", args: []string{"#123456", "-o", "scss"}, wantMsg: "unknown output plugin: scss"},
		{name: "unknown input", args: []string{"-i", "image"}, wantMsg: "unknown input plugin: image"},
		{name: "manual seed without value", args: []string{"--seed-mode", "manual"}, wantMsg: "--seed is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"generate", "-o", "json", "-q"}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestGenerateRespectsDisabledPlugins(t *testing.T) {
	isolate(t)
	t.Setenv("COLORMAESTRO_DISABLED_PLUGINS", "output:json")

	_, _, err := run(t, "generate", "#3a86ff", "-o", "json")
	assert.ErrorContains(t, err, "output plugin json is disabled")
}

func TestGenerateDefaultsFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("COLORMAESTRO_COLORS", "7")
	t.Setenv("COLORMAESTRO_TYPE", "mono")
	t.Setenv("COLORMAESTRO_OUTPUTS", "json")

	out, _, err := run(t, "generate", "#3a86ff", "-q")
	require.NoError(t, err)
	assert.Equal(t, 7, decodePalette(t, out).Count)
}

func TestContrastCommand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "contrast", "#ffffff", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "#ffffff  #000000  21.00:1  PASS  PASS")

	out, _, err = run(t, "contrast", "#3a86ff")
	require.NoError(t, err)
	assert.Contains(t, out, "On Black")
	assert.Contains(t, out, "black")

	_, _, err = run(t, "contrast", "blue")
	assert.ErrorIs(t, err, colour.ErrInvalidFormat)
}

func TestMoodsCommand(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "moods")
	require.NoError(t, err)
	for _, name := range mood.DefaultTable().Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "0.20-0.50")

	dump, _, err := run(t, "moods", "--dump")
	require.NoError(t, err)
	table, err := mood.ParseTable([]byte(dump))
	require.NoError(t, err)
	assert.Equal(t, mood.DefaultTable().Names(), table.Names())
}

func TestMoodsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "moods.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`moods:
  sunset:
    hues: [[0.02, 0.08]]
    saturation: [0.7, 0.9]
    value: [0.8, 1.0]
`), 0o600))

	out, _, err := run(t, "moods", "--moods-file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "sunset")
	assert.NotContains(t, out, "calm")

	out, _, err = run(t, "generate", "--mood.name", "sunset", "--moods-file", path, "--seed", "7", "-o", "json", "-q")
	require.NoError(t, err)
	assert.Len(t, decodePalette(t, out).Palette, 5)
}

func TestPluginsList(t *testing.T) {
	isolate(t)
	t.Setenv("COLORMAESTRO_DISABLED_PLUGINS", "png")

	out, _, err := run(t, "plugins", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "E  input   hex")
	assert.Contains(t, out, "D  output  png")
	assert.Contains(t, out, "E  output  terminal")
}

func TestTemplatesCommands(t *testing.T) {
	home := isolate(t)

	out, _, err := run(t, "templates", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Plugin: css")
	assert.Contains(t, out, "variables.css.tmpl")
	assert.Contains(t, out, "Plugin: tailwind")
	assert.Contains(t, out, "preview.html.tmpl")
	assert.Contains(t, out, "palette.svg.tmpl")
	assert.NotContains(t, out, "Plugin: json")

	location := filepath.Join(home, "custom")
	out, _, err = run(t, "templates", "dump", "-o", "css", "-l", location)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Dumped 1 template(s)")
	assert.FileExists(t, filepath.Join(location, "css", "variables.css.tmpl"))

	out, _, err = run(t, "templates", "dump", "-o", "css", "-l", location)
	require.NoError(t, err)
	assert.Contains(t, out, "No templates were dumped")

	_, _, err = run(t, "templates", "dump", "-o", "nope")
	assert.ErrorContains(t, err, `plugin "nope" not found`)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "colormaestro version")

	out, _, err = run(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")
}
