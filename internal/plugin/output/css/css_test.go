package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
	outputtesting "github.com/jmylchreest/colormaestro/internal/plugin/output/testing"
)

func newTestPlugin(t *testing.T) *Plugin {
	t.Helper()
	p := New()
	p.Loader().WithCustomBase(t.TempDir())
	return p
}

func TestCSSPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, newTestPlugin(t), outputtesting.TestConfig{
		ExpectedName:  "css",
		ExpectedFiles: []string{output.Stdout},
		ExpectedFlags: []string{"css.file", "css.prefix"},
	})
}

func TestCSSPlugin_GenerateExact(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{
		{R: 58, G: 134, B: 255},
		{R: 255, G: 190, B: 11},
		{R: 131, G: 56, B: 236},
	})

	files, err := newTestPlugin(t).Generate(palette)
	require.NoError(t, err)

	want := `:root {
  --color-primary: #3a86ff;
  --color-primary-rgb: 58, 134, 255;
  --color-secondary: #ffbe0b;
  --color-secondary-rgb: 255, 190, 11;
  --color-accent: #8338ec;
  --color-accent-rgb: 131, 56, 236;

  /* Semantic color mapping */
  --color-background: var(--color-primary);
  --color-text: #000000;
  --color-button: var(--color-secondary);
  --color-border: rgba(var(--color-primary-rgb), 0.2);
  --color-highlight: var(--color-accent);
}
`
	assert.Equal(t, want, string(files[output.Stdout]))
}

func TestCSSPlugin_DarkModeFromFiveColours(t *testing.T) {
	p := newTestPlugin(t)

	files, err := p.Generate(outputtesting.CreateTestPalette())
	require.NoError(t, err)
	out := string(files[output.Stdout])

	assert.Contains(t, out, "  --color-4: #1a1b26;\n  --color-4-rgb: 26, 27, 38;\n")
	assert.Contains(t, out, "@media (prefers-color-scheme: dark) {")
	assert.Contains(t, out, "    --color-background: #121212;")

	files, err = p.Generate(colour.NewPalette(outputtesting.CreateTestPalette().Colors[:4]))
	require.NoError(t, err)
	assert.NotContains(t, string(files[output.Stdout]), "@media")
}

func TestCSSPlugin_SingleColourOmitsMissingRoles(t *testing.T) {
	files, err := newTestPlugin(t).Generate(colour.NewPalette([]colour.RGB{colour.Black}))
	require.NoError(t, err)
	out := string(files[output.Stdout])

	assert.Contains(t, out, "--color-text: #ffffff;")
	assert.NotContains(t, out, "--color-button")
	assert.NotContains(t, out, "--color-highlight")
}

func TestCSSPlugin_FileAndPrefix(t *testing.T) {
	p := newTestPlugin(t)
	p.file = "styles/theme.css"
	p.prefix = "brand"

	files, err := p.Generate(outputtesting.CreateTestPalette())
	require.NoError(t, err)

	content, ok := files["theme.css"]
	require.True(t, ok)
	assert.Equal(t, "styles", p.DefaultOutputDir())
	assert.Contains(t, string(content), "--brand-primary: #3a86ff;")
	assert.Contains(t, string(content), "--brand-background: var(--brand-primary);")
}

func TestCSSPlugin_Validate(t *testing.T) {
	p := New()
	assert.NoError(t, p.Validate())

	p.prefix = "bad prefix"
	assert.Error(t, p.Validate())
}

func TestVarName(t *testing.T) {
	assert.Equal(t, "--color-primary", VarName("color", "primary"))
	assert.Equal(t, "--color-4", VarName("color", "color-4"))
	assert.Equal(t, "--brand-accent", VarName("brand", "accent"))
}
