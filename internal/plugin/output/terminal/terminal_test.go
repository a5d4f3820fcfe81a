package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
	outputtesting "github.com/jmylchreest/colormaestro/internal/plugin/output/testing"
)

func TestTerminalPlugin(t *testing.T) {
	outputtesting.RunAllTests(t, New(), outputtesting.TestConfig{
		ExpectedName:  "terminal",
		ExpectedFiles: []string{output.Stdout},
		ExpectedFlags: []string{"terminal.color", "terminal.demo"},
	})
}

func TestTerminalPlugin_NeverColour(t *testing.T) {
	p := New()
	p.SetColorMode(ColorNever)

	files, err := p.Generate(outputtesting.CreateTestPalette())
	require.NoError(t, err)
	out := string(files[output.Stdout])

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Color Palette:")
	assert.Contains(t, out, "#3a86ff  RGB: 58, 134, 255  primary\n")
	assert.Contains(t, out, "#c0caf5  RGB: 192, 202, 245  color-5\n")
	assert.Equal(t, 5, strings.Count(out, "RGB: "))
}

func TestTerminalPlugin_AlwaysColour(t *testing.T) {
	p := New()
	p.SetColorMode(ColorAlways)

	files, err := p.Generate(outputtesting.CreateTestPalette())
	require.NoError(t, err)
	out := string(files[output.Stdout])

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "38;2;58;134;255")
}

func TestTerminalPlugin_Demo(t *testing.T) {
	tests := []struct {
		name       string
		palette    *colour.Palette
		wantBlocks bool
	}{
		{name: "five colours", palette: outputtesting.CreateTestPalette(), wantBlocks: true},
		{name: "two colours", palette: colour.NewPalette([]colour.RGB{colour.Black, colour.White})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			p.SetColorMode(ColorNever)
			p.SetDemo(true)

			files, err := p.Generate(tt.palette)
			require.NoError(t, err)
			out := string(files[output.Stdout])

			assert.Contains(t, out, "UI Component Samples:")
			assert.Contains(t, out, "BUTTON")
			assert.Equal(t, tt.wantBlocks, strings.Contains(out, "Color blocks:"))
		})
	}
}

func TestTerminalPlugin_Validate(t *testing.T) {
	p := New()
	for _, mode := range []string{ColorAuto, ColorAlways, ColorNever} {
		p.SetColorMode(mode)
		assert.NoError(t, p.Validate(), mode)
	}

	p.SetColorMode("sometimes")
	assert.Error(t, p.Validate())
}
