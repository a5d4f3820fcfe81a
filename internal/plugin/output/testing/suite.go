// Package testing provides shared test utilities for output plugins.
package testing

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/colormaestro/internal/colour"
	"github.com/jmylchreest/colormaestro/internal/plugin/output"
)

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, expectedName, p.Name())
	})

	t.Run("Description", func(t *testing.T) {
		assert.NotEmpty(t, p.Description(), "Description() should not be empty")
	})

	t.Run("DefaultOutputDir", func(t *testing.T) {
		assert.NotEmpty(t, p.DefaultOutputDir(), "DefaultOutputDir() should not be empty")
	})

	t.Run("Validate", func(t *testing.T) {
		assert.NoError(t, p.Validate())
	})
}

// TestGeneration tests the Generate method with various palette sizes.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestPalette())
		require.NoError(t, err)
		require.Len(t, files, len(expectedFiles))

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if assert.True(t, ok, "Generate() did not return %s", expectedFile) {
				assert.NotEmpty(t, content)
			}
		}
	})

	t.Run("GenerateSingleColour", func(t *testing.T) {
		files, err := p.Generate(colour.NewPalette([]colour.RGB{{R: 58, G: 134, B: 255}}))
		require.NoError(t, err)
		assert.NotEmpty(t, files)
	})

	t.Run("GenerateNilPalette", func(t *testing.T) {
		_, err := p.Generate(nil)
		assert.Error(t, err, "Generate() with nil palette should return error")
	})

	t.Run("GenerateEmptyPalette", func(t *testing.T) {
		_, err := p.Generate(colour.NewPalette(nil))
		assert.Error(t, err, "Generate() with empty palette should return error")
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlags []string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{
			Use: "test",
		}

		p.RegisterFlags(cmd)

		for _, name := range expectedFlags {
			assert.NotNil(t, cmd.Flags().Lookup(name), "RegisterFlags() did not register %s flag", name)
		}
	})
}

// CreateTestPalette creates a five colour test palette.
func CreateTestPalette() *colour.Palette {
	return colour.NewPalette([]colour.RGB{
		{R: 58, G: 134, B: 255},  // Blue primary
		{R: 255, G: 190, B: 11},  // Amber secondary
		{R: 131, G: 56, B: 236},  // Purple accent
		{R: 26, G: 27, B: 38},    // Dark neutral
		{R: 192, G: 202, B: 245}, // Light neutral
	})
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName)
	TestGeneration(t, p, config.ExpectedFiles)
	TestFlags(t, p, config.ExpectedFlags)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName  string   // Plugin name
	ExpectedFiles []string // Files that Generate() should return
	ExpectedFlags []string // Flags that RegisterFlags() should register
}
