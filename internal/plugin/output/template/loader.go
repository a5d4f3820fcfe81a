// Package template provides utilities for loading plugin templates with custom override support.
package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// ErrTemplateExists is returned by DumpTemplate when a custom template is already present.
var ErrTemplateExists = errors.New("custom template already exists")

// Loader handles loading templates with support for custom overrides.
// It checks for custom templates in ~/.config/colormaestro/templates/{pluginName}/
// and falls back to embedded templates if custom ones don't exist.
type Loader struct {
	pluginName string
	embedded   fs.FS
	customBase string
	logger     hclog.Logger
}

// DefaultCustomBase returns the directory custom templates are read from.
func DefaultCustomBase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "" // Fallback to empty if home dir unavailable
	}
	return filepath.Join(home, ".config", "colormaestro", "templates")
}

// New creates a new template loader for the specified plugin.
// embedded holds the plugin's default templates.
func New(pluginName string, embedded fs.FS) *Loader {
	return &Loader{
		pluginName: pluginName,
		embedded:   embedded,
		customBase: DefaultCustomBase(),
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets a custom base directory for template storage.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	l.customBase = customBase
	return l
}

// WithLogger sets the logger used to report which template was chosen.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads a template file, checking for custom overrides first.
// Returns the template content and whether it was loaded from a custom override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	customPath := l.CustomPath(filename)

	if content, err := os.ReadFile(customPath); err == nil { // #nosec G304 -- user template directory
		l.logger.Debug("using custom template", "plugin", l.pluginName, "path", customPath)
		return content, true, nil
	}

	l.logger.Debug("using embedded template", "plugin", l.pluginName, "file", filename)
	content, err = fs.ReadFile(l.embedded, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.CustomDir(), filename)
}

// CustomDir returns the directory where custom templates for this plugin would be located.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.pluginName)
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns a list of all embedded template files.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedded, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	return templates, nil
}

// DumpTemplate writes an embedded template to the custom templates directory.
// If force is false, it will not overwrite existing custom templates.
func (l *Loader) DumpTemplate(filename string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedded, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)
	if !force && l.HasCustomTemplate(filename) {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil { // #nosec G301 -- user config directory
		return "", fmt.Errorf("failed to create directory %q: %w", filepath.Dir(outputPath), err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil { // #nosec G306 -- templates are not secret
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	return outputPath, nil
}

// DumpAllTemplates writes all embedded templates to the custom templates directory.
// Existing templates are skipped unless force is set; skipped files are
// reported through the returned error after the rest have been written.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []error
	for _, tmpl := range templates {
		path, err := l.DumpTemplate(tmpl, force)
		if errors.Is(err, ErrTemplateExists) {
			skipped = append(skipped, err)
			continue
		}
		if err != nil {
			return dumped, err
		}
		dumped = append(dumped, path)
	}

	return dumped, errors.Join(skipped...)
}
