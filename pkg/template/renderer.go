package template

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"text/template"

	"github.com/arthur-debert/stencil/pkg/logging"
)

// TemplateExtension is appended to a target name to find its template file
const TemplateExtension = ".tmpl"

//go:embed bundle
var bundleFS embed.FS

// funcs are available to every template
var funcs = template.FuncMap{
	"json": jsonString,
}

// jsonString quotes s as a JSON string literal
func jsonString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BundleRenderer renders templates from a file system
type BundleRenderer struct {
	fsys fs.FS
}

// NewRenderer creates a renderer over an arbitrary file system
func NewRenderer(fsys fs.FS) *BundleRenderer {
	return &BundleRenderer{fsys: fsys}
}

// NewEmbeddedRenderer creates a renderer over the templates compiled into stencil
func NewEmbeddedRenderer() *BundleRenderer {
	sub, err := fs.Sub(bundleFS, "bundle")
	if err != nil {
		// the bundle directory is embedded at build time
		panic(fmt.Sprintf("template bundle missing: %v", err))
	}
	return NewRenderer(sub)
}

// NewDirRenderer creates a renderer over templates in a directory on disk
func NewDirRenderer(dir string) *BundleRenderer {
	return NewRenderer(os.DirFS(dir))
}

// TemplatePath returns the bundle path of the template producing target
func TemplatePath(templateDir, target string) string {
	return path.Join(templateDir, target+TemplateExtension)
}

// Render executes the template for target in templateDir with vars
func (r *BundleRenderer) Render(templateDir, target string, vars map[string]string) (string, error) {
	logger := logging.GetLogger("template")
	name := TemplatePath(templateDir, target)

	content, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(target).Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	logger.Debug().
		Str("template", name).
		Int("variables", len(vars)).
		Int("bytes", buf.Len()).
		Msg("rendered template")

	return buf.String(), nil
}

// List returns the template directories available in the bundle
func (r *BundleRenderer) List() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}
