// Package contract fills rent agreement templates.
package contract

import (
	"html"
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// Render replaces {{name}} placeholders with vars[name]. Placeholders with
// no matching variable are left as written.
func Render(template string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// RenderHTML renders template as an HTML fragment. The template text and
// every variable are escaped, and newlines become <br>.
func RenderHTML(template string, vars map[string]string) string {
	escaped := make(map[string]string, len(vars))
	for k, v := range vars {
		escaped[k] = html.EscapeString(v)
	}
	// Placeholder syntax contains no characters that EscapeString rewrites.
	out := Render(html.EscapeString(template), escaped)
	return strings.ReplaceAll(out, "\n", "<br>\n")
}

// Placeholders lists distinct placeholder names in order of first use.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Missing lists placeholders in template that vars does not define.
func Missing(template string, vars map[string]string) []string {
	var missing []string
	for _, name := range Placeholders(template) {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
