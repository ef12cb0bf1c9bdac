package email

import "strings"

// RenderTemplate substitutes {{key}} placeholders with their values.
// Unknown placeholders are left as-is so a typo in a stored template is
// visible in the delivered mail rather than silently dropped.
func RenderTemplate(template string, vars map[string]string) string {
	for key, value := range vars {
		template = strings.ReplaceAll(template, "{{"+key+"}}", value)
	}
	return template
}
