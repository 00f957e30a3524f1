package format

import (
	"bytes"
	"text/template"
)

// Tprintf renders a format string with named template fields.
func Tprintf(tmpl string, data map[string]interface{}) string {
	t := template.Must(template.New("").Parse(tmpl))
	buf := &bytes.Buffer{}
	if err := t.Execute(buf, data); err != nil {
		return tmpl
	}
	return buf.String()
}
