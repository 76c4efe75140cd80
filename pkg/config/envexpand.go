package config

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.VAR}} references in raw YAML with values
// from the process environment. Unset variables expand to the empty
// string. On template errors the original data is returned unchanged
// so a stray brace in a prompt cannot break config loading.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		slog.Warn("Config env expansion skipped: template parse failed", "error", err)
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		slog.Warn("Config env expansion skipped: template execute failed", "error", err)
		return data
	}
	return buf.Bytes()
}
