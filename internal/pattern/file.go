package pattern

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Load reads a pattern from a YAML file. Unknown fields are rejected so
// typos surface as errors instead of silently empty stencils. A missing
// name defaults to the file's base name.
func Load(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("read pattern: %w", err)
	}

	var p Pattern
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Pattern{}, fmt.Errorf("parse pattern %s: %w", path, err)
	}

	p.Name = norm.NFC.String(strings.TrimSpace(p.Name))
	p.Comment = norm.NFC.String(strings.TrimSpace(p.Comment))
	if p.Name == "" {
		base := filepath.Base(path)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := p.Validate(); err != nil {
		return Pattern{}, fmt.Errorf("invalid pattern %s: %w", path, err)
	}
	return p, nil
}

// Resolve returns a built-in pattern when the name matches one, and
// otherwise treats the argument as a file path.
func Resolve(nameOrPath string) (Pattern, error) {
	if p, ok := Builtin(nameOrPath); ok {
		return p, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return Pattern{}, fmt.Errorf("pattern %q is neither built in (%s) nor a readable file",
			nameOrPath, strings.Join(Names(), ", "))
	}
	return Load(nameOrPath)
}
