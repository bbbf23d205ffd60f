package seed

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mikey/safe-inbox/internal/core"
)

// File is the on-disk layout of a seed file
type File struct {
	Messages []core.Message `yaml:"messages"`
}

// Default returns a copy of the built-in demo inbox
func Default() []core.Message {
	out := make([]core.Message, len(preloaded))
	copy(out, preloaded)
	return out
}

// LoadFile reads messages from a YAML seed file. Messages never carry an
// analysis when loaded; the preview falls back to the start of the body.
func LoadFile(path string) ([]core.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML
func Parse(data []byte) ([]core.Message, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(f.Messages) == 0 {
		return nil, fmt.Errorf("seed file contains no messages")
	}

	for i := range f.Messages {
		m := &f.Messages[i]
		m.ID = strings.TrimSpace(m.ID)
		if m.ID == "" {
			return nil, fmt.Errorf("seed message %d has no id", i)
		}
		if !m.InitialCategory.Valid() {
			return nil, fmt.Errorf("seed message %s has invalid category %q", m.ID, m.InitialCategory)
		}
		if m.Preview == "" {
			m.Preview = preview(m.Body)
		}
		m.Analysis = nil
	}
	return f.Messages, nil
}

const previewLength = 45

func preview(body string) string {
	flat := strings.Join(strings.Fields(body), " ")
	r := []rune(flat)
	if len(r) <= previewLength {
		return flat
	}
	return strings.TrimSpace(string(r[:previewLength])) + "..."
}
