package projects

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Projects []Project `yaml:"projects"`
}

// YAMLSource reads the catalog from a YAML document, either a file on disk or
// an in-memory copy such as the embedded default catalog.
type YAMLSource struct {
	Path string
	Data []byte
}

func (s YAMLSource) Load(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := s.Data
	if s.Path != "" {
		raw, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
		}
		data = raw
	}
	return ParseYAML(data)
}

// ParseYAML decodes a catalog document with a top-level "projects" list.
// Unknown keys are rejected so typos surface at load time.
func ParseYAML(data []byte) ([]Project, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return doc.Projects, nil
}
