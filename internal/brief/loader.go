package brief

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"creativegen/internal/domain"
)

// Load reads a campaign brief from a .json, .yaml or .yml file. The path is
// checked for existence before the extension is considered.
func Load(path string) (domain.Brief, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Brief{}, fmt.Errorf("%w: %s", domain.ErrBriefNotFound, path)
		}
		return domain.Brief{}, fmt.Errorf("brief: stat %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return domain.Brief{}, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Brief{}, fmt.Errorf("brief: read %s: %w", path, err)
	}
	if ext == ".json" {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// ParseJSON decodes a JSON object into a brief.
func ParseJSON(data []byte) (domain.Brief, error) {
	var b domain.Brief
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&b); err != nil {
		return domain.Brief{}, fmt.Errorf("brief: decode json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.Brief{}, errors.New("brief: decode json: trailing data after object")
	}
	return b, nil
}

// ParseYAML decodes a YAML mapping into a brief. An empty document yields an
// empty brief.
func ParseYAML(data []byte) (domain.Brief, error) {
	var b domain.Brief
	if err := yaml.Unmarshal(data, &b); err != nil {
		return domain.Brief{}, fmt.Errorf("brief: decode yaml: %w", err)
	}
	return b, nil
}
