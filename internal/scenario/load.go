// Package scenario loads projection requests from files and compares
// alternatives against a baseline.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"paycheck-engine/internal/model"
)

// Load reads a projection request from path. The format follows the
// extension: .yaml/.yml, .toml, or .json. Field names are the JSON names
// in every format.
func Load(path string) (*model.ProjectionRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	req, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if req.Scenario == "" {
		req.Scenario = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return req, nil
}

// Parse decodes data in the format named by ext.
func Parse(data []byte, ext string) (*model.ProjectionRequest, error) {
	var doc any
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		var m map[string]any
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		doc = m
	case ".json":
		var req model.ProjectionRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return &req, nil
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", ext)
	}

	// Re-encode the generic document so the JSON tags drive decoding.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize scenario: %w", err)
	}
	var req model.ProjectionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	return &req, nil
}
