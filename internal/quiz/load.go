package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDraft reads, parses, and checks a question draft file.
func LoadDraft(path string) (Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, fmt.Errorf("read question draft: %w", err)
	}
	var draft Draft
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		draft, err = ParseDraftJSON(data)
	} else {
		draft, err = ParseDraftYAML(data)
	}
	if err != nil {
		return Draft{}, err
	}
	if err := CheckDraft(draft); err != nil {
		return Draft{}, err
	}
	return draft, nil
}

// ParseDraftJSON decodes a single JSON draft document.
func ParseDraftJSON(data []byte) (Draft, error) {
	var draft Draft
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&draft); err != nil {
		return Draft{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Draft{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Draft{}, fmt.Errorf("parse json: %w", err)
	}
	return draft, nil
}

// ParseDraftYAML decodes a single YAML draft document.
func ParseDraftYAML(data []byte) (Draft, error) {
	var draft Draft
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&draft); err != nil {
		return Draft{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Draft{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Draft{}, fmt.Errorf("parse yaml: %w", err)
	}
	return draft, nil
}
