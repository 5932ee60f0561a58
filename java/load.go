package java

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type ModelFormat string

const (
	FormatJSON ModelFormat = "json"
	FormatYAML ModelFormat = "yaml"
)

// FormatForPath selects the model format from a file extension.
func FormatForPath(path string) (ModelFormat, bool) {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// LoadModels reads the class models stored in a .json, .yaml or .yml file.
func LoadModels(path string) ([]*ClassModel, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported model file %s (expected .json, .yaml or .yml)", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	models, err := DecodeModels(f, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return models, nil
}

// DecodeModels decodes either a single class model or a list of them.
func DecodeModels(r io.Reader, format ModelFormat) ([]*ClassModel, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	}
	return nil, fmt.Errorf("unknown model format %q", format)
}

func decodeJSON(r io.Reader) ([]*ClassModel, error) {
	br := bufio.NewReader(r)
	first, err := firstNonSpace(br)
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	dec := json.NewDecoder(br)
	if first == '[' {
		var models []*ClassModel
		if err := dec.Decode(&models); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return models, nil
	}
	var model ClassModel
	if err := dec.Decode(&model); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return []*ClassModel{&model}, nil
}

// firstNonSpace peeks at the first significant byte without consuming it.
func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func decodeYAML(r io.Reader) ([]*ClassModel, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == yaml.SequenceNode {
		var models []*ClassModel
		if err := root.Decode(&models); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return models, nil
	}
	var model ClassModel
	if err := root.Decode(&model); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return []*ClassModel{&model}, nil
}
