package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk chart description. JSON documents decode through
// the same path since JSON is valid YAML.
type Document struct {
	BarHeight int      `yaml:"barHeight" json:"barHeight"`
	Charts    []Series `yaml:"charts" json:"charts"`
}

// LoadFile reads and decodes a chart document.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read chart data: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a document. An empty input yields an empty document.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, err
	}
	if doc.BarHeight < 0 {
		return Document{}, fmt.Errorf("barHeight must be >= 0 (got %d)", doc.BarHeight)
	}
	return doc, nil
}
