// Package fixture reads and writes element documents used to drive the
// tokenlist command and tests.
//
// A document is a list of elements, each with a name, an optional merge
// priority and its attributes:
//
//	elements:
//	  - name: span
//	    priority: 10
//	    attributes:
//	      class: "a b"
//	      title: note
//
// YAML documents keep attribute order. TOML tables do not, so their
// attributes are taken in key order.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/viktordanov/tokenlist"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnknownFormat = errors.New("unknown document format")

type Document struct {
	Elements []ElementDef `yaml:"elements" toml:"elements"`
}

type ElementDef struct {
	Name       string        `yaml:"name" toml:"name"`
	Priority   *int          `yaml:"priority,omitempty" toml:"priority,omitempty"`
	Attributes AttributeList `yaml:"attributes,omitempty" toml:"attributes,omitempty"`
}

// FormatFor picks the document format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads the document at path and builds its elements.
func Load(path string) ([]*tokenlist.Element, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc.Build()
}

// Decode parses a document. Unknown YAML fields are rejected.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return &doc, nil
}

// Build turns the document into elements.
func (d *Document) Build() ([]*tokenlist.Element, error) {
	elements := make([]*tokenlist.Element, 0, len(d.Elements))
	for i, def := range d.Elements {
		if def.Name == "" {
			return nil, fmt.Errorf("element %d: missing name", i)
		}
		el := tokenlist.NewElement(def.Name)
		if def.Priority != nil {
			el.Priority = *def.Priority
		}
		for _, attr := range def.Attributes {
			el.Attrs.Set(attr.Key, attr.Value)
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// FromElements is the inverse of Build.
func FromElements(elements []*tokenlist.Element) *Document {
	doc := &Document{Elements: make([]ElementDef, 0, len(elements))}
	for _, el := range elements {
		def := ElementDef{Name: el.Name}
		if el.Priority != tokenlist.DefaultPriority {
			p := el.Priority
			def.Priority = &p
		}
		for _, k := range el.Attrs.Keys() {
			v, _ := el.Attrs.Get(k)
			def.Attributes = append(def.Attributes, Attribute{Key: k, Value: v})
		}
		doc.Elements = append(doc.Elements, def)
	}
	return doc
}

// Encode writes elements as a YAML document.
func Encode(w io.Writer, elements []*tokenlist.Element) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromElements(elements)); err != nil {
		return err
	}
	return enc.Close()
}
