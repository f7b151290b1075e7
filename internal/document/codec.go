// This file implements the document encodings. JSON is the default; YAML is
// chosen by a .yaml or .yml file extension. Both use the same key names.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Format identifies a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// jsonIndent matches the four-space layout of existing school_data.json files.
const jsonIndent = "    "

// FormatFor picks the encoding from a file name's extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml document: %w: %w", types.ErrIO, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("closing yaml encoder: %w: %w", types.ErrIO, err)
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", jsonIndent)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json document: %w: %w", types.ErrIO, err)
		}
		return nil
	}
}

// Decode reads one document from r in the given format. Unknown keys are
// ignored; missing sections and empty input decode as empty. Anything after
// the document, such as a second JSON value or YAML document, is rejected.
func Decode(r io.Reader, format Format) (Document, error) {
	var dec interface{ Decode(any) error }
	switch format {
	case FormatYAML:
		dec = yaml.NewDecoder(r)
	default:
		dec = json.NewDecoder(r)
	}

	var doc Document
	err := dec.Decode(&doc)
	if errors.Is(err, io.EOF) {
		return Document{}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("decoding %s document: %w: %w", format, types.ErrMalformedDocument, err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after the document")
		}
		return Document{}, fmt.Errorf("decoding %s document: %w: %w", format, types.ErrMalformedDocument, err)
	}
	return doc, nil
}
