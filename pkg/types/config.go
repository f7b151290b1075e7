package types

import (
	"errors"
	"path/filepath"
	"strings"
)

// Config selects where a registry is persisted.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	Document string `json:"document,omitempty" yaml:"document,omitempty"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DefaultDocument is the document file name used when Config.Document is
// empty.
const DefaultDocument = "school_data.json"

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrDocumentUnknown = errors.New("document must end in .json, .yaml or .yml")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSON:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Document != "" {
		switch strings.ToLower(filepath.Ext(c.Document)) {
		case ".json", ".yaml", ".yml":
		default:
			return ErrDocumentUnknown
		}
	}
	return nil
}

// DocumentPath returns the document file path inside DataDir.
func (c Config) DocumentPath() string {
	name := c.Document
	if name == "" {
		name = DefaultDocument
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
