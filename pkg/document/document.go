// Package document provides the public API for saving and loading registry
// documents, keeping the record layout and codecs internal.
//
// Example:
//
//	reg := types.NewRegistry()
//	// ... add instructors, courses, students ...
//	if err := document.Save("school_data.json", reg); err != nil {
//	    return err
//	}
//	reg, err := document.Load("school_data.json")
package document

import (
	"github.com/mesh-intelligence/registrar/internal/document"
	"github.com/mesh-intelligence/registrar/pkg/types"
)

// Save writes every entity in reg to path. The encoding follows the file
// extension: .yaml and .yml write YAML, anything else writes JSON.
func Save(path string, reg *types.Registry) error {
	return document.SaveRegistry(path, reg)
}

// SaveCollections writes three ordered collections to path without
// requiring them to be indexed in a Registry first.
func SaveCollections(path string, instructors []*types.Instructor, courses []*types.Course, students []*types.Student) error {
	return document.Save(path, instructors, courses, students)
}

// Load reads path and rebuilds a fresh registry, re-linking every
// relationship by ID.
func Load(path string) (*types.Registry, error) {
	return document.Load(path)
}
