// Package manifest models the dependency sections of a package.json.
//
// Only the two dependency collections matter to stencil; every other key of
// the manifest is ignored on parse.
package manifest

import (
	"encoding/json"
	"sort"

	"github.com/arthur-debert/stencil/pkg/errors"
)

// Collection names one of the two dependency collections of a manifest
type Collection string

const (
	// Dependencies is the runtime dependency collection
	Dependencies Collection = "dependencies"
	// DevDependencies is the development dependency collection
	DevDependencies Collection = "devDependencies"
)

// Collections returns both collections in comparison order
func Collections() []Collection {
	return []Collection{Dependencies, DevDependencies}
}

// Manifest holds the dependency name -> version specifier mappings of a project
type Manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Normalize returns a copy of m whose collections are never nil
func Normalize(m Manifest) Manifest {
	return Manifest{
		Dependencies:    copyOrEmpty(m.Dependencies),
		DevDependencies: copyOrEmpty(m.DevDependencies),
	}
}

// Get returns the mapping for the given collection
func (m Manifest) Get(c Collection) map[string]string {
	switch c {
	case Dependencies:
		return m.Dependencies
	case DevDependencies:
		return m.DevDependencies
	default:
		return nil
	}
}

// Names returns the dependency names of a collection in sorted order
func (m Manifest) Names(c Collection) []string {
	deps := m.Get(c)
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseProject parses a project's package.json. Missing collections are
// allowed and come back as empty mappings.
func ParseProject(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrManifestParse, MsgErrParseProject)
	}
	return Normalize(m), nil
}

// ParseTemplate parses a rendered template manifest. Both collections must be
// present as JSON objects.
func ParseTemplate(data []byte) (Manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrManifestParse, MsgErrParseTemplate)
	}

	var m Manifest
	for _, c := range Collections() {
		section, ok := raw[string(c)]
		if !ok {
			return Manifest{}, errors.Newf(errors.ErrManifestParse, MsgErrMissingSection, c).
				WithDetail("collection", string(c))
		}
		deps := map[string]string{}
		if err := json.Unmarshal(section, &deps); err != nil {
			return Manifest{}, errors.Wrapf(err, errors.ErrManifestParse, MsgErrBadSection, c).
				WithDetail("collection", string(c))
		}
		// a JSON null decodes to a nil map without error
		if deps == nil {
			return Manifest{}, errors.Newf(errors.ErrManifestParse, MsgErrBadSection, c).
				WithDetail("collection", string(c))
		}
		switch c {
		case Dependencies:
			m.Dependencies = deps
		case DevDependencies:
			m.DevDependencies = deps
		}
	}

	return m, nil
}

func copyOrEmpty(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
