// Package manifest loads a project's package.json once and answers the
// questions a validation run asks of it: is it valid JSON, and which
// dependencies does it declare.
package manifest

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"sort"

	"github.com/spf13/afero"

	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/pkg/fileutil"
)

var (
	// ErrNotObject indicates the manifest is valid JSON but not an object.
	ErrNotObject = errors.New("manifest is not a JSON object")

	// ErrDependenciesNotObject indicates "dependencies" is present but not an object.
	ErrDependenciesNotObject = errors.New(`manifest "dependencies" is not a JSON object`)
)

// Manifest is a decoded package.json. The document is decoded once; every
// accessor works from that decode.
type Manifest struct {
	doc any
}

// Parse decodes data. Malformed JSON yields a *SyntaxError carrying the
// line and column of the offending byte.
func Parse(data []byte) (*Manifest, error) {
	// Unmarshal checks the whole input, trailing bytes included, before
	// decoding anything.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newSyntaxError(err, data)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding manifest")
	}

	return &Manifest{doc: doc}, nil
}

// Load reads path from afs without a size limit and parses it. A missing
// file yields an error matching fs.ErrNotExist.
func Load(afs afero.Fs, path string) (*Manifest, error) {
	return LoadWithLimit(afs, path, fileutil.NoLimit)
}

// LoadWithLimit is Load that refuses files larger than limit bytes. A limit
// <= 0 means no limit.
func LoadWithLimit(afs afero.Fs, path string, limit int64) (*Manifest, error) {
	data, err := fileutil.ReadFileWithLimit(afs, path, limit)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return Parse(data)
}

// Object returns the top-level JSON object.
func (m *Manifest) Object() (map[string]any, error) {
	obj, ok := m.doc.(map[string]any)
	if !ok || obj == nil {
		return nil, ErrNotObject
	}
	return obj, nil
}

// Dependencies returns the "dependencies" mapping. A manifest without the
// key has no dependencies.
func (m *Manifest) Dependencies() (Dependencies, error) {
	obj, err := m.Object()
	if err != nil {
		return nil, err
	}

	raw, ok := obj["dependencies"]
	if !ok {
		return Dependencies{}, nil
	}
	deps, ok := raw.(map[string]any)
	if !ok || deps == nil {
		return nil, ErrDependenciesNotObject
	}
	return Dependencies(deps), nil
}

// Dependencies maps dependency names to their declared version values.
type Dependencies map[string]any

// Has reports whether name is declared.
func (d Dependencies) Has(name string) bool {
	_, ok := d[name]
	return ok
}

// Version returns the declared value for name. String values are returned
// verbatim; anything else is rendered as compact JSON.
func (d Dependencies) Version(name string) string {
	v, ok := d[name]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Names returns the declared dependency names sorted alphabetically.
func (d Dependencies) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
