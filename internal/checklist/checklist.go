package checklist

// Checklist is the full set of inputs for one validation run.
type Checklist struct {
	// Entries are checked for existence in order.
	Entries []Entry
	// Manifest is the path of the JSON manifest, relative to the project.
	Manifest string
	// RequiredDependencies must be keys of the manifest's "dependencies".
	RequiredDependencies []string
	// MaxManifestSize caps the bytes read from the manifest. Zero reads it
	// whole.
	MaxManifestSize int64
}

// Default returns the built-in checklist for a Nightscout API backend.
func Default() Checklist {
	return Checklist{
		Entries:              All(),
		Manifest:             ManifestPath,
		RequiredDependencies: RequiredDependencies(),
	}
}

// Len returns the number of file entries.
func (c Checklist) Len() int {
	return len(c.Entries)
}
