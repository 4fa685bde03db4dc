// Package repository defines the document store interface and errors.
package repository

import "io/fs"

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithFileMode sets the permission bits for the data file.
func WithFileMode(mode fs.FileMode) Option {
	return func(s *FileStore) {
		if mode != 0 {
			s.fileMode = mode
		}
	}
}

// WithPrettyJSON toggles indented output. On by default so the data file
// stays hand-inspectable, the way the original data.json was.
func WithPrettyJSON(pretty bool) Option {
	return func(s *FileStore) {
		s.pretty = pretty
	}
}
