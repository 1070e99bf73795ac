// Package manifest reads, validates and rewrites an npm package manifest
// (package.json). Documents keep their key order so that a rewrite only
// changes the values it touches, and Validate checks the shape vuedj relies
// on against an embedded JSON Schema.
package manifest
