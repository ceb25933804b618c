// Package catalogue holds the static descriptions of every technology the detectors can report.
package catalogue

import (
	"unicode"
	"unicode/utf8"
)

// TechnologyID identifies a technology across detectors, signals and the catalogue.
type TechnologyID string

// Bucket names one of the eight detector groups in the report.
type Bucket string

// Buckets in report order.
const (
	BucketFrameworks Bucket = "frameworks"
	BucketLibraries  Bucket = "libraries"
	BucketServerSide Bucket = "serverSide"
	BucketAnalytics  Bucket = "analytics"
	BucketCMS        Bucket = "cms"
	BucketEcommerce  Bucket = "ecommerce"
	BucketBuildTools Bucket = "buildTools"
	BucketMisc       Bucket = "misc"
)

// Buckets returns every bucket in report order.
func Buckets() []Bucket {
	return []Bucket{
		BucketFrameworks, BucketLibraries, BucketServerSide, BucketAnalytics,
		BucketCMS, BucketEcommerce, BucketBuildTools, BucketMisc,
	}
}

// Fallback values for ids with no catalogue entry.
const (
	FallbackDescription = "A web technology"
	FallbackCategory    = "Other"
)

// Definition is the static description of a technology.
type Definition struct {
	Name        string
	Description string
	Category    string
	Website     string
	Features    []string
	DevTools    []string
}

// Lookup returns the definition for id and whether the catalogue knows it.
// Unknown ids get a generic definition: the id with its first letter
// upper-cased, a generic description and the "Other" category.
func Lookup(id TechnologyID) (Definition, bool) {
	if def, ok := definitions[id]; ok {
		return def, true
	}
	return Definition{
		Name:        capitalize(string(id)),
		Description: FallbackDescription,
		Category:    FallbackCategory,
	}, false
}

// Known reports whether id has a catalogue entry.
func Known(id TechnologyID) bool {
	_, ok := definitions[id]
	return ok
}

// IDs returns every catalogued technology id.
func IDs() []TechnologyID {
	ids := make([]TechnologyID, 0, len(definitions))
	for id := range definitions {
		ids = append(ids, id)
	}
	return ids
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
