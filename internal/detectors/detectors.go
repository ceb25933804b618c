// Package detectors implements the eight category detectors. Each detector
// owns a table of signatures and is a pure function of the parsed document
// (and, for server-side detection, the response headers).
package detectors

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/document"
	"github.com/jonathan/stacklyzer/internal/signature"
)

// Detection is one technology found by a detector, with its evidence in order.
type Detection struct {
	ID      catalogue.TechnologyID
	Signals []string
}

// Result is everything one detector found on a page, in table order.
type Result struct {
	Bucket     catalogue.Bucket
	Detections []Detection
}

// Detected reports whether id was found.
func (r Result) Detected(id catalogue.TechnologyID) bool {
	for _, d := range r.Detections {
		if d.ID == id {
			return true
		}
	}
	return false
}

// Signals returns the evidence recorded for id, or nil.
func (r Result) Signals(id catalogue.TechnologyID) []string {
	for _, d := range r.Detections {
		if d.ID == id {
			return d.Signals
		}
	}
	return nil
}

// Detector inspects a parsed page for one category of technologies.
type Detector interface {
	Bucket() catalogue.Bucket
	// Technologies lists every id the detector can report.
	Technologies() []catalogue.TechnologyID
	Detect(doc *document.Document) Result
}

// tableDetector evaluates a fixed list of signatures.
type tableDetector struct {
	bucket     catalogue.Bucket
	signatures []signature.Signature
}

func newTableDetector(bucket catalogue.Bucket, signatures []signature.Signature) *tableDetector {
	return &tableDetector{bucket: bucket, signatures: signatures}
}

func (d *tableDetector) Bucket() catalogue.Bucket {
	return d.bucket
}

func (d *tableDetector) Technologies() []catalogue.TechnologyID {
	ids := make([]catalogue.TechnologyID, 0, len(d.signatures))
	for _, s := range d.signatures {
		ids = append(ids, s.ID)
	}
	return ids
}

func (d *tableDetector) Detect(doc *document.Document) Result {
	res := Result{Bucket: d.bucket, Detections: []Detection{}}
	if doc == nil {
		doc = document.Empty()
	}
	for _, s := range d.signatures {
		r := s.Evaluate(doc)
		if r.Detected {
			res.Detections = append(res.Detections, Detection{ID: r.ID, Signals: r.Signals})
		}
	}
	return res
}

// All returns the eight detectors in report order. headers are the HTTP
// response headers of the analyzed page; only server-side detection reads them.
func All(headers http.Header) []Detector {
	return []Detector{
		Frameworks(),
		Libraries(),
		ServerSide(headers),
		Analytics(),
		CMS(),
		Ecommerce(),
		BuildTools(),
		Misc(),
	}
}

// Validate checks that every technology id is claimed by exactly one detector
// and that no two detectors share a bucket.
func Validate(detectors []Detector) error {
	owners := make(map[catalogue.TechnologyID]catalogue.Bucket)
	buckets := make(map[catalogue.Bucket]bool)
	for _, d := range detectors {
		if buckets[d.Bucket()] {
			return fmt.Errorf("bucket %s is claimed by more than one detector", d.Bucket())
		}
		buckets[d.Bucket()] = true

		for _, id := range d.Technologies() {
			if owner, ok := owners[id]; ok {
				return fmt.Errorf("technology %q is claimed by both %s and %s", id, owner, d.Bucket())
			}
			owners[id] = d.Bucket()
		}
	}
	return nil
}

// versionSignal returns a one-element signal list "<label>: <capture>" when
// re captures something in texts, and nil otherwise.
func versionSignal(label string, re *regexp.Regexp, texts ...string) []string {
	if v := signature.FirstSubmatch(re, texts...); v != "" {
		return []string{label + ": " + v}
	}
	return nil
}
