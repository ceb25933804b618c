// Package types provides type definitions for structured data used throughout the stacklyzer system.
package types

// EngineVersion is reported in every AnalysisReport.
const EngineVersion = "1.0.0"

// Confidence is the coarse certainty attached to a detected technology.
type Confidence string

// Confidence levels, derived only from the number of signals observed.
const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// DetectionRecord describes one detected technology in the report.
type DetectionRecord struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Confidence       Confidence `json:"confidence"`
	Website          string     `json:"website,omitempty"`
	DetectionDetails []string   `json:"detectionDetails,omitempty"`
	Features         []string   `json:"features,omitempty"`
	DevTools         []string   `json:"devTools,omitempty"`
}

// Summary aggregates counts across all buckets.
type Summary struct {
	TotalTechnologies int            `json:"totalTechnologies"`
	Categories        map[string]int `json:"categories"`
}

// Technologies holds the detection records grouped by detector bucket.
// Every slice is non-nil so empty buckets serialize as [].
type Technologies struct {
	Frameworks []DetectionRecord `json:"frameworks"`
	Libraries  []DetectionRecord `json:"libraries"`
	ServerSide []DetectionRecord `json:"serverSide"`
	Analytics  []DetectionRecord `json:"analytics"`
	CMS        []DetectionRecord `json:"cms"`
	Ecommerce  []DetectionRecord `json:"ecommerce"`
	BuildTools []DetectionRecord `json:"buildTools"`
	Misc       []DetectionRecord `json:"misc"`
}

// NewTechnologies returns a Technologies value with every bucket initialized to an empty slice.
func NewTechnologies() Technologies {
	return Technologies{
		Frameworks: []DetectionRecord{},
		Libraries:  []DetectionRecord{},
		ServerSide: []DetectionRecord{},
		Analytics:  []DetectionRecord{},
		CMS:        []DetectionRecord{},
		Ecommerce:  []DetectionRecord{},
		BuildTools: []DetectionRecord{},
		Misc:       []DetectionRecord{},
	}
}

// All returns the buckets in report order.
func (t Technologies) All() [][]DetectionRecord {
	return [][]DetectionRecord{
		t.Frameworks, t.Libraries, t.ServerSide, t.Analytics,
		t.CMS, t.Ecommerce, t.BuildTools, t.Misc,
	}
}

// Meta carries scan metadata.
type Meta struct {
	ScanTime      string `json:"scanTime"`
	EngineVersion string `json:"engineVersion"`
}

// AnalysisReport is the complete result of analyzing one URL.
type AnalysisReport struct {
	URL          string       `json:"url"`
	Summary      Summary      `json:"summary"`
	Technologies Technologies `json:"technologies"`
	Meta         Meta         `json:"meta"`
}

// Find returns the record with the given id from any bucket, or nil.
func (r *AnalysisReport) Find(id string) *DetectionRecord {
	if r == nil {
		return nil
	}
	for _, bucket := range r.Technologies.All() {
		for i := range bucket {
			if bucket[i].ID == id {
				return &bucket[i]
			}
		}
	}
	return nil
}

// IDs returns the ids of every detected technology in report order.
func (r *AnalysisReport) IDs() []string {
	if r == nil {
		return nil
	}
	var ids []string
	for _, bucket := range r.Technologies.All() {
		for _, rec := range bucket {
			ids = append(ids, rec.ID)
		}
	}
	return ids
}
