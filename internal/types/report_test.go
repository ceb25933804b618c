package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTechnologies_EmptyBucketsSerializeAsArrays(t *testing.T) {
	report := AnalysisReport{
		URL:          "example.com",
		Summary:      Summary{Categories: map[string]int{}},
		Technologies: NewTechnologies(),
		Meta:         Meta{ScanTime: "2024-01-01T00:00:00.000Z", EngineVersion: EngineVersion},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	techs := raw["technologies"].(map[string]any)
	for _, key := range []string{"frameworks", "libraries", "serverSide", "analytics", "cms", "ecommerce", "buildTools", "misc"} {
		bucket, ok := techs[key].([]any)
		require.True(t, ok, "bucket %s should be an array", key)
		assert.Empty(t, bucket)
	}
}

func TestDetectionRecord_OmitsEmptyOptionalFields(t *testing.T) {
	rec := DetectionRecord{
		ID:          "server",
		Name:        "Server",
		Description: "A web technology",
		Category:    "Other",
		Confidence:  ConfidenceLow,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	s := string(data)
	assert.NotContains(t, s, "website")
	assert.NotContains(t, s, "detectionDetails")
	assert.NotContains(t, s, "features")
	assert.NotContains(t, s, "devTools")
}

func TestAnalysisReport_FindAndIDs(t *testing.T) {
	techs := NewTechnologies()
	techs.Frameworks = append(techs.Frameworks, DetectionRecord{ID: "react"})
	techs.Misc = append(techs.Misc, DetectionRecord{ID: "pwa"})
	report := &AnalysisReport{Technologies: techs}

	assert.Equal(t, []string{"react", "pwa"}, report.IDs())
	require.NotNil(t, report.Find("pwa"))
	assert.Nil(t, report.Find("vue"))

	var nilReport *AnalysisReport
	assert.Nil(t, nilReport.Find("react"))
}
