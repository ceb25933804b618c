package schemas

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/stacklyzer/internal/engine"
	"github.com/jonathan/stacklyzer/internal/fetch"
	"github.com/jonathan/stacklyzer/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"analysis_report.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v map[string]interface{}
			assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", schemaFile)
			assert.Contains(t, v, "$schema")
		})
	}
}

func TestSchemaFiles_Compile(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			absPath, err := filepath.Abs(schemaFile)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + absPath))
			assert.NoError(t, err, "schema should compile, including its $refs")
		})
	}
}

type staticFetcher struct {
	page *fetch.Result
}

func (f staticFetcher) Fetch(_ context.Context, url string) (*fetch.Result, error) {
	page := *f.page
	page.URL = url
	return &page, nil
}

func TestAnalysisReportSchema_MatchesEngineOutput(t *testing.T) {
	headers := http.Header{}
	headers.Set("Server", "cloudflare")
	headers.Set("CF-Ray", "7d1a2b3c4d5e6f70-AMS")

	page := &fetch.Result{
		StatusCode:  http.StatusOK,
		Status:      "OK",
		ContentType: "text/html",
		Headers:     headers,
		HTML: `<html><head>
<meta name="generator" content="WordPress 6.4.2">
<script src="https://code.jquery.com/jquery-3.6.0.min.js"></script>
<script async src="https://www.googletagmanager.com/gtag/js?id=G-ABCDEF1234"></script>
<link rel="manifest" href="/manifest.json">
</head><body class="woocommerce"><div id="app" data-v-1a2b3c></div></body></html>`,
	}

	e, err := engine.New(
		engine.WithFetcher(staticFetcher{page: page}),
		engine.WithClock(func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }),
	)
	require.NoError(t, err)

	report, err := e.Analyze(context.Background(), "shop.example.com")
	require.NoError(t, err)
	require.Greater(t, report.Summary.TotalTechnologies, 0)

	assert.NoError(t, schemas.ValidateValue("analysis_report.schema.json", report))
}
