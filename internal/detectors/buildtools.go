package detectors

import (
	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/signature"
)

// BuildTools returns the bundler and transpiler detector.
func BuildTools() Detector {
	return newTableDetector(catalogue.BucketBuildTools, buildToolSignatures)
}

var buildToolSignatures = []signature.Signature{
	{
		ID: catalogue.Webpack,
		Patterns: []signature.Pattern{
			{Name: "webpack", Signal: "Webpack artifacts detected", Test: signature.Any(
				signature.HTMLContains("webpackJsonp", "__webpack_require__"),
				signature.ScriptContains("webpack"),
			)},
		},
	},
	{
		ID: catalogue.Vite,
		Patterns: []signature.Pattern{
			{Name: "vite", Signal: "Vite build tool artifacts detected", Test: signature.Any(
				signature.HTMLContains("/@vite/", "vite-plugin"),
				signature.ScriptContains("/@vite/", "/vite/", "vite-hmr"),
			)},
		},
	},
	{
		ID: catalogue.Parcel,
		Patterns: []signature.Pattern{
			{Name: "parcel", Signal: "Parcel bundler artifacts detected", Test: signature.Any(
				signature.HTMLContains("parcelRequire"),
				signature.ScriptContains("parcel"),
			)},
		},
	},
	{
		ID: catalogue.Babel,
		Patterns: []signature.Pattern{
			{Name: "babel", Signal: "Babel transpiler artifacts detected", Test: signature.HTMLContains(
				"_classCallCheck", "_defineProperty", "_regeneratorRuntime",
			)},
		},
	},
}
