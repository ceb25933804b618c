package detectors

import (
	"regexp"

	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/document"
	"github.com/jonathan/stacklyzer/internal/signature"
)

var (
	reactPathRe    = regexp.MustCompile(`/react(@|-)[\d.]+/`)
	reactDOMPathRe = regexp.MustCompile(`/react-dom(@|-)[\d.]+/`)
	reactBuildRe   = regexp.MustCompile(`/(umd|cjs|esm)/react\.`)
	vueVersionRe   = regexp.MustCompile(`vue@[\d.]+`)
	vuePathRe      = regexp.MustCompile(`/vue(@|-)[\d.]+/`)
	svelteClassRe  = regexp.MustCompile(`svelte-\w{6}`)
)

// Frameworks returns the frontend framework detector.
func Frameworks() Detector {
	return newTableDetector(catalogue.BucketFrameworks, frameworkSignatures)
}

var frameworkSignatures = []signature.Signature{
	{
		ID: catalogue.React,
		Patterns: []signature.Pattern{
			{Name: "data-reactroot", Test: signature.Exists("[data-reactroot]")},
			{Name: "data-reactid", Test: signature.Exists("[data-reactid]")},
			{Name: "reactDOM", Test: signature.HTMLContains("ReactDOM")},
			{Name: "createElement", Test: signature.TextContains("React.createElement")},
			{Name: "useState", Test: signature.InlineContains("useState(", "React.useState")},
			{Name: "reactPaths", Test: signature.Any(
				signature.ScriptMatches(reactPathRe, reactDOMPathRe, reactBuildRe),
				signature.ScriptSuffix("react.js", "react.min.js", "react-dom.js", "react-dom.min.js"),
			)},
		},
	},
	{
		ID: catalogue.Vue,
		Patterns: []signature.Pattern{
			{Name: "vueInstance", Test: signature.TextContains("new Vue(")},
			{Name: "vueCreateApp", Test: signature.TextContains("createApp(")},
			{Name: "vueDirectives", Test: signature.Exists("[v-if]", "[v-for]", "[v-model]", "[v-bind]", "[v-on]", "[v-show]", "[v-else]")},
			{Name: "vueInterpolation", Test: signature.All(
				signature.HTMLContains("{{"),
				signature.HTMLContains("}}"),
				signature.Not(signature.HTMLContains("{{%")),
			)},
			{Name: "vueDataAttributes", Test: signature.HTMLContains("data-v-")},
			{Name: "vueConstructor", Test: signature.TextContains("__vue__")},
			{Name: "vueVersion", Test: signature.HTMLMatches(vueVersionRe)},
			{Name: "vuePaths", Test: signature.Any(
				signature.ScriptMatches(vuePathRe),
				signature.ScriptSuffix("vue.js", "vue.min.js"),
				signature.ScriptContains("vue-router", "vuex"),
			)},
		},
		Derive: deriveVueVersion,
	},
	{
		ID: catalogue.Angular,
		Patterns: []signature.Pattern{
			{Name: "ngApp", Test: signature.Exists("[ng-app]")},
			{Name: "ngController", Test: signature.Exists("[ng-controller]")},
			{Name: "ngDirectives", Test: signature.Exists("[ng-repeat]", "[ng-if]", "[ng-show]", "[ng-hide]", "[ng-class]", "[ng-model]")},
			{Name: "angularModule", Test: signature.TextContains("angular.module")},
			{Name: "angularPaths", Test: signature.ScriptContains("angular.js", "angular.min.js", "angular-route", "angular-resource")},
			{Name: "angular2Components", Test: signature.Exists("[_nghost]", "[_ngcontent]")},
			{Name: "angularDeclarations", Test: signature.InlineContains("@Component", "@NgModule")},
			{Name: "angular2Paths", Test: signature.ScriptContains("@angular/", "angular2.", "zone.js")},
		},
		Derive: deriveAngularVersion,
	},
	{
		ID: catalogue.NextJS,
		Patterns: []signature.Pattern{
			{Name: "nextData", Test: signature.HTMLContains("__NEXT_DATA__")},
			{Name: "nextRuntime", Test: signature.HTMLContains("__NEXT_LOADED_PAGES__", "next/dist/")},
			{Name: "nextPaths", Test: signature.ScriptContains("/_next/", "next/dist", "next.js", "next-client-pages-loader")},
			{Name: "nextHeaders", Test: signature.Exists(`meta[name="next-head-count"]`)},
			{Name: "nextImage", Test: signature.Exists("span[data-next-image-wrapper]")},
		},
	},
	{
		ID: catalogue.NuxtJS,
		Patterns: []signature.Pattern{
			{Name: "nuxtData", Test: signature.HTMLContains("__NUXT__")},
			{Name: "nuxtPaths", Test: signature.ScriptContains("/_nuxt/", "nuxt.js", "nuxt-link")},
			{Name: "nuxtAttributes", Test: signature.Exists("[data-n-head]", "[data-hid]")},
			{Name: "nuxtMeta", Test: signature.Exists(`meta[data-n-head="ssr"]`)},
		},
	},
	{
		ID: catalogue.Svelte,
		Patterns: []signature.Pattern{
			{Name: "svelteClass", Test: signature.HTMLMatches(svelteClassRe)},
			{Name: "svelteHydrate", Test: signature.HTMLContains("__SVELTE", "hydrate:")},
			{Name: "sveltePaths", Test: signature.ScriptContains("svelte")},
		},
	},
	{
		ID: catalogue.Gatsby,
		Patterns: []signature.Pattern{
			{Name: "gatsbyRoot", Test: signature.HTMLContains("___gatsby")},
			{Name: "gatsbyLoader", Test: signature.HTMLContains("window.___webpackCompilationHash")},
			{Name: "gatsbyPaths", Test: signature.ScriptContains("gatsby-", "page-data.json")},
			{Name: "gatsbyData", Test: signature.HTMLContains("window.pageData", "window.___chunkMapping")},
		},
	},
	{
		ID: catalogue.Remix,
		Patterns: []signature.Pattern{
			{Name: "remixContext", Test: signature.HTMLContains("__remixContext")},
			{Name: "remixManifest", Test: signature.HTMLContains("__remixManifest")},
			{Name: "remixRouteModules", Test: signature.HTMLContains("__remixRouteModules")},
			{Name: "remixPaths", Test: signature.ScriptContains("remix", "routes-module")},
		},
	},
	{
		ID: catalogue.Alpine,
		Patterns: []signature.Pattern{
			{Name: "alpineDirective", Test: signature.Exists("[x-data]", "[x-bind]", "[x-on]", "[x-show]", "[x-if]", "[x-for]")},
			{Name: "alpineScript", Test: signature.ScriptContains("alpine.js", "alpinejs")},
			{Name: "alpineInit", Test: signature.HTMLContains("x-data=", "$data", "Alpine.data")},
		},
	},
	{
		ID: catalogue.Preact,
		Patterns: []signature.Pattern{
			{Name: "preactImport", Test: signature.InlineContains(`from "preact"`, `from 'preact'`)},
			{Name: "preactRequire", Test: signature.InlineContains(`require("preact")`, `require('preact')`)},
			{Name: "preactPaths", Test: signature.ScriptContains("preact.", "preact/", "preact-")},
		},
	},
	{
		ID: catalogue.Ember,
		Patterns: []signature.Pattern{
			{Name: "emberApp", Test: signature.HTMLContains("data-ember-app", "ember-application")},
			{Name: "emberView", Test: signature.HTMLContains("data-ember-view", "ember-view")},
			{Name: "emberLoad", Test: signature.HTMLContains("ember-load")},
			{Name: "emberPaths", Test: signature.ScriptContains("ember.", "ember-")},
			{Name: "emberInit", Test: signature.InlineContains("Ember.Application", "DS.Model")},
		},
	},
	{
		ID: catalogue.SolidJS,
		Patterns: []signature.Pattern{
			{Name: "solidPaths", Test: signature.ScriptContains("solid-js", "solid.")},
			{Name: "solidImport", Test: signature.InlineContains(`from "solid-js"`, `from 'solid-js'`)},
			{Name: "solidSignals", Test: signature.InlineContains("createSignal", "createResource", "createStore")},
		},
	},
	{
		ID: catalogue.Lit,
		Patterns: []signature.Pattern{
			{Name: "litElement", Test: signature.HTMLContains("lit-html", "lit-element")},
			{Name: "litDecorators", Test: signature.InlineContains("@customElement", "@property")},
			{Name: "litImports", Test: signature.InlineContains(`from "lit"`, `from 'lit'`)},
			{Name: "litPaths", Test: signature.ScriptContains("lit-element", "lit-html", "lit.", "lit/")},
		},
	},
}

// deriveVueVersion prefers the Vue 3 construction style over Vue 2.
func deriveVueVersion(doc *document.Document, _ signature.Result) []string {
	switch {
	case signature.TextContains("createApp(")(doc) || signature.ScriptContains("vue@3")(doc):
		return []string{"Using Vue 3.x"}
	case signature.TextContains("new Vue(")(doc) || signature.ScriptContains("vue@2")(doc):
		return []string{"Using Vue 2.x"}
	}
	return nil
}

// deriveAngularVersion reports a generation only when the evidence is unambiguous.
func deriveAngularVersion(_ *document.Document, res signature.Result) []string {
	modern := res.Matched("angular2Components") || res.Matched("angularDeclarations") || res.Matched("angular2Paths")
	classic := res.Matched("ngApp") || res.Matched("ngController") || res.Matched("angularModule")

	switch {
	case modern && !classic:
		return []string{"Using Angular 2+ (Modern Angular)"}
	case classic && !modern:
		return []string{"Using AngularJS (Angular 1.x)"}
	}
	return nil
}
