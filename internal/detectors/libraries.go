package detectors

import (
	"regexp"

	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/signature"
)

var (
	jqueryVersionRe    = regexp.MustCompile(`jquery(@|-)[\d.]+`)
	bootstrapVersionRe = regexp.MustCompile(`bootstrap(@|-)[\d.]+`)
)

// Libraries returns the JavaScript/CSS library detector.
func Libraries() Detector {
	return newTableDetector(catalogue.BucketLibraries, librarySignatures)
}

// htmlClassContains matches when the class attribute of the root <html> element contains sub.
func htmlClassContains(sub string) signature.Test {
	return signature.Exists(`html[class*="` + sub + `"]`)
}

var librarySignatures = []signature.Signature{
	{
		ID: catalogue.JQuery,
		Patterns: []signature.Pattern{
			{Name: "jqueryVariable", Test: signature.TextContains("jQuery")},
			{Name: "jqueryDollar", Test: signature.TextContains("$(")},
			{Name: "jqueryImport", Test: signature.Any(
				signature.ScriptMatches(jqueryVersionRe),
				signature.ScriptSuffix("jquery.js", "jquery.min.js"),
				signature.ScriptContains("/jquery/"),
			)},
			{Name: "jqueryPlugins", Test: signature.ScriptContains("jquery.", ".jquery.")},
		},
	},
	{
		ID: catalogue.Bootstrap,
		Patterns: []signature.Pattern{
			{Name: "bootstrapClasses", Test: signature.Exists(
				`[class*="navbar-"]`, `[class*="btn-"]`, `[class*="modal-"]`, `[class*="carousel-"]`, `[class*="collapse"]`,
			)},
			{Name: "bootstrapAttributes", Test: signature.Exists(
				"[data-bs-toggle]", `[data-toggle="tooltip"]`, `[data-toggle="modal"]`,
			)},
			{Name: "bootstrapStrings", Test: signature.TextContains("bootstrap")},
			{Name: "bootstrapImport", Test: signature.Any(
				signature.ScriptMatches(bootstrapVersionRe),
				signature.ScriptSuffix("bootstrap.js", "bootstrap.min.js"),
				signature.ScriptContains("/bootstrap/"),
			)},
		},
	},
	{
		ID: catalogue.Lodash,
		Patterns: []signature.Pattern{
			{Name: "lodashVariable", Test: signature.TextContains("_.")},
			{Name: "lodashImport", Test: signature.ScriptContains("lodash", "underscore")},
			{Name: "lodashFunctions", Test: signature.InlineContains("_.map(", "_.filter(", "_.debounce(")},
		},
	},
	{
		ID: catalogue.Tailwind,
		Patterns: []signature.Pattern{
			{Name: "tailwindUtilities", Test: signature.CountAbove(5,
				`[class*="text-"]`, `[class*="bg-"]`, `[class*="flex"]`, `[class*="grid"]`,
				`[class*="p-"]`, `[class*="m-"]`, `[class*="rounded-"]`,
			)},
			{Name: "tailwindPrefix", Test: signature.Exists(`[class*="tw-"]`)},
			{Name: "tailwindDarkMode", Test: signature.Any(htmlClassContains("dark:"), signature.HTMLContains("dark:"))},
			{Name: "tailwindImport", Test: signature.ScriptContains("tailwind")},
			{Name: "tailwindConfig", Test: signature.TextContains("tailwind.config")},
		},
	},
	{
		ID: catalogue.MaterialUI,
		Patterns: []signature.Pattern{
			{Name: "muiClasses", Test: signature.Exists(
				`[class*="MuiButton"]`, `[class*="MuiTypography"]`, `[class*="MuiBox"]`, `[class*="MuiContainer"]`,
			)},
			{Name: "muiAttributes", Test: signature.Exists("[data-mui-color-scheme]")},
			{Name: "muiStrings", Test: signature.TextContains("material-ui", "@mui/")},
			{Name: "muiImport", Test: signature.ScriptContains("material-ui", "@mui/", "/mui.", "mui/")},
		},
	},
	{
		ID: catalogue.AntDesign,
		Patterns: []signature.Pattern{
			{Name: "antClasses", Test: signature.Exists(
				`[class*="ant-btn"]`, `[class*="ant-input"]`, `[class*="ant-layout"]`, `[class*="ant-menu"]`, `[class*="ant-form"]`,
			)},
			{Name: "antPrefix", Test: signature.Exists(`[class^="ant-"]`)},
			{Name: "antConfig", Test: signature.TextContains("antd")},
			{Name: "antImport", Test: signature.ScriptContains("antd", "@ant-design/")},
		},
	},
	{
		ID: catalogue.ChakraUI,
		Patterns: []signature.Pattern{
			{Name: "chakraClasses", Test: signature.Exists(`[class*="chakra-"]`, "[data-chakra-component]")},
			{Name: "chakraProviders", Test: signature.TextContains("ChakraProvider")},
			{Name: "chakraImport", Test: signature.ScriptContains("@chakra-ui/", "chakra-ui")},
		},
	},
	{
		ID: catalogue.Bulma,
		Patterns: []signature.Pattern{
			{Name: "bulmaImport", Test: signature.Any(
				signature.ScriptContains("bulma"),
				signature.LinkHrefContains("bulma"),
			)},
			{Name: "bulmaClasses", Test: signature.All(
				signature.Exists(".columns > .column"),
				signature.Exists(".is-primary", ".is-fullwidth", ".navbar-burger"),
			)},
		},
	},
	{
		ID: catalogue.Foundation,
		Patterns: []signature.Pattern{
			{Name: "foundationImport", Test: signature.Any(
				signature.ScriptContains("foundation.min.js", "foundation.js", "foundation-sites"),
				signature.LinkHrefContains("foundation.min.css", "foundation.css", "foundation-sites"),
			)},
			{Name: "foundationInit", Test: signature.InlineContains("$(document).foundation()", "Foundation.addToJquery")},
			{Name: "foundationAttributes", Test: signature.Exists("[data-reveal]", "[data-dropdown-menu]", "[data-off-canvas]")},
		},
	},
	{
		ID: catalogue.Semantic,
		Patterns: []signature.Pattern{
			{Name: "semanticImport", Test: signature.Any(
				signature.ScriptContains("semantic.min.js", "semantic.js", "semantic-ui", "fomantic-ui"),
				signature.LinkHrefContains("semantic.min.css", "semantic.css", "semantic-ui", "fomantic-ui"),
			)},
			{Name: "semanticClasses", Test: signature.Exists(".ui.menu", ".ui.button", ".ui.segment", ".ui.grid")},
		},
	},
	{
		ID: catalogue.GSAP,
		Patterns: []signature.Pattern{
			{Name: "gsapImport", Test: signature.ScriptContains("gsap", "greensock", "TweenMax")},
			{Name: "gsapVars", Test: signature.InlineContains("gsap.", "TweenMax.", "TimelineMax.")},
		},
	},
	{
		ID: catalogue.AnimeJS,
		Patterns: []signature.Pattern{
			{Name: "animeImport", Test: signature.ScriptContains("anime.min.js", "anime.js", "animejs")},
			{Name: "animeCalls", Test: signature.InlineContains("anime({", "anime.timeline(")},
		},
	},
	{
		ID: catalogue.FramerMotion,
		Patterns: []signature.Pattern{
			{Name: "framerMotionImport", Test: signature.Any(
				signature.ScriptContains("framer-motion"),
				signature.InlineContains(`from "framer-motion"`, `from 'framer-motion'`),
			)},
		},
	},
	{
		ID: catalogue.Redux,
		Patterns: []signature.Pattern{
			{Name: "reduxImport", Test: signature.ScriptContains("redux")},
			{Name: "reduxHooks", Test: signature.InlineContains("useSelector", "useDispatch")},
			{Name: "reduxFunctions", Test: signature.InlineContains("createStore", "combineReducers")},
		},
	},
	{
		ID: catalogue.MobX,
		Patterns: []signature.Pattern{
			{Name: "mobxImport", Test: signature.ScriptContains("mobx")},
			{Name: "mobxFunctions", Test: signature.InlineContains("makeObservable(", "makeAutoObservable(", "mobx.observable")},
		},
	},
	{
		ID: catalogue.Recoil,
		Patterns: []signature.Pattern{
			{Name: "recoilImport", Test: signature.ScriptContains("recoil")},
			{Name: "recoilFunctions", Test: signature.InlineContains("RecoilRoot", "useRecoilState(")},
		},
	},
	{
		ID: catalogue.Zustand,
		Patterns: []signature.Pattern{
			{Name: "zustandImport", Test: signature.Any(
				signature.ScriptContains("zustand"),
				signature.InlineContains(`from "zustand"`, `from 'zustand'`),
			)},
		},
	},
}
