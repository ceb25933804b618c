package detectors

import (
	"regexp"
	"strings"

	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/document"
	"github.com/jonathan/stacklyzer/internal/signature"
)

var (
	wordpressVersionRe  = regexp.MustCompile(`WordPress ([0-9.]+)`)
	wordpressVerParamRe = regexp.MustCompile(`ver=([0-9.]+)`)
	drupalVersionRe     = regexp.MustCompile(`Drupal ([0-9.]+)`)
	joomlaVersionRe     = regexp.MustCompile(`Joomla! ([0-9.]+)`)
	shopifyShopRe       = regexp.MustCompile(`Shopify\.shop\s*=\s*['"]([^'"]+)['"]`)
	wixComponentIDRe    = regexp.MustCompile(`id="(comp-[a-zA-Z0-9]+)"`)
	contentfulSpaceRe   = regexp.MustCompile(`contentful\.createClient\(\{\s*space:\s*['"]([^'"]+)`)
	sanityProjectIDRe   = regexp.MustCompile(`projectId:\s*['"]([^'"]+)['"]`)
	strapiUploadsRe     = regexp.MustCompile(`/uploads/[\w-]+_[0-9a-f]{10}\.\w+`)
)

// wordpressAssets maps theme and plugin path fragments to their signals.
var wordpressAssets = []struct{ fragment, signal string }{
	{"themes/avada", "Using Avada theme"},
	{"themes/divi", "Using Divi theme"},
	{"themes/astra", "Using Astra theme"},
	{"plugins/woocommerce", "Using WooCommerce plugin"},
	{"plugins/elementor", "Using Elementor page builder"},
	{"plugins/wp-rocket", "Using WP Rocket plugin"},
	{"plugins/yoast-seo", "Using Yoast SEO plugin"},
}

// CMS returns the content management system detector.
func CMS() Detector {
	return newTableDetector(catalogue.BucketCMS, cmsSignatures)
}

// generatorContains matches when the generator meta tag mentions sub.
func generatorContains(sub string) signature.Test {
	return func(doc *document.Document) bool {
		return strings.Contains(doc.Generator(), sub)
	}
}

var cmsSignatures = []signature.Signature{
	{
		ID: catalogue.WordPress,
		Patterns: []signature.Pattern{
			{Name: "wpContent", Test: signature.HTMLContains("wp-content")},
			{Name: "wpIncludes", Test: signature.HTMLContains("wp-includes")},
			{Name: "wpGenerator", Test: signature.Exists(`meta[name="generator"][content*="WordPress"]`)},
			{Name: "wpScripts", Test: signature.ScriptContains("wp-", "/wp-content/", "/wp-includes/")},
			{Name: "wpFunctions", Test: signature.InlineContains("wp.", "wpApiSettings", "wp_")},
			{Name: "wpClasses", Test: signature.Exists(`[class*="wp-"]`)},
			{Name: "wpComments", Test: signature.HTMLContains(
				"<!-- This site is optimized with the Yoast SEO plugin",
				"<!--Cached using WP-Optimize",
			)},
		},
		Derive: deriveWordPress,
	},
	{
		ID: catalogue.Drupal,
		Patterns: []signature.Pattern{
			{Name: "drupalKeyword", Test: signature.HTMLContains("drupal")},
			{Name: "drupalPath", Test: signature.HTMLContains("/sites/default/files/")},
			{Name: "drupalGenerator", Test: generatorContains("Drupal")},
			{Name: "drupalBehaviors", Test: signature.InlineContains("Drupal.behaviors", "drupalSettings")},
			{Name: "drupalClasses", Test: signature.Exists(`[class*="drupal-"]`, `[class*="js-drupal-"]`)},
			{Name: "drupalSettings", Test: signature.TextContains("drupalSettings")},
		},
		Derive: func(doc *document.Document, _ signature.Result) []string {
			return versionSignal("Drupal version", drupalVersionRe, doc.HTML, doc.Generator())
		},
	},
	{
		ID: catalogue.Joomla,
		Patterns: []signature.Pattern{
			{Name: "joomlaKeyword", Test: signature.HTMLContains("joomla")},
			{Name: "joomlaPath", Test: signature.HTMLContains("/media/jui/", "/media/system/")},
			{Name: "joomlaGenerator", Test: generatorContains("Joomla")},
			{Name: "joomlaVariable", Test: signature.Any(
				signature.HTMLContains("var joomla"),
				signature.InlineContains("Joomla."),
			)},
			{Name: "joomlaClasses", Test: signature.Exists(`[class*="joomla"]`)},
		},
		Derive: func(doc *document.Document, _ signature.Result) []string {
			return versionSignal("Joomla version", joomlaVersionRe, doc.Generator())
		},
	},
	{
		ID: catalogue.Shopify,
		Patterns: []signature.Pattern{
			{Name: "shopifyDomain", Test: signature.HTMLContains("cdn.shopify.com", ".myshopify.com")},
			{Name: "shopifyVariable", Test: signature.TextContains("Shopify.")},
			{Name: "shopifyGenerator", Test: generatorContains("Shopify")},
			{Name: "shopifyCheckout", Test: signature.All(
				signature.HTMLContains("/checkout."),
				signature.HTMLContains("shopify"),
			)},
			{Name: "shopifyApi", Test: signature.InlineContains("shopify.api")},
		},
		Derive: func(doc *document.Document, _ signature.Result) []string {
			return versionSignal("Shopify shop name", shopifyShopRe, doc.InlineScript, doc.HTML)
		},
	},
	{
		ID: catalogue.Wix,
		Patterns: []signature.Pattern{
			{Name: "wixDomain", Test: signature.HTMLContains("wix.com", "wixsite.com")},
			{Name: "wixMeta", Test: signature.Exists(`meta[http-equiv="X-Wix-Meta-Site-Id"]`)},
			{Name: "wixVariables", Test: signature.TextContains("_wixCssCustom", "wixBiSession", "wixPerformanceMeasurements")},
			{Name: "wixServices", Test: signature.HTMLContains("static.wixstatic.com", "editor.wix.com")},
			{Name: "wixIds", Test: signature.HTMLMatches(wixComponentIDRe)},
		},
	},
	{
		ID: catalogue.Squarespace,
		Patterns: []signature.Pattern{
			{Name: "ssKeyword", Test: signature.HTMLContains("squarespace")},
			{Name: "ssContext", Test: signature.TextContains("Static.SQUARESPACE_CONTEXT")},
			{Name: "ssClasses", Test: signature.Exists(`[class*="sqs-"]`)},
			{Name: "ssScripts", Test: signature.ScriptContains("squarespace")},
			{Name: "ssGenerator", Test: generatorContains("Squarespace")},
		},
	},
	{
		ID: catalogue.Ghost,
		Patterns: []signature.Pattern{
			{Name: "ghostKeyword", Test: signature.All(
				signature.HTMLContains("ghost"),
				signature.Not(signature.HTMLContains("ghostery")),
			)},
			{Name: "ghostGenerator", Test: generatorContains("Ghost")},
			{Name: "ghostData", Test: signature.Any(
				signature.HTMLContains("ghost-url"),
				signature.Exists("[data-ghost]", `link[rel="dns-prefetch"][href*="ghost.org"]`),
			)},
			{Name: "ghostClasses", Test: signature.Exists(`[class*="gh-"]`)},
			{Name: "ghostPost", Test: signature.HTMLContains("ghost/api/v")},
		},
	},
	{
		ID: catalogue.Contentful,
		Patterns: []signature.Pattern{
			{Name: "contentfulKeyword", Test: signature.HTMLContains("contentful")},
			{Name: "contentfulId", Test: signature.MetaPresent("contentful_id")},
			{Name: "contentfulApi", Test: signature.InlineContains("contentful", "CONTENTFUL_")},
			{Name: "contentfulSpace", Test: signature.InlineMatches(contentfulSpaceRe)},
		},
	},
	{
		ID: catalogue.Sanity,
		Patterns: []signature.Pattern{
			{Name: "sanityKeyword", Test: signature.HTMLContains("sanity.io", "sanity-content")},
			{Name: "sanityId", Test: signature.All(
				signature.HTMLMatches(sanityProjectIDRe),
				signature.HTMLContains("sanity"),
			)},
			{Name: "sanityApi", Test: signature.InlineContains("sanityClient", "@sanity/client")},
			{Name: "sanityScript", Test: signature.ScriptContains("sanity.io", "sanityClient")},
		},
	},
	{
		ID: catalogue.Strapi,
		Patterns: []signature.Pattern{
			{Name: "strapiGenerator", Test: generatorContains("Strapi")},
			{Name: "strapiScript", Test: signature.ScriptContains("strapi")},
			{Name: "strapiApi", Test: signature.InlineContains("STRAPI_URL", "strapi.io", "/api/strapi")},
			{Name: "strapiUploads", Test: signature.All(
				signature.HTMLMatches(strapiUploadsRe),
				signature.HTMLContains("strapi"),
			)},
		},
	},
}

// deriveWordPress reports the core version and every recognised theme or
// plugin. Theme and plugin fragments are checked independently.
func deriveWordPress(doc *document.Document, _ signature.Result) []string {
	var signals []string
	if v := signature.FirstSubmatch(wordpressVersionRe, doc.Generator()); v != "" {
		signals = append(signals, "WordPress version: "+v)
	}
	if v := signature.FirstSubmatch(wordpressVerParamRe, doc.HTML); v != "" {
		signals = append(signals, "Possible WordPress version: "+v)
	}
	for _, asset := range wordpressAssets {
		if strings.Contains(doc.HTML, asset.fragment) {
			signals = append(signals, asset.signal)
		}
	}
	return signals
}
