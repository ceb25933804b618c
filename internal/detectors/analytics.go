package detectors

import (
	"regexp"

	"github.com/andybalholm/cascadia"
	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/document"
	"github.com/jonathan/stacklyzer/internal/signature"
)

var (
	uaIDRe            = regexp.MustCompile(`UA-\d{4,10}-\d{1,4}`)
	ga4IDRe           = regexp.MustCompile(`G-[A-Z0-9]{10}`)
	gtmIDRe           = regexp.MustCompile(`GTM-[A-Z0-9]{5,7}`)
	gtmContainerRe    = regexp.MustCompile(`(GTM-[A-Z0-9]{5,7})`)
	fbPixelIDRe       = regexp.MustCompile(`fbq\(\s*(?:'init'\s*,\s*'(\d{15,16})'|"init"\s*,\s*"(\d{15,16})")`)
	hotjarIDRe        = regexp.MustCompile(`hjid:(\d+)`)
	mixpanelUUIDRe    = regexp.MustCompile(`mixpanel\.init\(['"]([a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})['"]`)
	mixpanelHexRe     = regexp.MustCompile(`mixpanel\.init\(['"]([a-f0-9]{32})['"]`)
	segmentWriteKeyRe = regexp.MustCompile(`analytics\.load\(['"]([a-zA-Z0-9]{7,14})['"]`)
	matomoURLRe       = regexp.MustCompile(`u=(https?://[^/]+)`)
	plausibleFileRe   = regexp.MustCompile(`plausible.*\.js$`)

	plausibleDomainSelector = cascadia.MustCompile(`script[data-domain][src*="plausible"]`)
)

// Analytics returns the analytics and tag management detector.
func Analytics() Detector {
	return newTableDetector(catalogue.BucketAnalytics, analyticsSignatures)
}

// textMatches matches when re matches the inline script text or the raw HTML.
func textMatches(re *regexp.Regexp) signature.Test {
	return signature.Any(signature.InlineMatches(re), signature.HTMLMatches(re))
}

var analyticsSignatures = []signature.Signature{
	{
		ID: catalogue.GoogleAnalytics,
		Patterns: []signature.Pattern{
			{Name: "gaScript", Test: signature.ScriptContains("google-analytics.com/analytics.js", "google-analytics.com/ga.js")},
			{Name: "ga4Script", Test: signature.ScriptContains("googletagmanager.com/gtag/js")},
			{Name: "gaVars", Test: signature.TextContains("GoogleAnalyticsObject")},
			{Name: "gaFunctions", Test: signature.InlineContains("ga(", "_gaq.push(")},
			{Name: "gtagFunctions", Test: signature.TextContains("gtag(")},
			{Name: "gaId", Test: signature.HTMLMatches(uaIDRe)},
			{Name: "ga4Id", Test: signature.HTMLMatches(ga4IDRe)},
		},
		Derive: deriveGoogleAnalyticsVersion,
	},
	{
		ID: catalogue.GoogleTagManager,
		Patterns: []signature.Pattern{
			{Name: "gtmScript", Test: signature.ScriptContains("googletagmanager.com/gtm.js")},
			{Name: "gtmIframe", Test: signature.Exists(`iframe[src*="googletagmanager.com/ns.html"]`)},
			{Name: "gtmFunctions", Test: signature.InlineContains("dataLayer.push", "dataLayer = dataLayer || []")},
			{Name: "gtmId", Test: signature.HTMLMatches(gtmIDRe)},
		},
		Derive: func(doc *document.Document, _ signature.Result) []string {
			return versionSignal("GTM container ID", gtmContainerRe, doc.HTML)
		},
	},
	{
		ID: catalogue.FacebookPixel,
		Patterns: []signature.Pattern{
			{Name: "fbPixelScript", Test: signature.ScriptContains("connect.facebook.net", "fbevents.js")},
			{Name: "fbPixelFunctions", Test: signature.TextContains("fbq(")},
			{Name: "fbPixelInit", Test: signature.Any(
				signature.InlineContains(`fbq("init"`, `fbq('init'`),
				signature.HTMLContains(`fbq("init"`),
			)},
			{Name: "fbPixelId", Test: textMatches(fbPixelIDRe)},
		},
		Derive: func(doc *document.Document, _ signature.Result) []string {
			if id := facebookPixelID(doc); id != "" {
				return []string{"Facebook Pixel ID: " + id}
			}
			return nil
		},
	},
	{
		ID: catalogue.Hotjar,
		Patterns: []signature.Pattern{
			{Name: "hjScript", Test: signature.ScriptContains("static.hotjar.com")},
			{Name: "hjFunctions", Test: signature.Any(
				signature.InlineContains("hj("),
				signature.HTMLContains("_hjSettings"),
			)},
			{Name: "hjVars", Test: signature.InlineContains("hjSiteSettings", "hjid", "hjsv")},
			{Name: "hjId", Test: signature.Any(signature.HTMLMatches(hotjarIDRe), signature.InlineMatches(hotjarIDRe))},
		},
		Derive: func(doc *document.Document, _ signature.Result) []string {
			return versionSignal("Hotjar ID", hotjarIDRe, doc.HTML, doc.InlineScript)
		},
	},
	{
		ID: catalogue.Mixpanel,
		Patterns: []signature.Pattern{
			{Name: "mpScript", Test: signature.ScriptContains("cdn.mxpnl.com")},
			{Name: "mpFunctions", Test: signature.InlineContains("mixpanel.track", "mixpanel.identify")},
			{Name: "mpInit", Test: signature.InlineContains("mixpanel.init")},
			{Name: "mpToken", Test: signature.Any(textMatches(mixpanelUUIDRe), textMatches(mixpanelHexRe))},
		},
	},
	{
		ID: catalogue.Segment,
		Patterns: []signature.Pattern{
			{Name: "segmentScript", Test: signature.ScriptContains("cdn.segment.com")},
			{Name: "segmentFunctions", Test: signature.InlineContains("analytics.track", "analytics.identify")},
			{Name: "segmentInit", Test: signature.InlineContains("analytics.load")},
			{Name: "segmentWriteKey", Test: textMatches(segmentWriteKeyRe)},
		},
	},
	{
		ID: catalogue.Plausible,
		Patterns: []signature.Pattern{
			{Name: "plausibleScript", Test: signature.Any(
				signature.ScriptContains("plausible.io"),
				signature.ScriptMatches(plausibleFileRe),
			)},
			{Name: "plausibleData", Test: signature.All(
				signature.Exists("script[data-domain]"),
				signature.ScriptContains("plausible"),
			)},
			{Name: "plausibleTag", Test: signature.All(
				signature.HTMLContains("plausible"),
				signature.HTMLContains("data-domain"),
			)},
		},
		Derive: func(doc *document.Document, _ signature.Result) []string {
			if domain, ok := doc.Attr(plausibleDomainSelector, "data-domain"); ok && domain != "" {
				return []string{"Tracking domain: " + domain}
			}
			return nil
		},
	},
	{
		ID: catalogue.Matomo,
		Patterns: []signature.Pattern{
			{Name: "matomoScript", Test: signature.ScriptContains("matomo.js", "piwik.js", "matomo.php")},
			{Name: "matomoFunctions", Test: signature.TextContains("_paq.push")},
			{Name: "matomoVars", Test: signature.TextContains("var _paq")},
			{Name: "matomoUrl", Test: textMatches(matomoURLRe)},
		},
	},
}

// deriveGoogleAnalyticsVersion distinguishes GA4 from Universal Analytics.
func deriveGoogleAnalyticsVersion(_ *document.Document, res signature.Result) []string {
	switch {
	case res.Matched("ga4Script") || res.Matched("gtagFunctions") || res.Matched("ga4Id"):
		return []string{"Using Google Analytics 4"}
	case res.Matched("gaScript") || res.Matched("gaFunctions") || res.Matched("gaId"):
		return []string{"Using Universal Analytics (GA3)"}
	}
	return nil
}

// facebookPixelID returns the first pixel id passed to an fbq init call.
func facebookPixelID(doc *document.Document) string {
	for _, text := range []string{doc.InlineScript, doc.HTML} {
		if m := fbPixelIDRe.FindStringSubmatch(text); m != nil {
			if m[1] != "" {
				return m[1]
			}
			return m[2]
		}
	}
	return ""
}
