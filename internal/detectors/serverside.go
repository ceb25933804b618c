package detectors

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/document"
	"github.com/jonathan/stacklyzer/internal/signature"
)

var bladeEchoRe = regexp.MustCompile(`\{\{\s*\$\w+\s*\}\}`)

// headerTest adapts a predicate over response headers to a document test.
func headerTest(h http.Header, fn func(http.Header) bool) signature.Test {
	return func(*document.Document) bool {
		return fn(h)
	}
}

func headerPresent(name string) func(http.Header) bool {
	return func(h http.Header) bool {
		return h.Get(name) != ""
	}
}

func headerEquals(name, value string) func(http.Header) bool {
	return func(h http.Header) bool {
		return h.Get(name) == value
	}
}

// headerContainsFold matches when the header value contains sub, ignoring case.
func headerContainsFold(name, sub string) func(http.Header) bool {
	sub = strings.ToLower(sub)
	return func(h http.Header) bool {
		return strings.Contains(strings.ToLower(h.Get(name)), sub)
	}
}

func cookieContains(subs ...string) func(http.Header) bool {
	return func(h http.Header) bool {
		for _, cookie := range h.Values("Set-Cookie") {
			for _, sub := range subs {
				if strings.Contains(cookie, sub) {
					return true
				}
			}
		}
		return false
	}
}

// ServerSide returns the server-side technology detector for a response
// with the given headers. Most evidence comes from headers; Laravel also
// inspects the page for leaked framework output.
func ServerSide(headers http.Header) Detector {
	if headers == nil {
		headers = http.Header{}
	}
	return newTableDetector(catalogue.BucketServerSide, serverSideSignatures(headers))
}

func serverSideSignatures(h http.Header) []signature.Signature {
	poweredBy := func(sub string) signature.Test {
		return headerTest(h, headerContainsFold("X-Powered-By", sub))
	}

	return []signature.Signature{
		{
			ID: catalogue.Server,
			Patterns: []signature.Pattern{
				{Name: "serverHeader", Signal: "Server header: " + h.Get("Server"), Test: headerTest(h, headerPresent("Server"))},
			},
		},
		{
			ID: catalogue.PHP,
			Patterns: []signature.Pattern{
				{Name: "poweredByPHP", Signal: `X-Powered-By header contains "PHP"`, Test: poweredBy("php")},
			},
		},
		{
			ID: catalogue.ASPNet,
			Patterns: []signature.Pattern{
				{Name: "aspNetVersion", Signal: "X-AspNet-Version header present", Test: headerTest(h, headerPresent("X-AspNet-Version"))},
				{Name: "poweredByASPNet", Signal: `X-Powered-By header contains "ASP.NET"`, Test: poweredBy("asp.net")},
			},
		},
		{
			ID: catalogue.Express,
			Patterns: []signature.Pattern{
				{Name: "poweredByExpress", Signal: `X-Powered-By header contains "Express"`, Test: poweredBy("express")},
			},
		},
		{
			ID: catalogue.NodeJS,
			Patterns: []signature.Pattern{
				{Name: "poweredByNode", Signal: `X-Powered-By header contains "Node.js"`, Test: poweredBy("nodejs")},
			},
		},
		{
			ID: catalogue.Django,
			Patterns: []signature.Pattern{
				{Name: "frameworkDjango", Signal: `X-Framework header contains "Django"`, Test: headerTest(h, headerContainsFold("X-Framework", "django"))},
			},
		},
		{
			ID: catalogue.Rails,
			Patterns: []signature.Pattern{
				{Name: "poweredByPassenger", Signal: `X-Powered-By header contains "Phusion Passenger"`, Test: poweredBy("phusion passenger")},
			},
		},
		{
			ID: catalogue.Flask,
			Patterns: []signature.Pattern{
				{Name: "serverWerkzeug", Signal: `Server header contains "Werkzeug"`, Test: headerTest(h, headerContainsFold("Server", "werkzeug"))},
			},
		},
		{
			ID: catalogue.FastAPI,
			Patterns: []signature.Pattern{
				{Name: "serverUvicorn", Signal: `Server header contains "uvicorn"`, Test: headerTest(h, headerContainsFold("Server", "uvicorn"))},
			},
		},
		{
			ID: catalogue.Spring,
			Patterns: []signature.Pattern{
				{Name: "applicationContext", Signal: "X-Application-Context header present", Test: headerTest(h, headerPresent("X-Application-Context"))},
			},
		},
		{
			ID: catalogue.Laravel,
			Patterns: []signature.Pattern{
				{Name: "laravelCookies", Signal: "Laravel-specific cookies detected", Test: headerTest(h, cookieContains("laravel_session", "XSRF-TOKEN"))},
				{Name: "laravelCSRF", Signal: "Laravel CSRF token meta tag detected", Test: signature.All(
					signature.HTMLContains("csrf-token"),
					signature.HTMLContains("Laravel"),
				)},
				{Name: "laravelCode", Signal: "Laravel-specific code patterns detected", Test: signature.HTMLContains(`Illuminate\`, "laravel_session")},
				{Name: "laravelErrorPage", Signal: "Laravel error page or debug information detected", Test: signature.Any(
					signature.HTMLContains("laravel", "SymfonyDisplayer"),
					signature.All(signature.HTMLContains("Whoops!"), signature.HTMLContains(`Illuminate\`)),
				)},
				{Name: "laravelBlade", Signal: "Laravel Blade template syntax detected", Test: signature.HTMLMatches(bladeEchoRe)},
				{Name: "laravelVite", Signal: "Laravel Vite integration detected", Test: signature.HTMLContains("@vite", "vite/assets")},
				{Name: "laravelVapor", Signal: "Laravel Vapor headers detected", Test: headerTest(h, func(h http.Header) bool {
					return h.Get("X-Vapor-Base-Path") != "" || h.Get("X-Vapor-Source-Version") != ""
				})},
			},
		},
		{
			ID: catalogue.Cloudflare,
			Patterns: []signature.Pattern{
				{Name: "cfRay", Signal: "CF-Ray header present", Test: headerTest(h, headerPresent("CF-Ray"))},
				{Name: "serverCloudflare", Signal: `Server header is "cloudflare"`, Test: headerTest(h, headerEquals("Server", "cloudflare"))},
			},
		},
		{
			ID: catalogue.Vercel,
			Patterns: []signature.Pattern{
				{Name: "vercelID", Signal: "X-Vercel-Id header present", Test: headerTest(h, headerPresent("X-Vercel-Id"))},
				{Name: "serverVercel", Signal: `Server header is "Vercel"`, Test: headerTest(h, headerEquals("Server", "Vercel"))},
			},
		},
		{
			ID: catalogue.Netlify,
			Patterns: []signature.Pattern{
				{Name: "netlifyRequestID", Signal: "X-Nf-Request-Id header present", Test: headerTest(h, headerPresent("X-Nf-Request-Id"))},
				{Name: "serverNetlify", Signal: `Server header is "Netlify"`, Test: headerTest(h, headerEquals("Server", "Netlify"))},
			},
		},
	}
}
