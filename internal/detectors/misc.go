package detectors

import (
	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/document"
	"github.com/jonathan/stacklyzer/internal/signature"
)

// Misc returns the detector for web platform features and third-party
// services that do not belong to another category.
func Misc() Detector {
	return newTableDetector(catalogue.BucketMisc, miscSignatures)
}

// hasScripts matches pages that load at least one external script.
func hasScripts(doc *document.Document) bool {
	return len(doc.Scripts) > 0
}

var miscSignatures = []signature.Signature{
	{
		ID: catalogue.PWA,
		Patterns: []signature.Pattern{
			{Name: "manifest", Signal: "Web app manifest detected", Test: signature.LinkRel("manifest")},
			{Name: "serviceWorker", Signal: "Service worker registration detected", Test: signature.HTMLContains("serviceWorker")},
		},
	},
	{
		ID: catalogue.TypeScript,
		Patterns: []signature.Pattern{
			{Name: "typescript", Signal: "TypeScript compilation artifacts detected", Test: signature.All(
				hasScripts,
				signature.Any(
					signature.ScriptContains(".ts", "typescript"),
					signature.HTMLContains("__extends", "__assign", "__awaiter"),
				),
			)},
		},
	},
	{
		ID: catalogue.GraphQL,
		Patterns: []signature.Pattern{
			{Name: "graphql", Signal: "GraphQL/Apollo client detected", Test: signature.Any(
				signature.HTMLContains("graphql", "ApolloClient", "gql`"),
				signature.ScriptContains("graphql", "apollo"),
			)},
		},
	},
	{
		ID: catalogue.Web3,
		Patterns: []signature.Pattern{
			{Name: "web3", Signal: "Web3 or blockchain integration detected", Test: signature.Any(
				signature.HTMLContains("web3", "ethereum", "metamask"),
				signature.ScriptContains("web3", "ethers", "blockchain"),
			)},
		},
	},
	{
		ID: catalogue.WebAssembly,
		Patterns: []signature.Pattern{
			{Name: "webassembly", Signal: "WebAssembly usage detected", Test: signature.Any(
				signature.HTMLContains("WebAssembly"),
				signature.ScriptContains("wasm"),
			)},
		},
	},
	{
		ID: catalogue.FontAwesome,
		Patterns: []signature.Pattern{
			{Name: "fontAwesome", Signal: "Font Awesome icons detected", Test: signature.Any(
				signature.Exists(`[class*="fa-"]`),
				signature.HTMLContains("fontawesome"),
				signature.LinkHrefContains("font-awesome", "fontawesome"),
			)},
		},
	},
	{
		ID: catalogue.Stripe,
		Patterns: []signature.Pattern{
			{Name: "stripeScript", Signal: "Stripe.js loaded", Test: signature.ScriptContains("js.stripe.com")},
			{Name: "stripeInit", Signal: "Stripe client initialised", Test: signature.InlineContains("Stripe(", "loadStripe(")},
		},
	},
	{
		ID: catalogue.SocketIO,
		Patterns: []signature.Pattern{
			{Name: "socketioScript", Signal: "Socket.IO client loaded", Test: signature.ScriptContains("socket.io")},
			{Name: "socketioConnect", Signal: "Socket.IO connection code detected", Test: signature.InlineContains("io.connect(")},
		},
	},
	{
		ID: catalogue.Cloudinary,
		Patterns: []signature.Pattern{
			{Name: "cloudinaryAssets", Signal: "Images served from Cloudinary", Test: signature.HTMLContains("res.cloudinary.com")},
			{Name: "cloudinaryWidget", Signal: "Cloudinary widget loaded", Test: signature.ScriptContains("widget.cloudinary.com", "cloudinary-core")},
		},
	},
	{
		ID: catalogue.Imgix,
		Patterns: []signature.Pattern{
			{Name: "imgixAssets", Signal: "Images served from imgix", Test: signature.HTMLContains(".imgix.net")},
		},
	},
	{
		ID: catalogue.Auth0,
		Patterns: []signature.Pattern{
			{Name: "auth0Script", Signal: "Auth0 SDK loaded", Test: signature.ScriptContains("cdn.auth0.com", "auth0-spa-js", "auth0.min.js")},
			{Name: "auth0Init", Signal: "Auth0 client initialised", Test: signature.InlineContains("createAuth0Client", "new auth0.WebAuth")},
		},
	},
	{
		ID: catalogue.Firebase,
		Patterns: []signature.Pattern{
			{Name: "firebaseScript", Signal: "Firebase SDK loaded", Test: signature.ScriptContains("firebasejs", "firebase-app", "/__/firebase/")},
			{Name: "firebaseInit", Signal: "Firebase app initialised", Test: signature.InlineContains("firebase.initializeApp")},
			{Name: "firebaseHosting", Signal: "Firebase hosting domain referenced", Test: signature.HTMLContains(".firebaseapp.com", ".web.app/")},
		},
	},
	{
		ID: catalogue.Supabase,
		Patterns: []signature.Pattern{
			{Name: "supabaseScript", Signal: "Supabase client loaded", Test: signature.ScriptContains("supabase-js", "@supabase/")},
			{Name: "supabaseProject", Signal: "Supabase project URL referenced", Test: signature.HTMLContains(".supabase.co")},
		},
	},
}
