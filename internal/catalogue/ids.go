package catalogue

// Frameworks
const (
	React   TechnologyID = "react"
	Vue     TechnologyID = "vue"
	Angular TechnologyID = "angular"
	NextJS  TechnologyID = "nextjs"
	NuxtJS  TechnologyID = "nuxtjs"
	Svelte  TechnologyID = "svelte"
	Gatsby  TechnologyID = "gatsby"
	Remix   TechnologyID = "remix"
	Alpine  TechnologyID = "alpine"
	Preact  TechnologyID = "preact"
	Ember   TechnologyID = "ember"
	SolidJS TechnologyID = "solidjs"
	Lit     TechnologyID = "lit"
)

// Libraries
const (
	JQuery       TechnologyID = "jquery"
	Bootstrap    TechnologyID = "bootstrap"
	Lodash       TechnologyID = "lodash"
	Tailwind     TechnologyID = "tailwind"
	MaterialUI   TechnologyID = "materialUI"
	AntDesign    TechnologyID = "antDesign"
	ChakraUI     TechnologyID = "chakraUI"
	Bulma        TechnologyID = "bulma"
	Foundation   TechnologyID = "foundation"
	Semantic     TechnologyID = "semantic"
	GSAP         TechnologyID = "gsap"
	AnimeJS      TechnologyID = "animejs"
	FramerMotion TechnologyID = "framerMotion"
	Redux        TechnologyID = "redux"
	MobX         TechnologyID = "mobx"
	Recoil       TechnologyID = "recoil"
	Zustand      TechnologyID = "zustand"
)

// Server side. Server has no catalogue entry and is reported with the generic definition.
const (
	Server     TechnologyID = "server"
	PHP        TechnologyID = "php"
	ASPNet     TechnologyID = "aspnet"
	Express    TechnologyID = "express"
	NodeJS     TechnologyID = "nodejs"
	Django     TechnologyID = "django"
	Rails      TechnologyID = "rails"
	Laravel    TechnologyID = "laravel"
	Flask      TechnologyID = "flask"
	FastAPI    TechnologyID = "fastapi"
	Spring     TechnologyID = "spring"
	NestJS     TechnologyID = "nestjs"
	Cloudflare TechnologyID = "cloudflare"
	Vercel     TechnologyID = "vercel"
	Netlify    TechnologyID = "netlify"
)

// Analytics
const (
	GoogleAnalytics  TechnologyID = "googleAnalytics"
	GoogleTagManager TechnologyID = "googleTagManager"
	FacebookPixel    TechnologyID = "facebookPixel"
	Hotjar           TechnologyID = "hotjar"
	Mixpanel         TechnologyID = "mixpanel"
	Segment          TechnologyID = "segment"
	Plausible        TechnologyID = "plausible"
	Matomo           TechnologyID = "matomo"
)

// CMS
const (
	WordPress   TechnologyID = "wordpress"
	Drupal      TechnologyID = "drupal"
	Joomla      TechnologyID = "joomla"
	Shopify     TechnologyID = "shopify"
	Wix         TechnologyID = "wix"
	Squarespace TechnologyID = "squarespace"
	Ghost       TechnologyID = "ghost"
	Contentful  TechnologyID = "contentful"
	Sanity      TechnologyID = "sanity"
	Strapi      TechnologyID = "strapi"
)

// E-commerce
const (
	WooCommerce TechnologyID = "woocommerce"
	Magento     TechnologyID = "magento"
	BigCommerce TechnologyID = "bigcommerce"
	PrestaShop  TechnologyID = "prestashop"
	OpenCart    TechnologyID = "opencart"
)

// Build tools
const (
	Webpack TechnologyID = "webpack"
	Vite    TechnologyID = "vite"
	Parcel  TechnologyID = "parcel"
	Babel   TechnologyID = "babel"
)

// Misc
const (
	PWA           TechnologyID = "pwa"
	GraphQL       TechnologyID = "graphql"
	Web3          TechnologyID = "web3"
	WebAssembly   TechnologyID = "webassembly"
	TypeScript    TechnologyID = "typescript"
	ServiceWorker TechnologyID = "serviceWorker"
	FontAwesome   TechnologyID = "fontAwesome"
	Stripe        TechnologyID = "stripe"
	SocketIO      TechnologyID = "socketio"
	Cloudinary    TechnologyID = "cloudinary"
	Imgix         TechnologyID = "imgix"
	Auth0         TechnologyID = "auth0"
	Firebase      TechnologyID = "firebase"
	Supabase      TechnologyID = "supabase"
)
