package catalogue

var definitions = map[TechnologyID]Definition{
	// Frameworks
	React: {
		Name:        "React",
		Description: "A JavaScript library for building user interfaces maintained by Facebook and a community of developers",
		Category:    "Frontend Framework",
		Website:     "https://reactjs.org",
		DevTools:    []string{"React DevTools"},
	},
	Vue: {
		Name:        "Vue.js",
		Description: "A progressive JavaScript framework for building user interfaces, designed to be incrementally adoptable",
		Category:    "Frontend Framework",
		Website:     "https://vuejs.org",
		DevTools:    []string{"Vue DevTools"},
	},
	Angular: {
		Name:        "Angular",
		Description: "A platform and framework for building single-page client applications using HTML and TypeScript",
		Category:    "Frontend Framework",
		Website:     "https://angular.io",
		DevTools:    []string{"Angular DevTools"},
	},
	NextJS: {
		Name:        "Next.js",
		Description: "A React framework for production that enables server-side rendering and static site generation",
		Category:    "Frontend Framework",
		Website:     "https://nextjs.org",
		Features:    []string{"Server-side rendering", "Static site generation", "API routes"},
	},
	NuxtJS: {
		Name:        "Nuxt.js",
		Description: "A Vue.js framework that offers server-side rendering, static site generation, and more",
		Category:    "Frontend Framework",
		Website:     "https://nuxtjs.org",
		Features:    []string{"Server-side rendering", "Static site generation", "Auto-routing"},
	},
	Svelte: {
		Name:        "Svelte",
		Description: "A radical new approach to building user interfaces that compiles to highly efficient vanilla JavaScript",
		Category:    "Frontend Framework",
		Website:     "https://svelte.dev",
		Features:    []string{"No virtual DOM", "Truly reactive", "Less code"},
	},
	Gatsby: {
		Name:        "Gatsby",
		Description: "A React-based open source framework with performance, scalability and security built-in",
		Category:    "Frontend Framework",
		Website:     "https://www.gatsbyjs.com",
		Features:    []string{"GraphQL data layer", "Image optimization", "Static site generation"},
	},
	Remix: {
		Name:        "Remix",
		Description: "A full stack web framework focused on web standards and modern web app UX",
		Category:    "Frontend Framework",
		Website:     "https://remix.run",
		Features:    []string{"Nested routing", "Server-side rendering", "Progressive enhancement"},
	},
	Alpine: {
		Name:        "Alpine.js",
		Description: "A minimal JavaScript framework for composing behavior directly in your markup",
		Category:    "Frontend Framework",
		Website:     "https://alpinejs.dev",
	},
	Ember: {
		Name:        "Ember.js",
		Description: "A framework for ambitious web developers that emphasizes convention over configuration",
		Category:    "Frontend Framework",
		Website:     "https://emberjs.com",
	},
	Preact: {
		Name:        "Preact",
		Description: "A fast 3kB alternative to React with the same modern API",
		Category:    "Frontend Framework",
		Website:     "https://preactjs.com",
	},
	SolidJS: {
		Name:        "SolidJS",
		Description: "A declarative, efficient, and flexible JavaScript library for building user interfaces",
		Category:    "Frontend Framework",
		Website:     "https://www.solidjs.com",
	},
	Lit: {
		Name:        "Lit",
		Description: "A simple library for building fast, lightweight web components",
		Category:    "Web Components",
		Website:     "https://lit.dev",
	},

	// Libraries
	JQuery: {
		Name:        "jQuery",
		Description: "A fast, small, and feature-rich JavaScript library that simplifies HTML document traversal and manipulation",
		Category:    "JavaScript Library",
		Website:     "https://jquery.com",
	},
	Bootstrap: {
		Name:        "Bootstrap",
		Description: "A popular CSS framework directed at responsive, mobile-first front-end web development",
		Category:    "UI Framework",
		Website:     "https://getbootstrap.com",
	},
	Lodash: {
		Name:        "Lodash/Underscore",
		Description: "A JavaScript library that provides utility functions for common programming tasks",
		Category:    "JavaScript Utility Library",
		Website:     "https://lodash.com",
	},
	Tailwind: {
		Name:        "Tailwind CSS",
		Description: "A utility-first CSS framework for rapidly building custom user interfaces",
		Category:    "CSS Framework",
		Website:     "https://tailwindcss.com",
	},
	MaterialUI: {
		Name:        "Material UI",
		Description: "A popular React UI framework implementing Google's Material Design",
		Category:    "UI Framework",
		Website:     "https://mui.com",
	},
	AntDesign: {
		Name:        "Ant Design",
		Description: "A design system for enterprise-level products with a set of high-quality React components",
		Category:    "UI Framework",
		Website:     "https://ant.design",
	},
	ChakraUI: {
		Name:        "Chakra UI",
		Description: "A simple, modular and accessible component library for React applications",
		Category:    "UI Framework",
		Website:     "https://chakra-ui.com",
	},
	Bulma: {
		Name:        "Bulma",
		Description: "A free, open source CSS framework based on Flexbox",
		Category:    "CSS Framework",
		Website:     "https://bulma.io",
	},
	Foundation: {
		Name:        "Foundation",
		Description: "A responsive front-end framework that makes it easy to design responsive websites",
		Category:    "CSS Framework",
		Website:     "https://get.foundation",
	},
	Semantic: {
		Name:        "Semantic UI",
		Description: "A development framework that helps create beautiful, responsive layouts using human-friendly HTML",
		Category:    "UI Framework",
		Website:     "https://semantic-ui.com",
	},

	// Animation Libraries
	GSAP: {
		Name:        "GSAP (GreenSock Animation Platform)",
		Description: "A robust JavaScript animation library for creating high-performance animations",
		Category:    "Animation Library",
		Website:     "https://greensock.com/gsap",
	},
	AnimeJS: {
		Name:        "Anime.js",
		Description: "A lightweight JavaScript animation library",
		Category:    "Animation Library",
		Website:     "https://animejs.com",
	},
	FramerMotion: {
		Name:        "Framer Motion",
		Description: "A production-ready motion library for React",
		Category:    "Animation Library",
		Website:     "https://www.framer.com/motion",
	},

	// State Management
	Redux: {
		Name:        "Redux",
		Description: "A predictable state container for JavaScript apps",
		Category:    "State Management",
		Website:     "https://redux.js.org",
	},
	MobX: {
		Name:        "MobX",
		Description: "A simple, scalable state management library",
		Category:    "State Management",
		Website:     "https://mobx.js.org",
	},
	Recoil: {
		Name:        "Recoil",
		Description: "A state management library for React applications",
		Category:    "State Management",
		Website:     "https://recoiljs.org",
	},
	Zustand: {
		Name:        "Zustand",
		Description: "A small, fast and scalable bearbones state-management solution",
		Category:    "State Management",
		Website:     "https://zustand-demo.pmnd.rs",
	},

	// Server-side
	PHP: {
		Name:        "PHP",
		Description: "A popular general-purpose scripting language that is especially suited to web development",
		Category:    "Backend Language",
		Website:     "https://www.php.net",
	},
	ASPNet: {
		Name:        "ASP.NET",
		Description: "A web framework developed by Microsoft for building modern web apps and services",
		Category:    "Backend Framework",
		Website:     "https://dotnet.microsoft.com/apps/aspnet",
	},
	Express: {
		Name:        "Express",
		Description: "A minimal and flexible Node.js web application framework that provides a robust set of features",
		Category:    "Backend Framework",
		Website:     "https://expressjs.com",
	},
	NodeJS: {
		Name:        "Node.js",
		Description: "A JavaScript runtime built on Chrome's V8 JavaScript engine for building scalable network applications",
		Category:    "Runtime Environment",
		Website:     "https://nodejs.org",
	},
	Django: {
		Name:        "Django",
		Description: "A high-level Python web framework that encourages rapid development and clean, pragmatic design",
		Category:    "Backend Framework",
		Website:     "https://www.djangoproject.com",
	},
	Rails: {
		Name:        "Ruby on Rails",
		Description: "A web application framework that includes everything needed to create database-backed web apps",
		Category:    "Backend Framework",
		Website:     "https://rubyonrails.org",
	},
	Laravel: {
		Name:        "Laravel",
		Description: "A PHP web application framework with expressive, elegant syntax",
		Category:    "Backend Framework",
		Website:     "https://laravel.com",
	},
	Flask: {
		Name:        "Flask",
		Description: "A micro web framework written in Python",
		Category:    "Backend Framework",
		Website:     "https://flask.palletsprojects.com",
	},
	FastAPI: {
		Name:        "FastAPI",
		Description: "A modern, fast web framework for building APIs with Python",
		Category:    "Backend Framework",
		Website:     "https://fastapi.tiangolo.com",
	},
	Spring: {
		Name:        "Spring",
		Description: "An application framework and inversion of control container for Java",
		Category:    "Backend Framework",
		Website:     "https://spring.io",
	},
	NestJS: {
		Name:        "NestJS",
		Description: "A progressive Node.js framework for building efficient and scalable server-side applications",
		Category:    "Backend Framework",
		Website:     "https://nestjs.com",
	},
	Cloudflare: {
		Name:        "Cloudflare",
		Description: "A content delivery network, DDoS mitigation, Internet security service, and distributed domain name server",
		Category:    "Infrastructure & CDN",
		Website:     "https://www.cloudflare.com",
	},
	Vercel: {
		Name:        "Vercel",
		Description: "A platform for frontend frameworks and static sites, providing serverless functions and global CDN",
		Category:    "Hosting Platform",
		Website:     "https://vercel.com",
	},
	Netlify: {
		Name:        "Netlify",
		Description: "A platform for modern web development, offering CI/CD, serverless functions, and global deployment",
		Category:    "Hosting Platform",
		Website:     "https://www.netlify.com",
	},

	// Analytics
	GoogleAnalytics: {
		Name:        "Google Analytics",
		Description: "A web analytics service offered by Google that tracks and reports website traffic",
		Category:    "Analytics Tool",
		Website:     "https://analytics.google.com",
	},
	GoogleTagManager: {
		Name:        "Google Tag Manager",
		Description: "A tag management system that allows you to quickly update tags and code snippets on your website",
		Category:    "Tag Management",
		Website:     "https://tagmanager.google.com",
	},
	FacebookPixel: {
		Name:        "Facebook Pixel",
		Description: "An analytics tool that helps you measure the effectiveness of your advertising",
		Category:    "Analytics Tool",
		Website:     "https://www.facebook.com/business/tools/meta-pixel",
	},
	Hotjar: {
		Name:        "Hotjar",
		Description: "An analytics and feedback tool that reveals user behavior and feedback through heatmaps and recordings",
		Category:    "User Behavior Analytics",
		Website:     "https://www.hotjar.com",
	},
	Mixpanel: {
		Name:        "Mixpanel",
		Description: "An advanced analytics platform for mobile and web that helps businesses understand user behavior",
		Category:    "Analytics Tool",
		Website:     "https://mixpanel.com",
	},
	Segment: {
		Name:        "Segment",
		Description: "A customer data platform that helps you collect, clean, and control your customer data",
		Category:    "Data Integration Platform",
		Website:     "https://segment.com",
	},
	Plausible: {
		Name:        "Plausible Analytics",
		Description: "A lightweight and open-source website analytics tool",
		Category:    "Analytics Tool",
		Website:     "https://plausible.io",
	},
	Matomo: {
		Name:        "Matomo",
		Description: "An open-source analytics platform formerly known as Piwik",
		Category:    "Analytics Tool",
		Website:     "https://matomo.org",
	},

	// CMS
	WordPress: {
		Name:        "WordPress",
		Description: "The world's most popular content management system used by more than 40% of all websites",
		Category:    "Content Management System",
		Website:     "https://wordpress.org",
	},
	Drupal: {
		Name:        "Drupal",
		Description: "A content management system famous for its flexibility and scalability for complex websites",
		Category:    "Content Management System",
		Website:     "https://www.drupal.org",
	},
	Joomla: {
		Name:        "Joomla",
		Description: "A free and open-source content management system for publishing web content",
		Category:    "Content Management System",
		Website:     "https://www.joomla.org",
	},
	Shopify: {
		Name:        "Shopify",
		Description: "An e-commerce platform for online stores and retail point-of-sale systems",
		Category:    "E-commerce Platform",
		Website:     "https://www.shopify.com",
	},
	Wix: {
		Name:        "Wix",
		Description: "A cloud-based website builder platform for creating HTML5 websites and mobile sites",
		Category:    "Website Builder",
		Website:     "https://www.wix.com",
	},
	Squarespace: {
		Name:        "Squarespace",
		Description: "An all-in-one website builder and hosting service with designer templates",
		Category:    "Website Builder",
		Website:     "https://www.squarespace.com",
	},
	Ghost: {
		Name:        "Ghost",
		Description: "A free and open source blogging platform designed to simplify the process of online publishing",
		Category:    "Content Management System",
		Website:     "https://ghost.org",
	},
	Contentful: {
		Name:        "Contentful",
		Description: "A headless content management system that enables managing content and publishing it to any platform",
		Category:    "Headless CMS",
		Website:     "https://www.contentful.com",
	},
	Sanity: {
		Name:        "Sanity",
		Description: "A headless CMS platform built with structured content and real-time collaboration",
		Category:    "Headless CMS",
		Website:     "https://www.sanity.io",
	},
	Strapi: {
		Name:        "Strapi",
		Description: "An open-source headless CMS to easily build customizable APIs",
		Category:    "Headless CMS",
		Website:     "https://strapi.io",
	},

	// E-commerce
	WooCommerce: {
		Name:        "WooCommerce",
		Description: "A customizable, open-source e-commerce platform built on WordPress",
		Category:    "E-commerce Platform",
		Website:     "https://woocommerce.com",
	},
	Magento: {
		Name:        "Magento",
		Description: "An open-source e-commerce platform written in PHP for enterprise-level businesses",
		Category:    "E-commerce Platform",
		Website:     "https://magento.com",
	},
	BigCommerce: {
		Name:        "BigCommerce",
		Description: "A SaaS e-commerce platform for online stores and retail point-of-sale systems",
		Category:    "E-commerce Platform",
		Website:     "https://www.bigcommerce.com",
	},
	PrestaShop: {
		Name:        "PrestaShop",
		Description: "An efficient and innovative open source e-commerce solution",
		Category:    "E-commerce Platform",
		Website:     "https://www.prestashop.com",
	},
	OpenCart: {
		Name:        "OpenCart",
		Description: "A free and open-source online store management system",
		Category:    "E-commerce Platform",
		Website:     "https://www.opencart.com",
	},

	// Build Tools
	Webpack: {
		Name:        "Webpack",
		Description: "A static module bundler for modern JavaScript applications",
		Category:    "Build Tool",
		Website:     "https://webpack.js.org",
	},
	Vite: {
		Name:        "Vite",
		Description: "A build tool that aims to provide a faster and leaner development experience for modern web projects",
		Category:    "Build Tool",
		Website:     "https://vitejs.dev",
	},
	Parcel: {
		Name:        "Parcel",
		Description: "A zero configuration web application bundler",
		Category:    "Build Tool",
		Website:     "https://parceljs.org",
	},
	Babel: {
		Name:        "Babel",
		Description: "A JavaScript compiler that converts ECMAScript 2015+ code into backwards-compatible JavaScript",
		Category:    "Transpiler",
		Website:     "https://babeljs.io",
	},

	// Misc
	PWA: {
		Name:        "Progressive Web App",
		Description: "A type of application built using web technologies but delivering an app-like experience",
		Category:    "Web Technology",
		Features:    []string{"Offline capability", "Push notifications", "Home screen installation"},
	},
	GraphQL: {
		Name:        "GraphQL",
		Description: "A query language for APIs and a runtime for executing those queries with your existing data",
		Category:    "API Technology",
		Website:     "https://graphql.org",
	},
	Web3: {
		Name:        "Web3/Blockchain",
		Description: "Technologies for the decentralized web, including blockchain integration and cryptocurrency features",
		Category:    "Blockchain Technology",
	},
	WebAssembly: {
		Name:        "WebAssembly",
		Description: "A binary instruction format for a stack-based virtual machine, enabling high-performance applications on the web",
		Category:    "Web Technology",
		Website:     "https://webassembly.org",
	},
	TypeScript: {
		Name:        "TypeScript",
		Description: "A strongly typed programming language that builds on JavaScript",
		Category:    "Programming Language",
		Website:     "https://www.typescriptlang.org",
	},
	ServiceWorker: {
		Name:        "Service Worker",
		Description: "A script that browsers run in the background to enable features like offline functionality and push notifications",
		Category:    "Web Technology",
		Features:    []string{"Offline capability", "Background sync", "Push notifications"},
	},
	FontAwesome: {
		Name:        "Font Awesome",
		Description: "A font and icon toolkit based on CSS and LESS",
		Category:    "Icon Library",
		Website:     "https://fontawesome.com",
	},
	Stripe: {
		Name:        "Stripe",
		Description: "A payment processing platform for online businesses",
		Category:    "Payment Processor",
		Website:     "https://stripe.com",
	},
	SocketIO: {
		Name:        "Socket.IO",
		Description: "A JavaScript library for real-time web applications with bidirectional communication",
		Category:    "Real-time Communication",
		Website:     "https://socket.io",
	},
	Cloudinary: {
		Name:        "Cloudinary",
		Description: "A cloud-based image and video management service",
		Category:    "Media Optimization",
		Website:     "https://cloudinary.com",
	},
	Imgix: {
		Name:        "Imgix",
		Description: "A real-time image processing and CDN service",
		Category:    "Media Optimization",
		Website:     "https://www.imgix.com",
	},
	Auth0: {
		Name:        "Auth0",
		Description: "An authentication and authorization platform",
		Category:    "Authentication Service",
		Website:     "https://auth0.com",
	},
	Firebase: {
		Name:        "Firebase",
		Description: "A platform for mobile and web application development",
		Category:    "Development Platform",
		Website:     "https://firebase.google.com",
	},
	Supabase: {
		Name:        "Supabase",
		Description: "An open-source Firebase alternative",
		Category:    "Development Platform",
		Website:     "https://supabase.com",
	},
}
