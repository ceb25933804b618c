package detectors

import (
	"github.com/jonathan/stacklyzer/internal/catalogue"
	"github.com/jonathan/stacklyzer/internal/signature"
)

// Ecommerce returns the e-commerce platform detector. Each platform is a
// single combined check with a fixed sentence as its evidence.
func Ecommerce() Detector {
	return newTableDetector(catalogue.BucketEcommerce, ecommerceSignatures)
}

var ecommerceSignatures = []signature.Signature{
	{
		ID: catalogue.WooCommerce,
		Patterns: []signature.Pattern{
			{Name: "woocommerce", Signal: "WooCommerce classes or code detected", Test: signature.Any(
				signature.HTMLContains("woocommerce", "is-woocommerce"),
				signature.Exists(`[class*="woocommerce"]`),
			)},
		},
	},
	{
		ID: catalogue.Magento,
		Patterns: []signature.Pattern{
			{Name: "magento", Signal: "Magento code or elements detected", Test: signature.Any(
				signature.HTMLContains("Magento", "Mage."),
				signature.Exists(`[data-role="mage-translation"]`),
			)},
		},
	},
	{
		ID: catalogue.PrestaShop,
		Patterns: []signature.Pattern{
			{Name: "prestashop", Signal: "PrestaShop code or generator tag detected", Test: signature.Any(
				signature.HTMLContains("prestashop"),
				signature.Exists(`meta[name="generator"][content*="PrestaShop"]`),
			)},
		},
	},
	{
		ID: catalogue.BigCommerce,
		Patterns: []signature.Pattern{
			{Name: "bigcommerce", Signal: "BigCommerce code or resources detected", Test: signature.Any(
				signature.HTMLContains("bigcommerce", "bc-"),
				signature.LinkHrefContains("bigcommerce.com"),
			)},
		},
	},
	{
		ID: catalogue.OpenCart,
		Patterns: []signature.Pattern{
			{Name: "opencart", Signal: "OpenCart code or elements detected", Test: signature.Any(
				signature.HTMLContains("opencart"),
				signature.Exists("div.opencart"),
			)},
		},
	},
}
