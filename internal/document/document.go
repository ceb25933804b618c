// Package document parses fetched HTML once into the views every detector reads.
package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var (
	scriptSrcSelector    = cascadia.MustCompile("script[src]")
	inlineScriptSelector = cascadia.MustCompile("script:not([src])")
	linkSelector         = cascadia.MustCompile("link[href]")
	metaSelector         = cascadia.MustCompile("meta")
)

// Link is an external resource reference from a <link> element.
type Link struct {
	Href string
	Rel  string
}

// Document is the parsed form of a fetched page. It is built once per
// analysis and never modified afterwards, so detectors may share it.
type Document struct {
	// HTML is the raw page source.
	HTML string
	// DOM is the queryable tree.
	DOM *goquery.Document
	// Scripts holds the src of every external script, in document order.
	Scripts []string
	// Links holds every <link> with a non-empty href, in document order.
	Links []Link
	// InlineScript is the text of every script without a src, joined by a single space.
	InlineScript string
	// Meta maps a meta tag's name (or property when name is absent) to its content.
	// Later tags overwrite earlier ones. Tags without a content attribute
	// are not recorded.
	Meta map[string]string
}

// Parse builds a Document from raw HTML. Malformed markup is tolerated the
// way browsers tolerate it.
func Parse(html string) (*Document, error) {
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc := &Document{
		HTML: html,
		DOM:  dom,
		Meta: make(map[string]string),
	}

	dom.FindMatcher(scriptSrcSelector).Each(func(_ int, s *goquery.Selection) {
		if src, _ := s.Attr("src"); src != "" {
			doc.Scripts = append(doc.Scripts, src)
		}
	})

	dom.FindMatcher(linkSelector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}
		rel, _ := s.Attr("rel")
		doc.Links = append(doc.Links, Link{Href: href, Rel: rel})
	})

	var inline []string
	dom.FindMatcher(inlineScriptSelector).Each(func(_ int, s *goquery.Selection) {
		inline = append(inline, s.Text())
	})
	doc.InlineScript = strings.Join(inline, " ")

	dom.FindMatcher(metaSelector).Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		if name == "" {
			name, _ = s.Attr("property")
		}
		if name == "" {
			return
		}
		content, ok := s.Attr("content")
		if !ok {
			// A tag without content unsets the name.
			delete(doc.Meta, name)
			return
		}
		doc.Meta[name] = content
	})

	return doc, nil
}

// Empty returns a Document for a page with no content.
func Empty() *Document {
	doc, _ := Parse("")
	return doc
}

// Count returns the number of elements matching m.
func (d *Document) Count(m goquery.Matcher) int {
	if d == nil || d.DOM == nil {
		return 0
	}
	return d.DOM.FindMatcher(m).Length()
}

// Exists reports whether at least one element matches m.
func (d *Document) Exists(m goquery.Matcher) bool {
	return d.Count(m) > 0
}

// Attr returns the value of attribute name on the first element matching m.
func (d *Document) Attr(m goquery.Matcher, name string) (string, bool) {
	if d == nil || d.DOM == nil {
		return "", false
	}
	return d.DOM.FindMatcher(m).First().Attr(name)
}

// Generator returns the content of the generator meta tag.
func (d *Document) Generator() string {
	if d == nil {
		return ""
	}
	return d.Meta["generator"]
}
