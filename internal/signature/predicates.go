package signature

import (
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/jonathan/stacklyzer/internal/document"
)

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// HTMLContains matches when the raw HTML contains any of subs.
func HTMLContains(subs ...string) Test {
	return func(doc *document.Document) bool {
		return containsAny(doc.HTML, subs)
	}
}

// InlineContains matches when inline script text contains any of subs.
func InlineContains(subs ...string) Test {
	return func(doc *document.Document) bool {
		return containsAny(doc.InlineScript, subs)
	}
}

// TextContains matches when either the raw HTML or the inline script text contains any of subs.
func TextContains(subs ...string) Test {
	return func(doc *document.Document) bool {
		return containsAny(doc.HTML, subs) || containsAny(doc.InlineScript, subs)
	}
}

// HTMLMatches matches when re matches the raw HTML.
func HTMLMatches(re *regexp.Regexp) Test {
	return func(doc *document.Document) bool {
		return re.MatchString(doc.HTML)
	}
}

// InlineMatches matches when re matches the inline script text.
func InlineMatches(re *regexp.Regexp) Test {
	return func(doc *document.Document) bool {
		return re.MatchString(doc.InlineScript)
	}
}

// ScriptContains matches when any script src contains any of subs.
func ScriptContains(subs ...string) Test {
	return func(doc *document.Document) bool {
		for _, src := range doc.Scripts {
			if containsAny(src, subs) {
				return true
			}
		}
		return false
	}
}

// ScriptSuffix matches when any script src ends with any of suffixes.
func ScriptSuffix(suffixes ...string) Test {
	return func(doc *document.Document) bool {
		for _, src := range doc.Scripts {
			for _, suffix := range suffixes {
				if strings.HasSuffix(src, suffix) {
					return true
				}
			}
		}
		return false
	}
}

// ScriptMatches matches when any script src matches any of res.
func ScriptMatches(res ...*regexp.Regexp) Test {
	return func(doc *document.Document) bool {
		for _, src := range doc.Scripts {
			for _, re := range res {
				if re.MatchString(src) {
					return true
				}
			}
		}
		return false
	}
}

// LinkHrefContains matches when any link href contains any of subs.
func LinkHrefContains(subs ...string) Test {
	return func(doc *document.Document) bool {
		for _, l := range doc.Links {
			if containsAny(l.Href, subs) {
				return true
			}
		}
		return false
	}
}

// LinkRel matches when any link has exactly the given rel.
func LinkRel(rel string) Test {
	return func(doc *document.Document) bool {
		for _, l := range doc.Links {
			if l.Rel == rel {
				return true
			}
		}
		return false
	}
}

// Exists matches when any element matches the selector group. The
// selectors are compiled once, when the pattern table is built.
func Exists(selectors ...string) Test {
	m := cascadia.MustCompile(strings.Join(selectors, ", "))
	return func(doc *document.Document) bool {
		return doc.Exists(m)
	}
}

// CountAbove matches when more than n distinct elements match the selector group.
func CountAbove(n int, selectors ...string) Test {
	m := cascadia.MustCompile(strings.Join(selectors, ", "))
	return func(doc *document.Document) bool {
		return doc.Count(m) > n
	}
}

// MetaPresent matches when a meta tag with the given name or property exists.
func MetaPresent(name string) Test {
	return func(doc *document.Document) bool {
		_, ok := doc.Meta[name]
		return ok
	}
}

// Any matches when at least one of tests matches.
func Any(tests ...Test) Test {
	return func(doc *document.Document) bool {
		for _, t := range tests {
			if t(doc) {
				return true
			}
		}
		return false
	}
}

// All matches when every test matches.
func All(tests ...Test) Test {
	return func(doc *document.Document) bool {
		for _, t := range tests {
			if !t(doc) {
				return false
			}
		}
		return true
	}
}

// Not inverts t.
func Not(t Test) Test {
	return func(doc *document.Document) bool {
		return !t(doc)
	}
}

// FirstSubmatch returns the first capture group of re found in texts,
// scanning the texts in order. It returns "" when nothing matches.
func FirstSubmatch(re *regexp.Regexp, texts ...string) string {
	for _, text := range texts {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}
