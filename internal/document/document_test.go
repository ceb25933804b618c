package document

import (
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
	<meta name="generator" content="WordPress 5.9">
	<meta property="og:title" content="Example">
	<meta name="description" content="first">
	<meta name="description" content="second">
	<meta content="orphan">
	<link rel="stylesheet" href="/style.css">
	<link rel="manifest" href="/manifest.json">
	<link rel="icon">
	<link rel="preload" href="">
	<script src="/a.js"></script>
	<script src=""></script>
	<script>var x = 1;</script>
</head>
<body>
	<div class="card"></div>
	<div class="card"></div>
	<script src="/b.js"></script>
	<script>console.log("hi");</script>
</body>
</html>`

func TestParse_Scripts(t *testing.T) {
	doc, err := Parse(samplePage)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.js", "/b.js"}, doc.Scripts)
}

func TestParse_Links(t *testing.T) {
	doc, err := Parse(samplePage)
	require.NoError(t, err)
	assert.Equal(t, []Link{
		{Href: "/style.css", Rel: "stylesheet"},
		{Href: "/manifest.json", Rel: "manifest"},
	}, doc.Links)
}

func TestParse_InlineScript(t *testing.T) {
	doc, err := Parse(samplePage)
	require.NoError(t, err)
	assert.Equal(t, `var x = 1; console.log("hi");`, doc.InlineScript)
}

func TestParse_Meta(t *testing.T) {
	doc, err := Parse(samplePage)
	require.NoError(t, err)

	assert.Equal(t, "WordPress 5.9", doc.Generator())
	assert.Equal(t, "Example", doc.Meta["og:title"])
	assert.Equal(t, "second", doc.Meta["description"], "later tags win")
	assert.Len(t, doc.Meta, 3)
}

func TestParse_MetaWithoutContent(t *testing.T) {
	doc, err := Parse(`<html><head>
<meta name="contentful_id">
<meta name="description" content="kept">
<meta name="theme-color" content="#fff">
<meta name="theme-color">
</head></html>`)
	require.NoError(t, err)

	_, ok := doc.Meta["contentful_id"]
	assert.False(t, ok)
	_, ok = doc.Meta["theme-color"]
	assert.False(t, ok, "a later tag without content unsets the name")
	assert.Equal(t, map[string]string{"description": "kept"}, doc.Meta)
}

func TestParse_MetaEmptyContent(t *testing.T) {
	doc, err := Parse(`<html><head><meta name="contentful_id" content=""></head></html>`)
	require.NoError(t, err)

	v, ok := doc.Meta["contentful_id"]
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.Scripts)
	assert.Empty(t, doc.Links)
	assert.Empty(t, doc.InlineScript)
	assert.Empty(t, doc.Meta)
}

func TestParse_MalformedMarkup(t *testing.T) {
	doc, err := Parse(`<div><script src="/x.js"><p>unclosed`)
	require.NoError(t, err)
	assert.Equal(t, []string{"/x.js"}, doc.Scripts)
}

func TestDocument_CountAndAttr(t *testing.T) {
	doc, err := Parse(samplePage)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Count(cascadia.MustCompile("div.card")))
	assert.True(t, doc.Exists(cascadia.MustCompile(`link[rel="manifest"]`)))
	assert.False(t, doc.Exists(cascadia.MustCompile("iframe")))

	href, ok := doc.Attr(cascadia.MustCompile(`link[rel="manifest"]`), "href")
	assert.True(t, ok)
	assert.Equal(t, "/manifest.json", href)
}

func TestDocument_NilSafe(t *testing.T) {
	var doc *Document
	assert.Equal(t, 0, doc.Count(cascadia.MustCompile("div")))
	assert.Equal(t, "", doc.Generator())
	_, ok := doc.Attr(cascadia.MustCompile("div"), "id")
	assert.False(t, ok)
}
