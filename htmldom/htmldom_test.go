package htmldom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"

	"github.com/npillmayer/peacock"
	"github.com/npillmayer/peacock/htmldom"
	"github.com/npillmayer/peacock/style"
	"github.com/npillmayer/peacock/style/sheet"
)

const page = `<html>
<head>
  <style>
    item { width: 100px; }
  </style>
</head>
<body>
  <ul class="menu main">
    <!-- two entries -->
    <li class="item">one</li>
    <li class="item hot">two</li>
  </ul>
</body>
</html>`

func parse(t *testing.T, src string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("test HTML does not parse: %v", err)
	}
	return doc
}

func TestFromHTMLStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.htmldom")
	defer teardown()
	//
	root := htmldom.FromHTML(parse(t, page))
	if root == nil {
		t.Fatal("expected an element tree, got none")
	}
	t.Logf("tree =\n%s", peacock.Dump(root))
	if root.Label() != "html" {
		t.Errorf("expected the root to mirror <html>, is %q", root.Label())
	}
	body := root.Child(1)
	if body == nil || body.Label() != "body" {
		t.Fatalf("expected <body> as second child of the root, is %v", body)
	}
	ul := body.Child(0)
	if ul == nil || ul.Label() != "ul" {
		t.Fatalf("expected <ul> below <body>, is %v", ul)
	}
	// text and comment nodes are dropped, the two <li> remain
	if ul.ChildCount() != 2 {
		t.Errorf("expected 2 list items, got %d", ul.ChildCount())
	}
	if !ul.HasClass("menu") || !ul.HasClass("main") {
		t.Errorf("expected classes menu and main on the list, got %v", ul.Classes())
	}
	second := ul.Child(1)
	if !second.HasClass("item") || !second.HasClass("hot") {
		t.Errorf("expected classes item and hot, got %v", second.Classes())
	}
}

func TestFromHTMLNoElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.htmldom")
	defer teardown()
	//
	if el := htmldom.FromHTML(nil); el != nil {
		t.Errorf("expected nil for nil input, got %v", el)
	}
	text := &html.Node{Type: html.TextNode, Data: "loose text"}
	if el := htmldom.FromHTML(text); el != nil {
		t.Errorf("expected nil for a tree without elements, got %v", el)
	}
}

func TestStyleTextsFeedSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "peacock.htmldom")
	defer teardown()
	//
	texts := htmldom.StyleTexts(parse(t, page))
	if len(texts) != 1 {
		t.Fatalf("expected 1 style text, got %d", len(texts))
	}
	sh, err := sheet.Parse(texts[0])
	if err != nil {
		t.Fatalf("expected the embedded sheet to parse, got %v", err)
	}
	set, ok := sh.Style("item")
	if !ok {
		t.Fatal("expected a style named item, found none")
	}
	if v, _ := set.Prop(style.PropWidth); v != style.Px(100) {
		t.Errorf("expected width 100px from the embedded sheet, is %s", v)
	}
}
