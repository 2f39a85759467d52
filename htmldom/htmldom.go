/*
Package htmldom adapts parsed HTML to styleable element trees.

Overview

The styling engine is host-agnostic: it styles peacock.Element trees,
whatever they mirror. This package is the adapter for hosts whose UI
description is HTML: FromHTML moulds an HTML parse tree (golang.org/x/net/html)
into an element tree, carrying over tag names and class attributes, and
StyleTexts collects embedded <style> elements for feeding to sheet.Parse.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/npillmayer/peacock"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'peacock.htmldom'.
func tracer() tracing.Trace {
	return tracing.Select("peacock.htmldom")
}

// FromHTML builds an element tree from an HTML parse tree. Only element
// nodes are carried over: tag names become labels, 'class' attributes,
// split on whitespace, become classes; text, comments and doctypes are
// dropped. The returned element mirrors the first element node at or
// below doc, which for a complete document is <html>. It returns nil if
// doc contains no element at all.
func FromHTML(doc *html.Node) *peacock.Element {
	n := firstElement(doc)
	if n == nil {
		return nil
	}
	el := convert(n)
	tracer().Debugf("converted HTML below <%s> to an element tree", n.Data)
	return el
}

func firstElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := firstElement(ch); r != nil {
			return r
		}
	}
	return nil
}

func convert(n *html.Node) *peacock.Element {
	el := peacock.NewElement(n.Data)
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				el.AddClass(c)
			}
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode {
			continue
		}
		el.AppendChild(convert(ch))
	}
	return el
}

// StyleTexts collects the text content of every <style> element at or
// below doc, in document order.
func StyleTexts(doc *html.Node) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			var sb strings.Builder
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.TextNode {
					sb.WriteString(ch.Data)
				}
			}
			texts = append(texts, sb.String())
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if doc != nil {
		walk(doc)
	}
	return texts
}
