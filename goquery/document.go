// Package goquery implements serprank.Document on top of goquery, giving the
// section rules CSS selector access to a parsed result page.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/serprank"
)

var (
	_ serprank.Document = (*Document)(nil)
	_ serprank.Node     = (*Node)(nil)
)

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// Parse parses an HTML page.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, serprank.Errorf(serprank.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// NewDocument wraps an already parsed goquery document.
func NewDocument(doc *goquery.Document) *Document {
	return &Document{doc: doc}
}

// Select returns the elements matching selector in document order.
// An invalid selector matches nothing.
func (d *Document) Select(selector string) []serprank.Node {
	return wrap(d.doc.Find(selector))
}

// Node is one element of a Document.
type Node struct {
	sel *goquery.Selection
}

// Select returns the descendants matching selector in document order.
func (n *Node) Select(selector string) []serprank.Node {
	return wrap(n.sel.Find(selector))
}

// Text returns the combined text of the element and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// Attr returns the named attribute, or "" if it is not set.
func (n *Node) Attr(name string) string {
	return n.sel.AttrOr(name, "")
}

// Contains reports whether other is nested inside the element.
// Nodes from other Document implementations are never contained.
func (n *Node) Contains(other serprank.Node) bool {
	o, ok := other.(*Node)
	if !ok || o.sel.Length() == 0 {
		return false
	}
	return n.sel.Contains(o.sel.Get(0))
}

func wrap(sel *goquery.Selection) []serprank.Node {
	if sel.Length() == 0 {
		return nil
	}
	nodes := make([]serprank.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}
