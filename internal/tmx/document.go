package tmx

import (
	"bytes"
	"errors"

	"github.com/antchfx/xmlquery"
)

// Document is a parsed TMX document.
type Document struct {
	root *xmlquery.Node
}

// Node is an element of a parsed document.
type Node struct {
	node *xmlquery.Node
}

// Parse loads a sanitized TMX document. A document that is not well-formed
// XML, or that has no root element, yields a *ParseError.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(stripBOM(data)))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	doc := &Document{root: root}
	if doc.Root() == nil {
		return nil, &ParseError{Err: errors.New("no root element")}
	}
	return doc, nil
}

// Root returns the document element.
func (d *Document) Root() *Node {
	if d.root == nil {
		return nil
	}
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Node{node: child}
		}
	}
	return nil
}

// Elements returns every element named tag below the document root, in
// document order.
func (d *Document) Elements(tag string) []*Node {
	root := d.Root()
	if root == nil {
		return nil
	}
	var out []*Node
	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			if child.Data == tag {
				out = append(out, &Node{node: child})
			}
			walk(child)
		}
	}
	walk(root.node)
	return out
}

// Name returns the element's local name.
func (n *Node) Name() string {
	if n.node == nil {
		return ""
	}
	return n.node.Data
}

// Attributes returns the element's attributes keyed by local name, so that
// xml:lang is reported as "lang".
func (n *Node) Attributes() map[string]string {
	if n.node == nil {
		return nil
	}
	attrs := make(map[string]string, len(n.node.Attr))
	for _, attr := range n.node.Attr {
		attrs[attr.Name.Local] = attr.Value
	}
	return attrs
}

// Children returns the direct child elements named tag. An empty tag
// returns every child element.
func (n *Node) Children(tag string) []*Node {
	if n.node == nil {
		return nil
	}
	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		if tag == "" || child.Data == tag {
			children = append(children, &Node{node: child})
		}
	}
	return children
}

// TextContent concatenates all text and CDATA below the node in document
// order. Element boundaries contribute nothing.
func (n *Node) TextContent() string {
	if n.node == nil {
		return ""
	}
	return n.node.InnerText()
}
