// Package view holds the toolkit-independent view tree produced by render
// functions. Render functions are pure: given the same input they return an
// equal tree, and the host decides when to call them again.
package view

// Kind identifies what a Node draws.
type Kind int

const (
	KindColumn Kind = iota
	KindIcon
	KindSpacer
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindColumn:
		return "column"
	case KindIcon:
		return "icon"
	case KindSpacer:
		return "spacer"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// IconName refers to a themed icon resource.
type IconName string

const (
	IconInfo IconName = "info"
)

// TextStyle names a typography role from the host theme.
type TextStyle string

const (
	TextStyleBody  TextStyle = "body"
	TextStyleTitle TextStyle = "title"
)

// Insets is padding around a container, in theme units.
type Insets struct {
	Top, Bottom, Leading, Trailing float32
}

// Node is one element of a view tree. A nil *Node is the empty composition.
type Node struct {
	Kind     Kind
	Children []*Node

	// Column
	Padding Insets

	// Icon
	Icon IconName
	// ContentDescription is the accessible label; empty means the icon is
	// decorative.
	ContentDescription string

	// Spacer
	Height float32

	// Text
	Text  string
	Style TextStyle
}

// Column stacks children vertically. Nil children are dropped.
func Column(padding Insets, children ...*Node) *Node {
	kept := make([]*Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &Node{Kind: KindColumn, Padding: padding, Children: kept}
}

// Icon draws a non-interactive icon.
func Icon(name IconName, contentDescription string) *Node {
	return &Node{Kind: KindIcon, Icon: name, ContentDescription: contentDescription}
}

// Spacer reserves fixed vertical space.
func Spacer(height float32) *Node {
	return &Node{Kind: KindSpacer, Height: height}
}

// Text renders s verbatim in the given style.
func Text(s string, style TextStyle) *Node {
	return &Node{Kind: KindText, Text: s, Style: style}
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the children of that node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Count returns how many nodes of kind k are in the tree rooted at n.
func Count(n *Node, k Kind) int {
	total := 0
	Walk(n, func(x *Node) bool {
		if x.Kind == k {
			total++
		}
		return true
	})
	return total
}
