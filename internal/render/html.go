// Package render writes the accessibility projection of a tree as markup.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/atomicstack/treemenu/internal/tree"
)

// Class names shared with the stylesheet of the host page.
const (
	ClassContainer  = "treemenu"
	ClassTitle      = "title"
	ClassReaderOnly = "readers-only"
	ClassFolder     = "folder"
	ClassCollapsed  = "collapsed"
	ClassFocused    = "focused"
	ClassSelected   = "selected"
)

// HTML renders t's current snapshot. The output reflects the same attributes
// the controller projected on its last transition.
func HTML(w io.Writer, t *tree.Tree) error {
	root := Document(t)
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Document builds the container element for t.
func Document(t *tree.Tree) *html.Node {
	snap := t.Snapshot()
	attrs := make(map[string]tree.Attrs, len(snap.Items))
	for _, a := range snap.Items {
		attrs[a.ID] = a
	}

	container := element(atom.Div,
		attr("class", ClassContainer),
	)
	title := element(atom.Div, attr("class", ClassTitle), attr("id", snap.TitleID))
	title.AppendChild(text(snap.Label))
	container.AppendChild(title)

	list := element(atom.Ul,
		attr("id", snap.ID),
		attr("role", "tree"),
		attr("aria-labelledby", snap.TitleID),
		attr("aria-describedby", snap.InstructionsID),
	)
	if snap.ActiveDescendant != "" {
		list.Attr = append(list.Attr, attr("aria-activedescendant", snap.ActiveDescendant))
	}
	for _, n := range t.Roots {
		list.AppendChild(item(n, attrs))
	}
	container.AppendChild(list)

	instructions := element(atom.Div,
		attr("class", ClassReaderOnly),
		attr("id", snap.InstructionsID),
	)
	instructions.AppendChild(text(snap.Instructions))
	container.AppendChild(instructions)
	return container
}

func item(n *tree.Node, attrs map[string]tree.Attrs) *html.Node {
	a := attrs[n.ID]
	li := element(atom.Li,
		attr("id", a.ID),
		attr("role", a.Role),
		attr("tabindex", strconv.Itoa(a.TabIndex)),
		attr("aria-level", strconv.Itoa(a.Level)),
		attr("aria-setsize", strconv.Itoa(a.SetSize)),
		attr("aria-posinset", strconv.Itoa(a.PosInSet)),
		attr("aria-selected", strconv.FormatBool(a.Selected)),
	)
	var classes []string
	if a.Branch() {
		li.Attr = append(li.Attr,
			attr("aria-expanded", strconv.FormatBool(a.IsExpanded())),
			attr("aria-label", a.Label),
		)
		if !a.IsExpanded() {
			classes = append(classes, ClassCollapsed)
		}
	}
	if a.Current {
		classes = append(classes, ClassFocused)
	}
	if a.Selected {
		classes = append(classes, ClassSelected)
	}
	if len(classes) > 0 {
		li.Attr = append(li.Attr, attr("class", strings.Join(classes, " ")))
	}

	label := element(atom.Span)
	if a.Branch() {
		label.Attr = append(label.Attr, attr("class", ClassFolder), attr("role", "presentation"))
	}
	label.AppendChild(text(a.Label))
	li.AppendChild(label)

	if n.IsBranch() {
		group := element(atom.Ul, attr("role", "group"))
		for _, child := range n.Children {
			group.AppendChild(item(child, attrs))
		}
		li.AppendChild(group)
	}
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
