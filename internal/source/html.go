package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/atomicstack/treemenu/internal/tree"
)

// HTML reads the first <ul> or <ol> of a document. Each <li> contributes its
// own text as the label and the items of its first nested list as children.
func HTML(r io.Reader) ([]tree.Item, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	list := findList(doc)
	if list == nil {
		return nil, nil
	}
	return listItems(list), nil
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol)
}

func findList(n *html.Node) *html.Node {
	if isList(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findList(c); found != nil {
			return found
		}
	}
	return nil
}

func listItems(list *html.Node) []tree.Item {
	var items []tree.Item
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		item := tree.Item{Label: ownText(c)}
		if nested := nestedList(c); nested != nil {
			item.Children = listItems(nested)
		}
		items = append(items, item)
	}
	return items
}

// nestedList finds the first list inside li without crossing another <li>.
func nestedList(li *html.Node) *html.Node {
	var walk func(n *html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isList(c) {
				return c
			}
			if c.Type == html.ElementNode && c.DataAtom != atom.Li {
				if found := walk(c); found != nil {
					return found
				}
			}
		}
		return nil
	}
	return walk(li)
}

// ownText collects the text of li, skipping nested lists.
func ownText(li *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.TextNode:
				sb.WriteString(c.Data)
				sb.WriteByte(' ')
			case isList(c):
			case c.Type == html.ElementNode:
				walk(c)
			}
		}
	}
	walk(li)
	return strings.Join(strings.Fields(sb.String()), " ")
}
