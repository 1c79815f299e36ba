package source

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup returns the text and comment content of an HTML or XML
// document, one node per line. Element and attribute names are dropped.
// Script and style bodies are kept since they may carry comments.
func StripMarkup(doc string) string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return doc
	}

	var b strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode, html.CommentNode:
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(root)

	return b.String()
}
