package ui

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// summaryTags are the only elements kept from a remote summary. They are
// re-emitted without attributes.
var summaryTags = map[atom.Atom]bool{
	atom.P:      true,
	atom.B:      true,
	atom.I:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.Br:     true,
}

// droppedTags are removed together with their content.
var droppedTags = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Embed:    true,
	atom.Template: true,
	atom.Noscript: true,
}

// SanitizeSummary treats a directory summary as untrusted markup. Basic
// inline formatting survives; every other element is unwrapped to its text,
// and executable content is removed.
func SanitizeSummary(raw string) template.HTML {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return template.HTML(html.EscapeString(raw))
	}

	var sb strings.Builder
	for _, node := range doc.Find("body").Contents().Nodes {
		writeSummaryNode(&sb, node)
	}
	return template.HTML(sb.String())
}

func writeSummaryNode(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(html.EscapeString(n.Data))
	case html.ElementNode:
		if droppedTags[n.DataAtom] {
			return
		}
		keep := summaryTags[n.DataAtom]
		if keep {
			sb.WriteString("<" + n.DataAtom.String() + ">")
			if n.DataAtom == atom.Br {
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			writeSummaryNode(sb, child)
		}
		if keep {
			sb.WriteString("</" + n.DataAtom.String() + ">")
		}
	}
}
