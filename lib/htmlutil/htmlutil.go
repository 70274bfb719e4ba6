package htmlutil

import (
	"sidco-backend/lib/textutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Text returns the trimmed, whitespace-collapsed text content of a
// selection, all of its nodes combined.
func Text(sel *goquery.Selection) string {
	return textutil.CollapseSpace(sel.Text())
}

// SeparatedText joins each text node of the selection with sep, trimming
// every fragment. Useful for cells where nested elements would otherwise
// run their words together.
func SeparatedText(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectTextParts(n, &parts)
	}
	return strings.Join(parts, sep)
}

func collectTextParts(node *html.Node, parts *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		trimmed := textutil.CollapseSpace(node.Data)
		if trimmed != "" {
			*parts = append(*parts, trimmed)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectTextParts(child, parts)
	}
}

// FindByMarker returns the first element matching selector whose text
// content contains the marker phrase. When matches nest (a wrapper cell
// containing the real marker cell), the innermost one wins. The second
// return reports whether anything matched. This is the only
// identification mechanism the scraped pages offer; there is no
// machine-readable schema to lean on.
func FindByMarker(doc *goquery.Document, selector, marker string) (*goquery.Selection, bool) {
	var found *goquery.Selection
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(s.Text(), marker) {
			return true
		}
		if hasMarkerDescendant(s, selector, marker) {
			return true
		}
		found = s
		return false
	})
	return found, found != nil
}

func hasMarkerDescendant(s *goquery.Selection, selector, marker string) bool {
	inner := false
	s.Find(selector).EachWithBreak(func(_ int, d *goquery.Selection) bool {
		if strings.Contains(d.Text(), marker) {
			inner = true
			return false
		}
		return true
	})
	return inner
}

// Following returns single-node selections matching selector that occur
// strictly after the anchor's first node in document order.
func Following(doc *goquery.Document, anchor *goquery.Selection, selector string) []*goquery.Selection {
	if anchor == nil || len(anchor.Nodes) == 0 {
		return nil
	}
	order := documentOrder(doc)
	anchorIdx, ok := order[anchor.Nodes[0]]
	if !ok {
		return nil
	}

	candidates := doc.Find(selector)
	var out []*goquery.Selection
	for i, n := range candidates.Nodes {
		if order[n] > anchorIdx {
			out = append(out, candidates.Eq(i))
		}
	}
	return out
}

func documentOrder(doc *goquery.Document) map[*html.Node]int {
	order := map[*html.Node]int{}
	i := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		order[n] = i
		i++
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return order
}

// TableWithHeaders picks the first table whose thead cell texts include
// every wanted label, compared exactly after trimming. Tables without a
// thead are skipped.
func TableWithHeaders(tables []*goquery.Selection, wanted ...string) (*goquery.Selection, bool) {
	for _, t := range tables {
		thead := t.Find("thead").First()
		if thead.Length() == 0 {
			continue
		}

		headers := map[string]bool{}
		thead.Find("td,th").Each(func(_ int, c *goquery.Selection) {
			headers[Text(c)] = true
		})

		all := true
		for _, w := range wanted {
			if !headers[w] {
				all = false
				break
			}
		}
		if all {
			return t, true
		}
	}
	return nil, false
}
