package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vidharvest/vidharvest/log"
	"golang.org/x/net/html"
)

// Page is one input document: the raw text for pattern scans and its parsed tree.
type Page struct {
	Raw string
	Doc *goquery.Document
}

// NewPage parses raw. A parse failure leaves Doc as an empty document so that
// tree-based strategies simply find nothing.
func NewPage(raw string) *Page {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		log.Debugf("parse page: %v", err)
		doc = goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return &Page{Raw: raw, Doc: doc}
}

// Scripts returns the text of every <script> element in document order.
func (p *Page) Scripts() []string {
	var scripts []string
	p.Doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			scripts = append(scripts, nodeText(n))
		}
	})
	return scripts
}

// nodeText concatenates the direct text children of n. Script content is raw text,
// so there are no nested elements to descend into.
func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
