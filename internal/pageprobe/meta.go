package pageprobe

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// metaDescription pulls the content of the page's meta description tag,
// accepting both name="description" and property="og:description". The
// plain description wins when both exist.
func metaDescription(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var plain, og string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var name, property, content string
			for _, attr := range n.Attr {
				switch strings.ToLower(attr.Key) {
				case "name":
					name = strings.ToLower(attr.Val)
				case "property":
					property = strings.ToLower(attr.Val)
				case "content":
					content = attr.Val
				}
			}
			if name == "description" && plain == "" {
				plain = strings.TrimSpace(content)
			}
			if property == "og:description" && og == "" {
				og = strings.TrimSpace(content)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if plain != "" {
		return plain
	}
	return og
}
