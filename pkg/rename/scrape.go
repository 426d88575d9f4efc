package rename

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoEpisodeTable is returned when the page contains no episode table.
var ErrNoEpisodeTable = errors.New("no episode table found on page")

// Episode is one row of a Wikipedia episode table. Double episodes carry
// more than one number.
type Episode struct {
	Numbers []string
	Title   string
}

// ParseEpisodes extracts the episodes from a Wikipedia season article.
// Episode numbers live in the row's header cell on single-season articles
// and in the first data cell otherwise; <hr> elements inside the cell
// separate the numbers of double episodes. Titles come from the summary
// cell, with the surrounding quotes stripped.
func ParseEpisodes(r io.Reader, single bool) ([]Episode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var episodes []Episode
	found := false

	for _, table := range findAll(doc, isEpisodeTable) {
		found = true
		for _, row := range findAll(table, isVEventRow) {
			ep, ok := parseRow(row, single)
			if ok {
				episodes = append(episodes, ep)
			}
		}
	}

	if !found {
		return nil, ErrNoEpisodeTable
	}

	return episodes, nil
}

// parseRow extracts one episode from a vevent table row.
func parseRow(row *html.Node, single bool) (Episode, bool) {
	var numbersCell, titleCell *html.Node

	for child := row.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		switch {
		case single && child.Data == "th" && numbersCell == nil:
			numbersCell = child
		case !single && child.Data == "td" && numbersCell == nil && titleCell == nil:
			numbersCell = child
		case child.Data == "td" && hasClass(child, "summary"):
			titleCell = child
		}
	}

	if numbersCell == nil || titleCell == nil {
		return Episode{}, false
	}

	title := strings.Trim(strings.TrimSpace(textContent(titleCell)), `"`)
	numbers := strings.Fields(textContent(numbersCell))
	if title == "" || len(numbers) == 0 {
		return Episode{}, false
	}

	return Episode{Numbers: numbers, Title: title}, true
}

func isEpisodeTable(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "table" && hasClass(n, "wikiepisodetable")
}

func isVEventRow(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "tr" && hasClass(n, "vevent")
}

// hasClass reports whether the node's class attribute contains the class.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// findAll returns every node in the tree matching the predicate, without
// descending into matched nodes.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	if match(n) {
		return []*html.Node{n}
	}

	var out []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, findAll(child, match)...)
	}
	return out
}

// textContent returns the node's text, with <hr> and <br> elements turned
// into spaces so double-episode numbers stay separable.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && (n.Data == "hr" || n.Data == "br") {
			sb.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
