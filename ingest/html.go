package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTML extracts readable text from an HTML document, preserving the
// structure the chunker understands: headings come out as ATX headings,
// list items as dashed lines, and tables as Markdown pipe tables. Script,
// style, and head content is dropped.
func HTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var sb strings.Builder
	walkHTML(doc, &sb)

	return tidyExtracted(sb.String()), nil
}

// walkHTML emits block-level content for each element of interest and
// recurses into everything else.
func walkHTML(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head", "noscript", "template":
			return

		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			text := nodeText(n)
			if text != "" {
				sb.WriteString("\n\n")
				sb.WriteString(strings.Repeat("#", level))
				sb.WriteString(" ")
				sb.WriteString(text)
				sb.WriteString("\n\n")
			}
			return

		case "p", "blockquote", "pre":
			text := nodeText(n)
			if text != "" {
				sb.WriteString("\n\n")
				sb.WriteString(text)
				sb.WriteString("\n\n")
			}
			return

		case "li":
			text := nodeText(n)
			if text != "" {
				sb.WriteString("\n- ")
				sb.WriteString(text)
			}
			return

		case "table":
			writeHTMLTable(n, sb)
			return

		case "br":
			sb.WriteString("\n")
			return
		}
	}

	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, sb)
	}
}

// writeHTMLTable renders a <table> as a Markdown pipe table, inserting the
// delimiter row after the first row.
func writeHTMLTable(n *html.Node, sb *strings.Builder) {
	rows := collectRows(n)
	if len(rows) == 0 {
		return
	}

	sb.WriteString("\n\n")
	for i, row := range rows {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cleanCell(cell))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")

		if i == 0 {
			sb.WriteString("|")
			for range row {
				sb.WriteString("---|")
			}
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
}

// collectRows gathers the cell texts of every <tr> beneath a table node.
func collectRows(n *html.Node) [][]string {
	var rows [][]string

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, nodeText(c))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)

	return rows
}

// nodeText returns the whitespace-normalized text content of a node.
func nodeText(n *html.Node) string {
	var sb strings.Builder

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}

// tidyExtracted collapses the blank-line runs left by block emission.
func tidyExtracted(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")

	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(text)
}
