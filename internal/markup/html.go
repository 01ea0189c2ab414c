package markup

import (
	"regexp"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	spaceRun   = regexp.MustCompile(`[ \t\r\n\f]+`)
	blankLines = regexp.MustCompile(`\n{3,}`)
)

// ToMarkdown converts an HTML document or fragment to Markdown. Input that
// fails to parse is returned unchanged.
func ToMarkdown(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	doc, err := xhtml.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}
	c := &converter{}
	return tidy(c.render(doc))
}

func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""
		} else {
			lines[i] = strings.TrimRight(l, " \t")
		}
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

type converter struct {
	pre int
}

func isBlock(n *xhtml.Node) bool {
	if n == nil || n.Type != xhtml.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Li, atom.Pre, atom.Blockquote, atom.Hr, atom.Br,
		atom.Table, atom.Thead, atom.Tbody, atom.Tr, atom.Td, atom.Th,
		atom.Body, atom.Html, atom.Head:
		return true
	}
	return false
}

func (c *converter) children(n *xhtml.Node) string {
	var sb strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == xhtml.TextNode && c.pre == 0 {
			s := spaceRun.ReplaceAllString(ch.Data, " ")
			prevBlock := isBlock(ch.PrevSibling) || (ch.PrevSibling == nil && isBlock(n))
			nextBlock := isBlock(ch.NextSibling) || (ch.NextSibling == nil && isBlock(n))
			if prevBlock {
				s = strings.TrimLeft(s, " ")
			}
			if nextBlock {
				s = strings.TrimRight(s, " ")
			}
			sb.WriteString(s)
			continue
		}
		sb.WriteString(c.render(ch))
	}
	return sb.String()
}

func (c *converter) render(n *xhtml.Node) string {
	switch n.Type {
	case xhtml.TextNode:
		if c.pre > 0 {
			return n.Data
		}
		return spaceRun.ReplaceAllString(n.Data, " ")
	case xhtml.DocumentNode:
		return c.children(n)
	case xhtml.ElementNode:
	default:
		return ""
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head, atom.Title, atom.Meta, atom.Link:
		return ""
	case atom.Br:
		return "\n"
	case atom.Hr:
		return "\n\n---\n\n"
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		return "\n\n" + strings.Repeat("#", level) + " " + strings.TrimSpace(c.children(n)) + "\n\n"
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Header, atom.Footer:
		return "\n\n" + strings.TrimSpace(c.children(n)) + "\n\n"
	case atom.Strong, atom.B:
		return wrap(c.children(n), "**")
	case atom.Em, atom.I:
		return wrap(c.children(n), "*")
	case atom.Del, atom.S, atom.Strike:
		return wrap(c.children(n), "~~")
	case atom.Code:
		if c.pre > 0 {
			return c.children(n)
		}
		return wrap(c.children(n), "`")
	case atom.Pre:
		c.pre++
		body := c.children(n)
		c.pre--
		return "\n\n```\n" + strings.Trim(body, "\n") + "\n```\n\n"
	case atom.A:
		text := strings.TrimSpace(c.children(n))
		href := attr(n, "href")
		if href == "" || href == text {
			return text
		}
		if text == "" {
			text = href
		}
		return "[" + text + "](" + href + ")"
	case atom.Img:
		src := attr(n, "src")
		if src == "" {
			return ""
		}
		return "![" + attr(n, "alt") + "](" + src + ")"
	case atom.Ul, atom.Ol:
		return c.list(n)
	case atom.Blockquote:
		inner := tidy(c.children(n))
		lines := strings.Split(inner, "\n")
		for i, l := range lines {
			if l == "" {
				lines[i] = ">"
			} else {
				lines[i] = "> " + l
			}
		}
		return "\n\n" + strings.Join(lines, "\n") + "\n\n"
	case atom.Table:
		return c.table(n)
	}
	return c.children(n)
}

func (c *converter) list(n *xhtml.Node) string {
	ordered := n.DataAtom == atom.Ol
	index := 1
	if v, err := strconv.Atoi(attr(n, "start")); err == nil {
		index = v
	}
	var items []string
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != xhtml.ElementNode || li.DataAtom != atom.Li {
			continue
		}
		marker := "- "
		if ordered {
			marker = strconv.Itoa(index) + ". "
			index++
		}
		body := tidy(c.children(li))
		body = strings.ReplaceAll(body, "\n\n", "\n")
		lines := strings.Split(body, "\n")
		indent := strings.Repeat(" ", len(marker))
		for i := 1; i < len(lines); i++ {
			if lines[i] != "" {
				lines[i] = indent + lines[i]
			}
		}
		items = append(items, marker+strings.Join(lines, "\n"))
	}
	return "\n\n" + strings.Join(items, "\n") + "\n\n"
}

func (c *converter) table(n *xhtml.Node) string {
	var rows [][]string
	var walk func(*xhtml.Node)
	walk = func(node *xhtml.Node) {
		for ch := node.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type != xhtml.ElementNode {
				continue
			}
			if ch.DataAtom == atom.Tr {
				var cells []string
				for td := ch.FirstChild; td != nil; td = td.NextSibling {
					if td.Type == xhtml.ElementNode && (td.DataAtom == atom.Td || td.DataAtom == atom.Th) {
						cell := strings.ReplaceAll(tidy(c.children(td)), "\n", " ")
						cells = append(cells, strings.ReplaceAll(cell, "|", `\|`))
					}
				}
				rows = append(rows, cells)
				continue
			}
			walk(ch)
		}
	}
	walk(n)
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\n")
	for i, row := range rows {
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
		if i == 0 {
			seps := make([]string, len(row))
			for j := range seps {
				seps[j] = "---"
			}
			sb.WriteString("| " + strings.Join(seps, " | ") + " |\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// wrap surrounds the trimmed inner text with marker, keeping the outer
// whitespace outside the markers.
func wrap(inner, marker string) string {
	trimmed := strings.TrimSpace(inner)
	if trimmed == "" {
		return inner
	}
	lead := inner[:len(inner)-len(strings.TrimLeft(inner, " "))]
	trail := inner[len(strings.TrimRight(inner, " ")):]
	return lead + marker + trimmed + marker + trail
}

func attr(n *xhtml.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
