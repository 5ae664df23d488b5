// Package describe turns an adventofcode.com puzzle page into markdown and
// renders it for the terminal.
package describe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/net/html"
)

// ErrNoArticle means the page held no puzzle description.
var ErrNoArticle = errors.New("no puzzle description on page")

var (
	multiNewline = regexp.MustCompile(`\n{3,}`)
	multiSpace   = regexp.MustCompile(`[ \t]+`)
)

// Markdown extracts every <article class="day-desc"> of page as markdown.
// Relative links are resolved against baseURL.
func Markdown(page, baseURL string) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	var articles []*html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "article" && hasClass(n, "day-desc") {
			articles = append(articles, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if len(articles) == 0 {
		return "", ErrNoArticle
	}

	conv := &converter{base: strings.TrimRight(baseURL, "/")}
	for _, a := range articles {
		conv.children(a)
		conv.sb.WriteString("\n\n")
	}
	return clean(conv.sb.String()), nil
}

type converter struct {
	sb     strings.Builder
	base   string
	inPre  bool
	inCode bool
}

func (c *converter) children(n *html.Node) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.node(ch)
	}
}

func (c *converter) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if c.inPre {
			c.sb.WriteString(n.Data)
			return
		}
		c.sb.WriteString(multiSpace.ReplaceAllString(strings.ReplaceAll(n.Data, "\n", " "), " "))
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.Data {
	case "script", "style":
	case "h2":
		c.sb.WriteString("\n\n## ")
		c.children(n)
		c.sb.WriteString("\n\n")
	case "p":
		c.sb.WriteString("\n\n")
		c.children(n)
		c.sb.WriteString("\n\n")
	case "pre":
		c.sb.WriteString("\n\n```\n")
		c.inPre = true
		c.children(n)
		c.inPre = false
		if !strings.HasSuffix(c.sb.String(), "\n") {
			c.sb.WriteString("\n")
		}
		c.sb.WriteString("```\n\n")
	case "code":
		if c.inPre || c.inCode {
			c.children(n)
			return
		}
		c.sb.WriteString("`")
		c.inCode = true
		c.children(n)
		c.inCode = false
		c.sb.WriteString("`")
	case "em":
		if c.inPre || c.inCode {
			c.children(n)
			return
		}
		c.sb.WriteString("**")
		c.children(n)
		c.sb.WriteString("**")
	case "ul":
		c.sb.WriteString("\n")
		c.children(n)
		c.sb.WriteString("\n")
	case "li":
		c.sb.WriteString("\n- ")
		c.children(n)
	case "a":
		href := attr(n, "href")
		if href == "" || c.inPre {
			c.children(n)
			return
		}
		if strings.HasPrefix(href, "/") {
			href = c.base + href
		}
		c.sb.WriteString("[")
		c.children(n)
		c.sb.WriteString("](" + href + ")")
	default:
		c.children(n)
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// clean collapses blank runs and strips trailing spaces outside code blocks.
func clean(s string) string {
	lines := strings.Split(s, "\n")
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if !inFence {
			lines[i] = strings.TrimSpace(line)
		}
	}
	s = strings.Join(lines, "\n")
	s = multiNewline.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s) + "\n"
}

// Render formats markdown for a terminal. style is a glamour style name;
// empty picks one from the terminal background.
func Render(markdown, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render: %w", err)
	}
	return out, nil
}

// Cache stores fetched pages as dayN.html under Dir.
type Cache struct {
	Dir string
}

func (c Cache) path(day int) string {
	return filepath.Join(c.Dir, fmt.Sprintf("day%d.html", day))
}

// Get returns the cached page of day; ok is false when it is not cached.
func (c Cache) Get(day int) (page string, ok bool, err error) {
	data, err := os.ReadFile(c.path(day))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached page: %w", err)
	}
	return string(data), true, nil
}

// Put stores the page of day.
func (c Cache) Put(day int, page []byte) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path(day), page, 0644); err != nil {
		return fmt.Errorf("failed to cache page: %w", err)
	}
	return nil
}
