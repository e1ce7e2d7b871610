package richtext

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

const (
	// blockClass marks every attributed block appended to a rich-text field
	blockClass = "tec-enrichment"
	// sourceAttr carries the source identity of a block
	sourceAttr = "data-source"
)

var (
	newlines   = regexp.MustCompile(`\r\n|\r|\n`)
	slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)
)

// SpecRow is one key/value row of a specification table
type SpecRow struct {
	Name  string
	Value string
}

// Section is one source's contribution to a rich-text field
type Section struct {
	// Source identifies the block, e.g. "icecat"
	Source string
	// Label is the human-readable attribution, e.g. "Icecat"
	Label string
	// Text is plain text; it is escaped and newlines become line breaks
	Text string
	// HTML is vendor markup; it is sanitized before being embedded
	HTML string
	// Specs is rendered as a table after the text
	Specs []SpecRow
}

// Composer renders attributed sections and appends them to accumulated rich text
//
//go:generate mockgen -source=composer.go -destination=../mocks/composer.go -package=mocks -mock_names=Composer=MockComposer
type Composer interface {
	// AppendSection renders section and appends it to existing.
	// An empty section returns existing unchanged.
	AppendSection(existing string, section Section) string
	// Sources lists the source identities of the blocks in richText, in order, without repeats
	Sources(richText string) ([]string, error)
	// RemoveSection drops every block tagged with source
	RemoveSection(richText string, source string) (string, error)
	// ReplaceSection drops the blocks a previous run left for section.Source and appends section.
	// An empty section returns existing unchanged.
	ReplaceSection(existing string, section Section) string
	// Sanitize strips unsafe markup from untrusted HTML
	Sanitize(untrusted string) string
}

type composer struct {
	policy *bluemonday.Policy
}

// NewComposer creates a composer with a UGC sanitization policy that keeps tables and lists
func NewComposer() Composer {
	policy := bluemonday.UGCPolicy()
	policy.AllowTables()
	policy.AllowLists()
	policy.AllowElements("br", "strong", "em", "b", "i", "u", "h2", "h3", "h4", "h5")

	return &composer{policy: policy}
}

func (c *composer) Sanitize(untrusted string) string {
	return strings.TrimSpace(c.policy.Sanitize(untrusted))
}

func (c *composer) AppendSection(existing string, section Section) string {
	block := c.render(section)
	if block == "" {
		return existing
	}
	return existing + block
}

func (c *composer) ReplaceSection(existing string, section Section) string {
	block := c.render(section)
	if block == "" {
		return existing
	}

	trimmed, err := c.RemoveSection(existing, strings.TrimSpace(section.Source))
	if err != nil {
		return existing + block
	}
	return trimmed + block
}

func (c *composer) render(section Section) string {
	text := strings.TrimSpace(section.Text)
	markup := ""
	if section.HTML != "" {
		markup = c.Sanitize(section.HTML)
	}
	rows := nonEmptyRows(section.Specs)

	if text == "" && markup == "" && len(rows) == 0 {
		return ""
	}

	source := strings.TrimSpace(section.Source)
	label := strings.TrimSpace(section.Label)
	if label == "" {
		label = source
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s %s" %s="%s">`,
		blockClass, SourceClass(source), sourceAttr, html.EscapeString(source))
	fmt.Fprintf(&b, `<p class="tec-enrichment-attribution"><i>Fuente: Información proveída por %s</i></p>`,
		html.EscapeString(label))

	if text != "" {
		escaped := html.EscapeString(text)
		fmt.Fprintf(&b, `<p class="tec-enrichment-text">%s</p>`, newlines.ReplaceAllString(escaped, "<br/>"))
	}

	if markup != "" {
		fmt.Fprintf(&b, `<div class="tec-enrichment-html">%s</div>`, markup)
	}

	if len(rows) > 0 {
		b.WriteString(`<table class="tec-enrichment-specs"><tbody>`)
		for _, row := range rows {
			fmt.Fprintf(&b, `<tr><th>%s</th><td>%s</td></tr>`,
				html.EscapeString(row.Name), html.EscapeString(row.Value))
		}
		b.WriteString(`</tbody></table>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

// SourceClass returns the per-source CSS class of a block, e.g. "tec-lenovo-psref-enrichment"
func SourceClass(source string) string {
	slug := strings.Trim(slugUnsafe.ReplaceAllString(strings.ToLower(source), "-"), "-")
	return "tec-" + slug + "-enrichment"
}

func nonEmptyRows(specs []SpecRow) []SpecRow {
	rows := make([]SpecRow, 0, len(specs))
	for _, row := range specs {
		name := strings.TrimSpace(row.Name)
		value := strings.TrimSpace(row.Value)
		if name == "" || value == "" {
			continue
		}
		rows = append(rows, SpecRow{Name: name, Value: value})
	}
	return rows
}

func (c *composer) Sources(richText string) ([]string, error) {
	if strings.TrimSpace(richText) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(richText))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rich text: %w", err)
	}

	var sources []string
	seen := make(map[string]bool)
	doc.Find("div." + blockClass + "[" + sourceAttr + "]").Each(func(_ int, s *goquery.Selection) {
		source, _ := s.Attr(sourceAttr)
		if source == "" || seen[source] {
			return
		}
		seen[source] = true
		sources = append(sources, source)
	})

	return sources, nil
}

func (c *composer) RemoveSection(richText string, source string) (string, error) {
	if strings.TrimSpace(richText) == "" {
		return richText, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(richText))
	if err != nil {
		return "", fmt.Errorf("failed to parse rich text: %w", err)
	}

	blocks := doc.Find("div." + blockClass).FilterFunction(func(_ int, s *goquery.Selection) bool {
		value, ok := s.Attr(sourceAttr)
		return ok && value == source
	})
	if blocks.Length() == 0 {
		return richText, nil
	}
	blocks.Remove()

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("failed to render rich text: %w", err)
	}
	return out, nil
}
