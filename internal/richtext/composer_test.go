package richtext

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, richText string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(richText))
	require.NoError(t, err)
	return doc
}

func TestComposer_AppendSection(t *testing.T) {
	c := NewComposer()

	out := c.AppendSection("<p>supplier text</p>", Section{
		Source: "lenovo_psref",
		Label:  "Lenovo PSREF",
		Text:   "Line one\nLine <two>",
		Specs: []SpecRow{
			{Name: "Processor", Value: "Intel Core i7"},
			{Name: "", Value: "ignored"},
			{Name: "RAM", Value: "  "},
		},
	})

	assert.True(t, strings.HasPrefix(out, "<p>supplier text</p>"))

	doc := parse(t, out)
	block := doc.Find("div.tec-enrichment")
	require.Equal(t, 1, block.Length())
	assert.True(t, block.HasClass("tec-lenovo-psref-enrichment"))
	source, _ := block.Attr("data-source")
	assert.Equal(t, "lenovo_psref", source)
	assert.Contains(t, block.Find(".tec-enrichment-attribution").Text(), "Lenovo PSREF")

	textHTML, err := block.Find(".tec-enrichment-text").Html()
	require.NoError(t, err)
	assert.Equal(t, "Line one<br/>Line &lt;two&gt;", textHTML)

	rows := block.Find("table.tec-enrichment-specs tr")
	require.Equal(t, 1, rows.Length())
	assert.Equal(t, "Processor", rows.Find("th").Text())
	assert.Equal(t, "Intel Core i7", rows.Find("td").Text())
}

func TestComposer_AppendSection_EmptyContributionIsNoop(t *testing.T) {
	c := NewComposer()
	existing := `<div class="tec-enrichment" data-source="icecat">x</div>`

	tests := []struct {
		name    string
		section Section
	}{
		{name: "nothing", section: Section{Source: "bestbuy"}},
		{name: "whitespace text", section: Section{Source: "bestbuy", Text: " \n "}},
		{name: "rows without values", section: Section{Source: "bestbuy", Specs: []SpecRow{{Name: "A"}}}},
		{name: "html sanitized to nothing", section: Section{Source: "bestbuy", HTML: "<script>alert(1)</script>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, existing, c.AppendSection(existing, tt.section))
		})
	}
}

func TestComposer_AppendSection_SanitizesVendorHTML(t *testing.T) {
	c := NewComposer()

	out := c.AppendSection("", Section{
		Source: "bestbuy",
		Label:  "Best Buy",
		HTML:   `<ul><li onclick="x()">Fast</li></ul><div class="tec-enrichment" data-source="icecat">spoof</div><script>bad()</script>`,
	})

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "<li>Fast</li>")

	sources, err := c.Sources(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"bestbuy"}, sources)
}

func TestComposer_AppendIsMonotonic(t *testing.T) {
	c := NewComposer()

	out := c.AppendSection("", Section{Source: "lenovo_psref", Label: "Lenovo PSREF", Text: "first"})
	first := out
	out = c.AppendSection(out, Section{Source: "icecat", Label: "Icecat", Text: "second"})

	assert.True(t, strings.HasPrefix(out, first))

	sources, err := c.Sources(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"lenovo_psref", "icecat"}, sources)
}

func TestComposer_RemoveSection(t *testing.T) {
	c := NewComposer()

	out := c.AppendSection("<p>base</p>", Section{Source: "icecat", Label: "Icecat", Text: "a"})
	out = c.AppendSection(out, Section{Source: "google", Label: "Google", Text: "b"})

	removed, err := c.RemoveSection(out, "google")
	require.NoError(t, err)

	sources, err := c.Sources(removed)
	require.NoError(t, err)
	assert.Equal(t, []string{"icecat"}, sources)
	assert.Contains(t, removed, "<p>base</p>")

	unchanged, err := c.RemoveSection(out, "youtube")
	require.NoError(t, err)
	assert.Equal(t, out, unchanged)
}

func TestComposer_ReplaceSection(t *testing.T) {
	c := NewComposer()

	out := c.AppendSection("<p>base</p>", Section{Source: "icecat", Label: "Icecat", Text: "specs"})
	out = c.ReplaceSection(out, Section{Source: "ai", Label: "IA", HTML: "<p>first copy</p>"})
	out = c.ReplaceSection(out, Section{Source: "ai", Label: "IA", HTML: "<p>second copy</p>"})

	sources, err := c.Sources(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"icecat", "ai"}, sources)
	assert.Equal(t, 1, strings.Count(out, `data-source="ai"`))
	assert.NotContains(t, out, "first copy")
	assert.Contains(t, out, "second copy")
	assert.Contains(t, out, "<p>base</p>")

	assert.Equal(t, out, c.ReplaceSection(out, Section{Source: "ai", Label: "IA"}))
}

func TestSourceClass(t *testing.T) {
	assert.Equal(t, "tec-icecat-enrichment", SourceClass("icecat"))
	assert.Equal(t, "tec-open-product-data-enrichment", SourceClass("open_product_data"))
	assert.Equal(t, "tec-ai-enrichment", SourceClass(" AI "))
}
