package aimapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
)

var fence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// Response is the decoded reply of the content model
type Response struct {
	SEOName       string
	MarketingHTML string
	TechnicalHTML string
	// Attributes is kept undecoded so a malformed map cannot spoil the other fields
	Attributes json.RawMessage
}

type wireResponse struct {
	SEOName              string          `json:"seo_name"`
	MarketingHTML        string          `json:"marketing_html"`
	MarketingDescription string          `json:"marketing_description"`
	TechnicalHTML        string          `json:"technical_html"`
	Attributes           json.RawMessage `json:"attributes"`
}

// Parse extracts the outermost JSON object of a model reply.
// Markdown code fences and leading or trailing chatter are tolerated.
func Parse(raw string) (*Response, error) {
	body := strings.TrimSpace(raw)
	if m := fence.FindStringSubmatch(body); m != nil {
		body = m[1]
	}

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object found", domain.ErrInvalidAIResponse)
	}

	var wire wireResponse
	if err := json.Unmarshal([]byte(body[start:end+1]), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAIResponse, err)
	}

	marketing := wire.MarketingHTML
	if strings.TrimSpace(marketing) == "" {
		marketing = wire.MarketingDescription
	}

	resp := &Response{
		SEOName:       strings.TrimSpace(wire.SEOName),
		MarketingHTML: strings.TrimSpace(marketing),
		TechnicalHTML: strings.TrimSpace(wire.TechnicalHTML),
	}
	if trimmed := bytes.TrimSpace(wire.Attributes); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		resp.Attributes = trimmed
	}

	return resp, nil
}

// Empty reports whether the response carries nothing to apply
func (r *Response) Empty() bool {
	return r.SEOName == "" && r.MarketingHTML == "" && r.TechnicalHTML == "" && len(r.Attributes) == 0
}
