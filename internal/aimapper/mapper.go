package aimapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/richtext"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
)

// Target is the product state the mapper writes into
type Target struct {
	Name                 string
	OriginalName         *string
	EnrichedDescription  string
	TechnicalDescription string
	MarketingDescription string
	Attributes           []store.AttributeAssignment
}

// AppliedFields summarizes what Apply changed
type AppliedFields struct {
	Name                 bool
	OriginalNameBackedUp bool
	MarketingDescription bool
	TechnicalDescription bool
	// Attributes lists the staged attribute names
	Attributes []string
	// Rejected lists attribute names dropped by the blacklist or for having no usable value
	Rejected []string
	// AttributesError is set when the attributes map could not be decoded
	AttributesError error
}

// Any reports whether at least one field was applied
func (a AppliedFields) Any() bool {
	return a.Name || a.MarketingDescription || a.TechnicalDescription || len(a.Attributes) > 0
}

// Fields lists the applied field names for audit details
func (a AppliedFields) Fields() []string {
	var fields []string
	if a.Name {
		fields = append(fields, "name")
	}
	if a.MarketingDescription {
		fields = append(fields, "marketing_description")
	}
	if a.TechnicalDescription {
		fields = append(fields, "technical_description")
	}
	if len(a.Attributes) > 0 {
		fields = append(fields, "attributes")
	}
	return fields
}

// Mapper maps a parsed model reply onto a product
//
//go:generate mockgen -source=mapper.go -destination=../mocks/aimapper.go -package=mocks -mock_names=Mapper=MockAIMapper
type Mapper interface {
	// Apply writes resp into target. Attribute decoding failures are reported in the
	// summary and never prevent the name and description updates.
	Apply(target *Target, resp *Response) AppliedFields
}

type mapper struct {
	composer richtext.Composer
}

// NewMapper creates a mapper that sanitizes markup with composer
func NewMapper(composer richtext.Composer) Mapper {
	return &mapper{composer: composer}
}

func (m *mapper) Apply(target *Target, resp *Response) AppliedFields {
	var applied AppliedFields
	if target == nil || resp == nil {
		return applied
	}

	if resp.SEOName != "" && resp.SEOName != target.Name {
		if target.OriginalName == nil {
			original := target.Name
			target.OriginalName = &original
			applied.OriginalNameBackedUp = true
		}
		target.Name = resp.SEOName
		applied.Name = true
	}

	if marketing := m.composer.Sanitize(resp.MarketingHTML); marketing != "" {
		target.MarketingDescription = marketing
		target.EnrichedDescription = m.composer.ReplaceSection(target.EnrichedDescription, richtext.Section{
			Source: string(domain.SourceAI),
			Label:  domain.SourceAI.Label(),
			HTML:   marketing,
		})
		applied.MarketingDescription = true
	}

	if technical := m.composer.Sanitize(resp.TechnicalHTML); technical != "" {
		target.TechnicalDescription = technical
		applied.TechnicalDescription = true
	}

	if len(resp.Attributes) > 0 {
		assignments, rejected, err := DecodeAttributes(resp.Attributes)
		applied.Rejected = rejected
		if err != nil {
			applied.AttributesError = err
		} else {
			target.Attributes = mergeAssignments(target.Attributes, assignments)
			for _, a := range assignments {
				applied.Attributes = append(applied.Attributes, a.Name)
			}
		}
	}

	return applied
}

// DecodeAttributes turns the raw attributes map into assignments sorted by name.
// Reserved names and values that cannot be rendered as text are returned as rejected.
func DecodeAttributes(raw json.RawMessage) ([]store.AttributeAssignment, []string, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var values map[string]any
	if err := decoder.Decode(&values); err != nil {
		return nil, nil, fmt.Errorf("failed to decode attributes: %w", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var assignments []store.AttributeAssignment
	var rejected []string
	for _, name := range names {
		clean := strings.Join(strings.Fields(name), " ")
		if IsReservedAttribute(clean) {
			rejected = append(rejected, name)
			continue
		}
		value, ok := stringify(values[name])
		if !ok {
			rejected = append(rejected, name)
			continue
		}
		assignments = append(assignments, store.AttributeAssignment{Name: clean, Value: value})
	}

	return assignments, rejected, nil
}

// stringify renders scalar values and lists of scalars as attribute text
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		s := strings.Join(strings.Fields(v), " ")
		return s, s != ""
	case json.Number:
		return v.String(), true
	case bool:
		if v {
			return "Sí", true
		}
		return "No", true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := stringify(item); ok {
				parts = append(parts, s)
			}
		}
		s := strings.Join(parts, ", ")
		return s, s != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

// mergeAssignments keeps one value per attribute name, later values winning
func mergeAssignments(existing []store.AttributeAssignment, incoming []store.AttributeAssignment) []store.AttributeAssignment {
	merged := append([]store.AttributeAssignment(nil), existing...)
	for _, in := range incoming {
		replaced := false
		for i := range merged {
			if strings.EqualFold(merged[i].Name, in.Name) {
				merged[i].Value = in.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, in)
		}
	}
	return merged
}
