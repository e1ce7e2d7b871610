package normalizer

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
)

// sentinels are placeholder values spreadsheets use for "no value"
var sentinels = map[string]bool{
	"":      true,
	"NAN":   true,
	"NONE":  true,
	"NULL":  true,
	"0":     true,
	"FALSE": true,
}

// Normalizer resolves raw supplier labels to canonical brands and categories
//
//go:generate mockgen -source=normalizer.go -destination=../mocks/normalizer.go -package=mocks -mock_names=Normalizer=MockNormalizer
type Normalizer interface {
	// ResolveBrand resolves a raw brand label, or returns nil when it cannot
	ResolveBrand(ctx context.Context, raw string, autoCreate bool) (*store.Label, error)
	// ResolveCategory resolves a raw supplier category label, or returns nil when it cannot
	ResolveCategory(ctx context.Context, raw string, autoCreate bool) (*store.Label, error)
}

type normalizer struct {
	store store.Store
}

// NewNormalizer creates a new normalizer
func NewNormalizer(st store.Store) Normalizer {
	return &normalizer{store: st}
}

func (n *normalizer) ResolveBrand(ctx context.Context, raw string, autoCreate bool) (*store.Label, error) {
	return n.resolve(ctx, store.LabelKindBrand, raw, autoCreate)
}

func (n *normalizer) ResolveCategory(ctx context.Context, raw string, autoCreate bool) (*store.Label, error) {
	return n.resolve(ctx, store.LabelKindCategory, raw, autoCreate)
}

// resolve evaluates the resolution tiers in order; the first hit wins:
// sentinel, canonical name, learned alias, static alias (learned on hit), creation.
func (n *normalizer) resolve(ctx context.Context, kind store.LabelKind, raw string, autoCreate bool) (*store.Label, error) {
	label := CleanLabel(raw)
	if IsSentinel(label) {
		return nil, nil
	}

	found, err := n.store.FindLabelByName(ctx, kind, label)
	if err != nil {
		return nil, fmt.Errorf("failed to match %s name: %w", kind, err)
	}
	if found != nil {
		return found, nil
	}

	found, err = n.store.FindLabelByAlias(ctx, kind, label)
	if err != nil {
		return nil, fmt.Errorf("failed to match %s alias: %w", kind, err)
	}
	if found != nil {
		return found, nil
	}

	if canonical, ok := StaticAlias(kind, label); ok {
		found, err = n.store.FindLabelByName(ctx, kind, canonical)
		if err != nil {
			return nil, fmt.Errorf("failed to match canonical %s: %w", kind, err)
		}
		if found != nil {
			if err := n.store.CreateLabelAlias(ctx, kind, label, found.ID); err != nil {
				return nil, fmt.Errorf("failed to learn %s alias: %w", kind, err)
			}
			logger.InfoCtx(ctx, "Learned label alias",
				zap.String("kind", string(kind)),
				zap.String("alias", label),
				zap.String("canonical", found.Name),
			)
			return found, nil
		}
	}

	if !autoCreate {
		return nil, nil
	}

	created, err := n.store.CreateLabel(ctx, kind, label, false)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}
	logger.InfoCtx(ctx, "Created label",
		zap.String("kind", string(kind)),
		zap.String("name", created.Name),
	)
	return created, nil
}

// CleanLabel trims a label and collapses inner whitespace
func CleanLabel(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

// IsSentinel reports whether a label is blank or a placeholder such as "nan" or "null"
func IsSentinel(label string) bool {
	return sentinels[foldLabel(label)]
}

// StaticAlias looks a label up in the built-in alias table
func StaticAlias(kind store.LabelKind, label string) (string, bool) {
	canonical, ok := staticAliases[kind][foldLabel(label)]
	return canonical, ok
}

// foldLabel upper-cases a cleaned label and strips diacritics, so "Periféricos" matches "PERIFERICOS"
func foldLabel(label string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		CleanLabel(label),
	)
	if err != nil {
		stripped = CleanLabel(label)
	}
	return cases.Upper(language.Und).String(stripped)
}
