package enrichment

import "github.com/francuello10/tec-ecommerce-suite/internal/domain"

// TierPolicy is one row of the tier table
type TierPolicy struct {
	Tier    domain.Tier
	Mode    domain.TierMode
	Sources []domain.Source
}

// Policy is the ordered tier table of the technical pass
type Policy []TierPolicy

// DefaultPolicy runs the specialist and structured tiers additively and
// falls back to the first fallback source that finds anything
var DefaultPolicy = Policy{
	{
		Tier:    domain.TierSpecialist,
		Mode:    domain.TierModeAdditive,
		Sources: []domain.Source{domain.SourceLenovoPSREF},
	},
	{
		Tier:    domain.TierStructured,
		Mode:    domain.TierModeAdditive,
		Sources: []domain.Source{domain.SourceIcecat},
	},
	{
		Tier:    domain.TierFallback,
		Mode:    domain.TierModeExclusive,
		Sources: []domain.Source{domain.SourceBestBuy, domain.SourceOpenProductData, domain.SourceGoogle},
	},
}

// TierOf returns the tier a source belongs to, or TierMarketing when it is not technical
func (p Policy) TierOf(source domain.Source) domain.Tier {
	for _, row := range p {
		for _, s := range row.Sources {
			if s == source {
				return row.Tier
			}
		}
	}
	return domain.TierMarketing
}

// ShouldRun reports whether a tier runs given the successes accumulated so far in the pass
func ShouldRun(mode domain.TierMode, successes int) bool {
	return mode != domain.TierModeExclusive || successes == 0
}
