package domain

import (
	"fmt"
	"slices"
	"strings"
)

// LifecycleState is the enrichment progress of a product
type LifecycleState string

const (
	LifecycleDraft         LifecycleState = "draft"
	LifecycleTechDone      LifecycleState = "tech_done"
	LifecycleMarketingDone LifecycleState = "marketing_done"
	LifecycleFullEnriched  LifecycleState = "full_enriched"
)

// Valid reports whether s is a known lifecycle state
func (s LifecycleState) Valid() bool {
	switch s {
	case LifecycleDraft, LifecycleTechDone, LifecycleMarketingDone, LifecycleFullEnriched:
		return true
	}
	return false
}

// TechnicalDone reports whether the technical pass already succeeded at least once
func (s LifecycleState) TechnicalDone() bool {
	return s == LifecycleTechDone || s == LifecycleFullEnriched
}

// MarketingDone reports whether the marketing pass already succeeded at least once
func (s LifecycleState) MarketingDone() bool {
	return s == LifecycleMarketingDone || s == LifecycleFullEnriched
}

// AfterTechnical returns the state reached after a technical pass with at least one success
func (s LifecycleState) AfterTechnical() LifecycleState {
	if s.MarketingDone() {
		return LifecycleFullEnriched
	}
	return LifecycleTechDone
}

// AfterMarketing returns the state reached after a marketing pass with at least one success
func (s LifecycleState) AfterMarketing() LifecycleState {
	if s.TechnicalDone() {
		return LifecycleFullEnriched
	}
	return LifecycleMarketingDone
}

// Pass identifies an enrichment phase
type Pass string

const (
	PassTechnical Pass = "technical"
	PassMarketing Pass = "marketing"
)

// Valid reports whether p is a known pass
func (p Pass) Valid() bool {
	return p == PassTechnical || p == PassMarketing
}

// Source identifies a data source connector
type Source string

const (
	SourceLenovoPSREF     Source = "lenovo_psref"
	SourceIcecat          Source = "icecat"
	SourceBestBuy         Source = "bestbuy"
	SourceOpenProductData Source = "open_product_data"
	SourceGoogle          Source = "google"
	SourceYouTube         Source = "youtube"
	SourceAI              Source = "ai"
)

// Label returns the human readable attribution of a source
func (s Source) Label() string {
	switch s {
	case SourceLenovoPSREF:
		return "Lenovo PSREF"
	case SourceIcecat:
		return "Icecat"
	case SourceBestBuy:
		return "BestBuy"
	case SourceOpenProductData:
		return "Open Product Data"
	case SourceGoogle:
		return "Google"
	case SourceYouTube:
		return "YouTube"
	case SourceAI:
		return "AI"
	}
	return string(s)
}

// Tier groups technical sources by trust level
type Tier string

const (
	TierSpecialist Tier = "specialist"
	TierStructured Tier = "structured"
	TierFallback   Tier = "fallback"
	TierMarketing  Tier = "marketing"
)

// TierMode controls how a tier combines with the tiers before it
type TierMode string

const (
	// TierModeAdditive tiers always run and merge with earlier results
	TierModeAdditive TierMode = "additive"
	// TierModeExclusive tiers only run when nothing succeeded before and stop at their first success
	TierModeExclusive TierMode = "exclusive"
)

// Outcome is the classified result of one (product, source) call
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeMiss    Outcome = "miss"
	OutcomeError   Outcome = "error"
)

// AuditStatus is the status of an enrichment audit entry
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusPartial AuditStatus = "partial"
	AuditStatusError   AuditStatus = "error"
	AuditStatusSkipped AuditStatus = "skipped"
)

// AuditStatusFor derives the audit status of a product pass from its source outcomes
func AuditStatusFor(successes, failures int) AuditStatus {
	switch {
	case successes > 0 && failures == 0:
		return AuditStatusSuccess
	case successes == 0 && failures > 0:
		return AuditStatusError
	default:
		return AuditStatusPartial
	}
}

// ContributingSource returns the value stored as the product's last contributing source
func ContributingSource(sources []Source) string {
	switch len(sources) {
	case 0:
		return ""
	case 1:
		return string(sources[0])
	}
	return SOURCE_MIXED
}

// JoinSources renders a list of sources for audit summaries
func JoinSources(sources []Source) string {
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		if !slices.Contains(names, s.Label()) {
			names = append(names, s.Label())
		}
	}
	return strings.Join(names, ", ")
}

// AuditSummary formats the one-line summary of an audit entry
func AuditSummary(sourceTag string, productName string, partNumber string, message string) string {
	if partNumber == "" {
		return fmt.Sprintf("[Enrichment: %s] %s: %s", sourceTag, productName, message)
	}
	return fmt.Sprintf("[Enrichment: %s] %s (%s): %s", sourceTag, productName, partNumber, message)
}
