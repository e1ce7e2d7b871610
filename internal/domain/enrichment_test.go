package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleState_Transitions(t *testing.T) {
	tests := []struct {
		name           string
		state          LifecycleState
		afterTechnical LifecycleState
		afterMarketing LifecycleState
	}{
		{"draft", LifecycleDraft, LifecycleTechDone, LifecycleMarketingDone},
		{"empty state behaves as draft", "", LifecycleTechDone, LifecycleMarketingDone},
		{"tech done", LifecycleTechDone, LifecycleTechDone, LifecycleFullEnriched},
		{"marketing done", LifecycleMarketingDone, LifecycleFullEnriched, LifecycleMarketingDone},
		{"full enriched", LifecycleFullEnriched, LifecycleFullEnriched, LifecycleFullEnriched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.afterTechnical, tt.state.AfterTechnical())
			assert.Equal(t, tt.afterMarketing, tt.state.AfterMarketing())
		})
	}
}

func TestLifecycleState_Valid(t *testing.T) {
	assert.True(t, LifecycleDraft.Valid())
	assert.True(t, LifecycleFullEnriched.Valid())
	assert.False(t, LifecycleState("pending").Valid())
}

func TestAuditStatusFor(t *testing.T) {
	assert.Equal(t, AuditStatusSuccess, AuditStatusFor(2, 0))
	assert.Equal(t, AuditStatusPartial, AuditStatusFor(1, 1))
	assert.Equal(t, AuditStatusError, AuditStatusFor(0, 3))
	assert.Equal(t, AuditStatusPartial, AuditStatusFor(0, 0))
}

func TestContributingSource(t *testing.T) {
	assert.Equal(t, "", ContributingSource(nil))
	assert.Equal(t, "icecat", ContributingSource([]Source{SourceIcecat}))
	assert.Equal(t, SOURCE_MIXED, ContributingSource([]Source{SourceLenovoPSREF, SourceIcecat}))
}

func TestJoinSources(t *testing.T) {
	assert.Equal(t, "Lenovo PSREF, Icecat", JoinSources([]Source{SourceLenovoPSREF, SourceIcecat, SourceLenovoPSREF}))
	assert.Equal(t, "", JoinSources(nil))
}

func TestAuditSummary(t *testing.T) {
	assert.Equal(t,
		"[Enrichment: Icecat] ThinkPad X1 (21HM0001US): data merged",
		AuditSummary("Icecat", "ThinkPad X1", "21HM0001US", "data merged"))
	assert.Equal(t,
		"[Enrichment: AI] Mouse: no data",
		AuditSummary("AI", "Mouse", "", "no data"))
}
