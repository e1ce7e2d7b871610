package media

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
)

// Candidate is an image offered by a connector: a URL to download or an inline payload
type Candidate struct {
	URL     string
	Caption string
	Payload []byte
}

// Key is the dedup key; inline payloads without a URL are keyed by content
func (c Candidate) Key() string {
	if url := strings.TrimSpace(c.URL); url != "" {
		return url
	}
	if len(c.Payload) == 0 {
		return ""
	}
	sum := sha256.Sum256(c.Payload)
	return "inline:" + hex.EncodeToString(sum[:16])
}

// StagedImage is an admitted and downloaded image waiting to be committed
type StagedImage struct {
	SourceURL string
	Name      string
	Sequence  int
	Decision  Decision
	Source    domain.Source
	Image     *Image
}

// PlanInput describes one connector invocation's candidates
type PlanInput struct {
	Tier       domain.Tier
	Source     domain.Source
	Label      string
	Candidates []Candidate
	// Limit caps the admitted images; zero means no cap
	Limit int
}

// Planner admits, downloads and sequences a connector's image candidates
//
//go:generate mockgen -source=planner.go -destination=../mocks/planner.go -package=mocks -mock_names=Planner=MockPlanner
type Planner interface {
	// Plan processes candidates in order against dedup. Candidates that are already seen,
	// fail to download or are not images are rejected silently.
	Plan(ctx context.Context, dedup *Deduplicator, input PlanInput) []StagedImage
}

type planner struct {
	fetcher Fetcher
}

// NewPlanner creates a planner backed by fetcher
func NewPlanner(fetcher Fetcher) Planner {
	return &planner{fetcher: fetcher}
}

func (p *planner) Plan(ctx context.Context, dedup *Deduplicator, input PlanInput) []StagedImage {
	var staged []StagedImage
	base := BandBase(input.Tier) + dedup.GalleryCount()
	galleryIndex := 0

	for _, candidate := range input.Candidates {
		if input.Limit > 0 && len(staged) >= input.Limit {
			break
		}
		if ctx.Err() != nil {
			break
		}

		key := candidate.Key()
		if key == "" || dedup.Seen(key) {
			continue
		}

		img, err := p.load(ctx, candidate)
		if err != nil {
			dedup.MarkSeen(key)
			logger.DebugCtx(ctx, "Image candidate rejected",
				zap.String("source", string(input.Source)),
				zap.String("url", candidate.URL),
				zap.Error(err),
			)
			continue
		}

		decision := dedup.Admit(key)
		if decision == DecisionReject {
			continue
		}

		image := StagedImage{
			SourceURL: key,
			Name:      imageName(input.Label, candidate.Caption, len(staged)+1),
			Decision:  decision,
			Source:    input.Source,
			Image:     img,
		}
		if decision == DecisionGallery {
			image.Sequence = base + galleryIndex
			galleryIndex++
		}
		staged = append(staged, image)
	}

	return staged
}

func (p *planner) load(ctx context.Context, candidate Candidate) (*Image, error) {
	if len(candidate.Payload) > 0 {
		return p.fetcher.Prepare(candidate.Payload)
	}
	return p.fetcher.Fetch(ctx, strings.TrimSpace(candidate.URL))
}

func imageName(label string, caption string, n int) string {
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return fmt.Sprintf("%s View %d", label, n)
	}
	return fmt.Sprintf("%s - %s", label, caption)
}
