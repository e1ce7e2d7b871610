package enrichment

import (
	"context"
	"strings"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/media"
	"github.com/francuello10/tec-ecommerce-suite/internal/richtext"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
)

// Identity is what a connector knows about the product it looks up
type Identity struct {
	ProductID  int64
	PartNumber string
	Brand      string
	Barcode    string
	Name       string
	Category   string
	// HasDescription is set when the product already carries enriched text
	HasDescription bool
}

// IsBrand reports whether the product brand contains name, ignoring case
func (i Identity) IsBrand(name string) bool {
	return i.Brand != "" && strings.Contains(strings.ToLower(i.Brand), strings.ToLower(name))
}

// TechnicalResult is one connector's structured contribution
type TechnicalResult struct {
	Text         string
	HTML         string
	Specs        []richtext.SpecRow
	Images       []media.Candidate
	DatasheetURL string
	// ProductURL is the manufacturer's page for the product
	ProductURL string
}

// Empty reports whether the result carries nothing to merge
func (r *TechnicalResult) Empty() bool {
	if r == nil {
		return true
	}
	return strings.TrimSpace(r.Text) == "" &&
		strings.TrimSpace(r.HTML) == "" &&
		len(r.Specs) == 0 &&
		len(r.Images) == 0 &&
		strings.TrimSpace(r.DatasheetURL) == ""
}

// Connector is a named data source
type Connector interface {
	Source() domain.Source
}

// TechnicalConnector looks up specifications and imagery.
// A nil or empty result is a miss, an error is a failure. Implementations never touch the store.
//
//go:generate mockgen -source=connector.go -destination=../mocks/connector.go -package=mocks -mock_names=TechnicalConnector=MockTechnicalConnector,VideoConnector=MockVideoConnector,ContentConnector=MockContentConnector,Applicable=MockApplicable,ConnectorFactory=MockConnectorFactory
type TechnicalConnector interface {
	Connector
	FetchTechnical(ctx context.Context, id Identity) (*TechnicalResult, error)
}

// VideoConnector finds a product video; an empty URL is a miss
type VideoConnector interface {
	Connector
	FindVideo(ctx context.Context, id Identity) (string, error)
}

// ContentRequest carries the product facts the content model may see
type ContentRequest struct {
	Identity    Identity
	Description string
	Specs       []store.AttributeAssignment
	Template    string
	Inputs      PromptInputs
}

// ContentConnector asks a language model for marketing content and returns its raw reply
type ContentConnector interface {
	Connector
	GenerateContent(ctx context.Context, req ContentRequest) (string, error)
}

// Applicable is implemented by connectors that only serve some products
type Applicable interface {
	Applies(id Identity) bool
}

// TierConnectors is one tier of the technical waterfall with its enabled connectors in order
type TierConnectors struct {
	Tier       domain.Tier
	Mode       domain.TierMode
	Connectors []TechnicalConnector
}

// ConnectorSet is every connector enabled for a pass
type ConnectorSet struct {
	Tiers   []TierConnectors
	Video   VideoConnector
	Content ContentConnector
}

// ConnectorFactory builds the connectors enabled by a pass's settings
type ConnectorFactory interface {
	Build(settings Settings) ConnectorSet
}
