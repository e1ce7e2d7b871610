package enrichment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/francuello10/tec-ecommerce-suite/internal/adapter"
	"github.com/francuello10/tec-ecommerce-suite/internal/aimapper"
	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	"github.com/francuello10/tec-ecommerce-suite/internal/media"
	"github.com/francuello10/tec-ecommerce-suite/internal/messaging"
	"github.com/francuello10/tec-ecommerce-suite/internal/richtext"
	"github.com/francuello10/tec-ecommerce-suite/internal/store"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

const (
	auditSourceNone  = "Enricher"
	auditSourceStore = "store"
)

// Orchestrator runs enrichment passes over batches of products
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// RunTechnicalPass fetches specifications and imagery through the tier table.
	// The report is returned even when the batch is aborted by a checkpoint failure.
	RunTechnicalPass(ctx context.Context, productIDs []int64, settings Settings) (*Report, error)
	// RunMarketingPass finds videos and generates marketing content
	RunMarketingPass(ctx context.Context, productIDs []int64, settings Settings) (*Report, error)
}

// Deps are the collaborators of the orchestrator
type Deps struct {
	Store     store.Store
	Factory   ConnectorFactory
	Planner   media.Planner
	Composer  richtext.Composer
	Mapper    aimapper.Mapper
	Publisher messaging.Publisher
	JCS       adapter.JCS
	Clock     adapter.Clock
}

type orchestrator struct {
	store     store.Store
	factory   ConnectorFactory
	planner   media.Planner
	composer  richtext.Composer
	mapper    aimapper.Mapper
	publisher messaging.Publisher
	jcs       adapter.JCS
	clock     adapter.Clock
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(deps Deps) Orchestrator {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	return &orchestrator{
		store:     deps.Store,
		factory:   deps.Factory,
		planner:   deps.Planner,
		composer:  deps.Composer,
		mapper:    deps.Mapper,
		publisher: publisher,
		jcs:       deps.JCS,
		clock:     deps.Clock,
	}
}

// productFunc processes one product; a non-nil error aborts the batch
type productFunc func(ctx context.Context, runID string, productID int64) (ProductOutcome, error)

func (o *orchestrator) RunTechnicalPass(ctx context.Context, productIDs []int64, settings Settings) (*Report, error) {
	set := o.factory.Build(settings)
	return o.run(ctx, domain.PassTechnical, productIDs, settings, func(ctx context.Context, runID string, productID int64) (ProductOutcome, error) {
		return o.technical(ctx, runID, set, settings, productID)
	})
}

func (o *orchestrator) RunMarketingPass(ctx context.Context, productIDs []int64, settings Settings) (*Report, error) {
	set := o.factory.Build(settings)
	return o.run(ctx, domain.PassMarketing, productIDs, settings, func(ctx context.Context, runID string, productID int64) (ProductOutcome, error) {
		return o.marketing(ctx, runID, set, settings, productID)
	})
}

// run processes products on a pool of settings.Concurrency workers.
// Each product is handled by a single worker from load to commit.
func (o *orchestrator) run(parent context.Context, pass domain.Pass, productIDs []int64, settings Settings, process productFunc) (*Report, error) {
	startedAt := o.clock.Now()
	runID := ulid.MustNewDefault(startedAt).String()
	parent = logger.WithRun(parent, runID)

	logger.InfoCtx(parent, "Starting enrichment pass",
		zap.String("pass", string(pass)),
		zap.Int("products", len(productIDs)),
		zap.Int("concurrency", settings.Concurrency),
	)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	concurrency := settings.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	pool := pond.NewPool(concurrency, pond.WithContext(ctx))

	outcomes := make([]ProductOutcome, len(productIDs))
	done := make([]bool, len(productIDs))

	var fatalOnce sync.Once
	var fatal error

	group := pool.NewGroup()
	for i, productID := range productIDs {
		group.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			outcome, err := process(ctx, runID, productID)
			outcomes[i] = outcome
			done[i] = true
			if err != nil {
				fatalOnce.Do(func() {
					fatal = err
					cancel()
				})
			}
		})
	}
	// Cancellation surfaces through fatal or the parent context
	_ = group.Wait()
	pool.StopAndWait()

	processed := make([]ProductOutcome, 0, len(productIDs))
	for i := range outcomes {
		if done[i] {
			processed = append(processed, outcomes[i])
		}
	}

	if fatal == nil && parent.Err() != nil {
		fatal = parent.Err()
	}

	report := newReport(runID, pass, processed, startedAt, o.clock.Now())
	if fatal != nil {
		logger.ErrorCtx(parent, fmt.Errorf("enrichment pass aborted: %w", fatal),
			zap.String("pass", string(pass)),
			zap.Int("processed", report.Processed),
			zap.Int("total", len(productIDs)),
		)
		return report, fatal
	}

	logger.InfoCtx(parent, "Enrichment pass finished",
		zap.String("pass", string(pass)),
		zap.String("message", report.Message),
	)
	return report, nil
}

// load fetches a product; a missing product is a product failure, not a batch failure.
// A read error for a product that exists is audited; a missing product has no row to audit against.
func (o *orchestrator) load(ctx context.Context, runID string, pass domain.Pass, productID int64) (*schema.Product, *ProductOutcome, error) {
	product, err := o.store.GetProductByID(ctx, productID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load product: %w", err), zap.Int64("productID", productID))
		outcome, err := o.fail(ctx, runID, pass, &schema.Product{ID: productID}, err)
		return nil, &outcome, err
	}
	if product == nil {
		logger.WarnCtx(ctx, "Product not found", zap.Int64("productID", productID))
		return nil, &ProductOutcome{ProductID: productID, Status: domain.AuditStatusError, Error: domain.ErrProductNotFound.Error()}, nil
	}
	return product, nil, nil
}

func (o *orchestrator) technical(ctx context.Context, runID string, set ConnectorSet, settings Settings, productID int64) (ProductOutcome, error) {
	product, failed, err := o.load(ctx, runID, domain.PassTechnical, productID)
	if failed != nil {
		return *failed, err
	}

	if product.EnrichmentState.TechnicalDone() && !product.ForceEnrichment {
		return o.skip(ctx, runID, domain.PassTechnical, product, "already enriched")
	}

	identity := identityOf(product)
	if identity.PartNumber == "" {
		return o.skip(ctx, runID, domain.PassTechnical, product, domain.ErrMissingPartNumber.Error())
	}

	gallery, err := o.store.GetProductGallery(ctx, productID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to load gallery: %w", err), zap.Int64("productID", productID))
		return o.fail(ctx, runID, domain.PassTechnical, product, err)
	}

	draft := NewDraft(product, gallery)
	var calls []sourceCall
	var successes []domain.Source

	for _, tier := range set.Tiers {
		if !ShouldRun(tier.Mode, len(successes)) {
			continue
		}
		for _, connector := range tier.Connectors {
			if a, ok := connector.(Applicable); ok && !a.Applies(identity) {
				continue
			}

			call, staged := o.callTechnical(ctx, draft, tier.Tier, connector, identity, settings)
			calls = append(calls, call)
			if call.result.Outcome != domain.OutcomeSuccess {
				continue
			}

			draft = staged
			successes = append(successes, connector.Source())
			if tier.Mode == domain.TierModeExclusive {
				break
			}
		}
	}

	var message string
	switch {
	case len(successes) > 0:
		message = "technical data obtained from " + domain.JoinSources(successes)
	case hasErrors(calls):
		message = "every consulted source failed"
	default:
		message = "no technical data found in any consulted source"
	}

	return o.commit(ctx, commitInput{
		runID:     runID,
		pass:      domain.PassTechnical,
		product:   product,
		draft:     draft,
		calls:     calls,
		successes: successes,
		message:   message,
	})
}

func (o *orchestrator) marketing(ctx context.Context, runID string, set ConnectorSet, settings Settings, productID int64) (ProductOutcome, error) {
	product, failed, err := o.load(ctx, runID, domain.PassMarketing, productID)
	if failed != nil {
		return *failed, err
	}

	identity := identityOf(product)
	draft := NewDraft(product, nil)
	var calls []sourceCall
	var successes []domain.Source
	var attributesError error

	if set.Video != nil {
		call, staged := o.callVideo(ctx, draft, set.Video, identity, settings)
		calls = append(calls, call)
		if call.result.Outcome == domain.OutcomeSuccess {
			draft = staged
			successes = append(successes, set.Video.Source())
		}
	}

	if set.Content != nil {
		call, staged, applied := o.callContent(ctx, draft, set.Content, product, identity, settings)
		calls = append(calls, call)
		if call.result.Outcome == domain.OutcomeSuccess {
			draft = staged
			successes = append(successes, set.Content.Source())
			attributesError = applied.AttributesError
		}
	}

	message := "no marketing content produced"
	switch {
	case len(successes) > 0:
		message = "marketing content obtained from " + domain.JoinSources(successes)
	case hasErrors(calls):
		message = "every consulted source failed"
	}

	return o.commit(ctx, commitInput{
		runID:           runID,
		pass:            domain.PassMarketing,
		product:         product,
		draft:           draft,
		calls:           calls,
		successes:       successes,
		message:         message,
		attributesError: attributesError,
	})
}

// sourceCall is a SourceResult plus the payload fingerprint of a success
type sourceCall struct {
	result    SourceResult
	hash      string
	fetchedAt time.Time
}

func (o *orchestrator) callTechnical(ctx context.Context, draft *Draft, tier domain.Tier, connector TechnicalConnector, identity Identity, settings Settings) (sourceCall, *Draft) {
	source := connector.Source()
	call := sourceCall{
		result:    SourceResult{Source: source, Tier: tier},
		fetchedAt: o.clock.Now(),
	}

	staged, err := protect(func() (*Draft, error) {
		callCtx, cancel := withTimeout(ctx, settings.ConnectorTimeout)
		defer cancel()

		result, err := connector.FetchTechnical(callCtx, identity)
		if err != nil {
			return nil, err
		}
		if result.Empty() {
			return nil, nil
		}

		call.hash = o.fingerprint(ctx, result)
		return o.stageTechnical(ctx, draft, tier, source, result, settings), nil
	})

	o.classify(ctx, identity, &call, staged != nil, err)
	return call, staged
}

// stageTechnical merges a result into a copy of draft
func (o *orchestrator) stageTechnical(ctx context.Context, draft *Draft, tier domain.Tier, source domain.Source, result *TechnicalResult, settings Settings) *Draft {
	next := draft.Clone()

	section := richtext.Section{
		Source: string(source),
		Label:  source.Label(),
		Text:   result.Text,
		HTML:   result.HTML,
		Specs:  result.Specs,
	}
	next.EnrichedDescription = o.composer.ReplaceSection(next.EnrichedDescription, section)

	if len(result.Specs) > 0 && strings.TrimSpace(next.TechnicalDescription) == "" {
		next.TechnicalDescription = o.composer.AppendSection("", richtext.Section{
			Source: string(source),
			Label:  source.Label(),
			Specs:  result.Specs,
		})
	}

	if url := strings.TrimSpace(result.DatasheetURL); url != "" && next.DatasheetURL == "" {
		next.DatasheetURL = url
	}
	if url := strings.TrimSpace(result.ProductURL); url != "" {
		next.ExternalProductURL = url
	}

	if len(result.Images) > 0 {
		next.Stage(o.planner.Plan(ctx, next.Dedup(), media.PlanInput{
			Tier:       tier,
			Source:     source,
			Label:      source.Label(),
			Candidates: result.Images,
			Limit:      settings.MaxImagesPerInvocation,
		}))
	}

	return next
}

func (o *orchestrator) callVideo(ctx context.Context, draft *Draft, connector VideoConnector, identity Identity, settings Settings) (sourceCall, *Draft) {
	source := connector.Source()
	call := sourceCall{
		result:    SourceResult{Source: source, Tier: domain.TierMarketing},
		fetchedAt: o.clock.Now(),
	}

	// an existing video counts as found without asking again
	if draft.VideoURL != "" {
		call.result.Outcome = domain.OutcomeSuccess
		return call, draft
	}

	staged, err := protect(func() (*Draft, error) {
		callCtx, cancel := withTimeout(ctx, settings.ConnectorTimeout)
		defer cancel()

		url, err := connector.FindVideo(callCtx, identity)
		if err != nil {
			return nil, err
		}
		url = strings.TrimSpace(url)
		if url == "" {
			return nil, nil
		}

		next := draft.Clone()
		next.VideoURL = url
		return next, nil
	})

	o.classify(ctx, identity, &call, staged != nil, err)
	return call, staged
}

func (o *orchestrator) callContent(ctx context.Context, draft *Draft, connector ContentConnector, product *schema.Product, identity Identity, settings Settings) (sourceCall, *Draft, aimapper.AppliedFields) {
	source := connector.Source()
	call := sourceCall{
		result:    SourceResult{Source: source, Tier: domain.TierMarketing},
		fetchedAt: o.clock.Now(),
	}
	var applied aimapper.AppliedFields

	staged, err := protect(func() (*Draft, error) {
		specs, err := o.store.GetProductAttributes(ctx, product.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load attributes: %w", err)
		}

		description := product.TechnicalDescription
		if strings.TrimSpace(description) == "" {
			description = product.EnrichedDescription
		}

		callCtx, cancel := withTimeout(ctx, settings.ConnectorTimeout)
		defer cancel()

		raw, err := connector.GenerateContent(callCtx, ContentRequest{
			Identity:    identity,
			Description: description,
			Specs:       specs,
			Template:    settings.PromptTemplate,
			Inputs:      settings.PromptInputs,
		})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}

		resp, err := aimapper.Parse(raw)
		if err != nil {
			return nil, err
		}
		if resp.Empty() {
			return nil, nil
		}

		next := draft.Clone()
		target := aimapper.Target{
			Name:                 next.Name,
			OriginalName:         next.OriginalName,
			EnrichedDescription:  next.EnrichedDescription,
			TechnicalDescription: next.TechnicalDescription,
			MarketingDescription: next.MarketingDescription,
			Attributes:           next.Attributes,
		}
		applied = o.mapper.Apply(&target, resp)
		if applied.AttributesError != nil {
			logger.WarnCtx(ctx, "AI attributes discarded",
				zap.Int64("productID", product.ID),
				zap.Error(applied.AttributesError),
			)
		}
		if !applied.Any() {
			return nil, nil
		}

		next.Name = target.Name
		next.OriginalName = target.OriginalName
		next.EnrichedDescription = target.EnrichedDescription
		next.TechnicalDescription = target.TechnicalDescription
		next.MarketingDescription = target.MarketingDescription
		next.Attributes = target.Attributes
		return next, nil
	})

	o.classify(ctx, identity, &call, staged != nil, err)
	return call, staged, applied
}

// classify sets the outcome of a call and logs it
func (o *orchestrator) classify(ctx context.Context, identity Identity, call *sourceCall, staged bool, err error) {
	call.result.Duration = o.clock.Since(call.fetchedAt)
	fields := []zap.Field{
		zap.Int64("productID", identity.ProductID),
		zap.String("source", string(call.result.Source)),
		zap.Duration("duration", call.result.Duration),
	}

	switch {
	case err != nil:
		call.result.Outcome = domain.OutcomeError
		call.result.Error = err.Error()
		call.hash = ""
		logger.WarnCtx(ctx, "Source failed", append(fields, zap.Error(err))...)
	case staged:
		call.result.Outcome = domain.OutcomeSuccess
		logger.InfoCtx(ctx, "Source contributed", fields...)
	default:
		call.result.Outcome = domain.OutcomeMiss
		call.hash = ""
		logger.InfoCtx(ctx, "Source found nothing", fields...)
	}
}

type commitInput struct {
	runID           string
	pass            domain.Pass
	product         *schema.Product
	draft           *Draft
	calls           []sourceCall
	successes       []domain.Source
	message         string
	attributesError error
}

// commit writes the product's pass in one transaction. Only a failing commit aborts the batch.
func (o *orchestrator) commit(ctx context.Context, in commitInput) (ProductOutcome, error) {
	product := in.product
	now := o.clock.Now()

	update, images := in.draft.Changes()
	stateAfter := product.EnrichmentState
	if len(in.successes) > 0 {
		if in.pass == domain.PassTechnical {
			stateAfter = product.EnrichmentState.AfterTechnical()
			force := false
			update.ForceEnrichment = &force
		} else {
			stateAfter = product.EnrichmentState.AfterMarketing()
		}
		markEnriched(&update, stateAfter, in.successes, now)
	}

	details := schema.EnrichmentLogDetails{
		Successes:   []string{},
		Misses:      []string{},
		StateBefore: string(product.EnrichmentState),
		StateAfter:  string(stateAfter),
		ImagesAdded: in.draft.ImagesAdded(),
	}
	if in.attributesError != nil {
		details.AttributesError = in.attributesError.Error()
	}

	outcome := ProductOutcome{ProductID: product.ID, ImagesAdded: in.draft.ImagesAdded()}
	sources := make([]store.EnrichmentSourceInput, 0, len(in.calls))
	failures := 0
	for _, call := range in.calls {
		outcome.Sources = append(outcome.Sources, call.result)

		input := store.EnrichmentSourceInput{
			Source:    call.result.Source,
			Outcome:   call.result.Outcome,
			FetchedAt: call.fetchedAt,
		}
		switch call.result.Outcome {
		case domain.OutcomeSuccess:
			details.Successes = append(details.Successes, string(call.result.Source))
			if call.hash != "" {
				input.Hash = strPtr(call.hash)
			}
		case domain.OutcomeMiss:
			details.Misses = append(details.Misses, string(call.result.Source))
		case domain.OutcomeError:
			failures++
			if details.Errors == nil {
				details.Errors = make(map[string]string)
			}
			details.Errors[string(call.result.Source)] = call.result.Error
			input.Error = strPtr(call.result.Error)
		}
		sources = append(sources, input)
	}

	outcome.Status = domain.AuditStatusFor(len(in.successes), failures)
	tag := domain.JoinSources(in.successes)
	if tag == "" {
		tag = auditSourceNone
	}

	result, err := o.store.SaveEnrichmentResult(ctx, store.SaveEnrichmentResultInput{
		ProductID:  product.ID,
		Product:    update,
		NewImages:  images,
		Sources:    sources,
		Attributes: in.draft.Attributes,
		Log: store.CreateEnrichmentLogInput{
			RunID:     in.runID,
			ProductID: product.ID,
			Pass:      in.pass,
			Source:    tag,
			Status:    outcome.Status,
			Summary:   domain.AuditSummary(tag, product.Name, identityOf(product).PartNumber, in.message),
			Details:   details,
		},
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			outcome.Status = domain.AuditStatusError
			outcome.Error = err.Error()
			return outcome, nil
		}
		outcome.Error = err.Error()
		return outcome, fmt.Errorf("%w: product %d: %w", domain.ErrCheckpointFailed, product.ID, err)
	}

	if result.AttributesError != nil {
		outcome.AttributesError = result.AttributesError.Error()
	} else if in.attributesError != nil {
		outcome.AttributesError = in.attributesError.Error()
	}
	if result.ImagesInserted < len(images) {
		outcome.ImagesAdded -= len(images) - result.ImagesInserted
	}

	logger.InfoCtx(ctx, "Product enrichment committed",
		zap.Int64("productID", product.ID),
		zap.String("pass", string(in.pass)),
		zap.String("status", string(outcome.Status)),
		zap.Int("imagesAdded", outcome.ImagesAdded),
	)

	o.publish(ctx, &domain.EnrichmentEvent{
		RunID:      in.runID,
		ProductID:  product.ID,
		Pass:       in.pass,
		Status:     outcome.Status,
		Sources:    in.successes,
		State:      stateAfter,
		OccurredAt: now,
	})

	return outcome, nil
}

// skip records a skipped audit entry without touching the product
func (o *orchestrator) skip(ctx context.Context, runID string, pass domain.Pass, product *schema.Product, reason string) (ProductOutcome, error) {
	outcome := ProductOutcome{ProductID: product.ID, Status: domain.AuditStatusSkipped}

	err := o.store.CreateEnrichmentLog(ctx, store.CreateEnrichmentLogInput{
		RunID:     runID,
		ProductID: product.ID,
		Pass:      pass,
		Source:    auditSourceNone,
		Status:    domain.AuditStatusSkipped,
		Summary:   domain.AuditSummary(auditSourceNone, product.Name, identityOf(product).PartNumber, "skipped: "+reason),
		Details: schema.EnrichmentLogDetails{
			Successes:   []string{},
			Misses:      []string{},
			StateBefore: string(product.EnrichmentState),
			StateAfter:  string(product.EnrichmentState),
		},
	})
	if err != nil {
		outcome.Error = err.Error()
		return outcome, fmt.Errorf("%w: product %d: %w", domain.ErrCheckpointFailed, product.ID, err)
	}

	logger.InfoCtx(ctx, "Product skipped",
		zap.Int64("productID", product.ID),
		zap.String("pass", string(pass)),
		zap.String("reason", reason),
	)
	return outcome, nil
}

// fail records an error audit entry for a product whose pass could not start.
// The product row itself is left untouched.
func (o *orchestrator) fail(ctx context.Context, runID string, pass domain.Pass, product *schema.Product, cause error) (ProductOutcome, error) {
	outcome := ProductOutcome{ProductID: product.ID, Status: domain.AuditStatusError, Error: cause.Error()}

	err := o.store.CreateEnrichmentLog(ctx, store.CreateEnrichmentLogInput{
		RunID:     runID,
		ProductID: product.ID,
		Pass:      pass,
		Source:    auditSourceNone,
		Status:    domain.AuditStatusError,
		Summary:   domain.AuditSummary(auditSourceNone, product.Name, identityOf(product).PartNumber, "failed: "+cause.Error()),
		Details: schema.EnrichmentLogDetails{
			Successes:   []string{},
			Misses:      []string{},
			Errors:      map[string]string{auditSourceStore: cause.Error()},
			StateBefore: string(product.EnrichmentState),
			StateAfter:  string(product.EnrichmentState),
		},
	})
	if err != nil {
		return outcome, fmt.Errorf("%w: product %d: %w", domain.ErrCheckpointFailed, product.ID, err)
	}
	return outcome, nil
}

func (o *orchestrator) publish(ctx context.Context, event *domain.EnrichmentEvent) {
	if err := o.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish enrichment event",
			zap.Int64("productID", event.ProductID),
			zap.Error(err),
		)
	}
}

// fingerprint hashes the merge-relevant part of a result; failures only cost the hash
func (o *orchestrator) fingerprint(ctx context.Context, result *TechnicalResult) string {
	images := make([]string, 0, len(result.Images))
	for _, c := range result.Images {
		images = append(images, c.Key())
	}
	hash, err := o.jcs.Fingerprint(map[string]interface{}{
		"text":      result.Text,
		"html":      result.HTML,
		"specs":     result.Specs,
		"images":    images,
		"datasheet": result.DatasheetURL,
		"page":      result.ProductURL,
	})
	if err != nil {
		logger.DebugCtx(ctx, "Failed to fingerprint result", zap.Error(err))
		return ""
	}
	return hash
}

func identityOf(product *schema.Product) Identity {
	id := Identity{
		ProductID:      product.ID,
		PartNumber:     strings.TrimSpace(product.Identifier()),
		Name:           product.Name,
		Barcode:        strings.TrimSpace(deref(product.Barcode)),
		HasDescription: strings.TrimSpace(product.EnrichedDescription) != "",
	}
	if product.Brand != nil {
		id.Brand = product.Brand.Name
	}
	if product.Category != nil {
		id.Category = product.Category.Name
	}
	return id
}

func hasErrors(calls []sourceCall) bool {
	for _, c := range calls {
		if c.result.Outcome == domain.OutcomeError {
			return true
		}
	}
	return false
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// protect runs fn and turns a panic into domain.ErrConnectorPanic
func protect[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = fmt.Errorf("%w: %v", domain.ErrConnectorPanic, r)
		}
	}()
	return fn()
}
