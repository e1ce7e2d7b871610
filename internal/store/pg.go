package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// =============================================================================
// Products
// =============================================================================

// GetProductByID retrieves a product with its brand and category
func (s *pgStore) GetProductByID(ctx context.Context, id int64) (*schema.Product, error) {
	var product schema.Product
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// GetProductsByIDs retrieves products with their brand and category, ordered by ID
func (s *pgStore) GetProductsByIDs(ctx context.Context, ids []int64) ([]*schema.Product, error) {
	if len(ids) == 0 {
		return []*schema.Product{}, nil
	}

	var products []*schema.Product
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetPendingProductIDs selects draft or forced products that carry a part number or a supplier SKU.
// Products in priority categories come first, then by ID.
func (s *pgStore) GetPendingProductIDs(ctx context.Context, filter PendingProductsFilter) ([]int64, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := s.db.WithContext(ctx).
		Model(&schema.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.enrichment_state = ? OR products.force_enrichment", domain.LifecycleDraft).
		Where("((products.part_number IS NOT NULL AND products.part_number <> '') OR products.supplier_sku <> '')")

	if len(filter.PriorityCategories) > 0 {
		query = query.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "CASE WHEN categories.name IN ? THEN 0 ELSE 1 END, products.id ASC",
			Vars: []interface{}{filter.PriorityCategories},
		}})
	} else {
		query = query.Order("products.id ASC")
	}

	var ids []int64
	if err := query.Limit(limit).Pluck("products.id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending products: %w", err)
	}
	return ids, nil
}

// GetProductGallery returns the product's gallery ordered by sequence, without payloads
func (s *pgStore) GetProductGallery(ctx context.Context, productID int64) ([]schema.ProductImage, error) {
	var images []schema.ProductImage
	err := s.db.WithContext(ctx).
		Select("id", "product_id", "name", "sequence", "mime_type", "source_url", "source", "created_at").
		Where("product_id = ?", productID).
		Order("sequence ASC, id ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product gallery: %w", err)
	}
	return images, nil
}

// =============================================================================
// Enrichment results
// =============================================================================

// SaveEnrichmentResult commits product fields, gallery images, source tracking and the audit entry
// in one transaction. Attributes are applied inside a savepoint: when they fail, only the savepoint
// is rolled back and the failure is recorded in the audit entry and the output.
func (s *pgStore) SaveEnrichmentResult(ctx context.Context, input SaveEnrichmentResultInput) (*SaveEnrichmentResultOutput, error) {
	output := &SaveEnrichmentResultOutput{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Product fields
		updates := productUpdateColumns(input.Product)
		if len(updates) > 0 {
			updates["updated_at"] = time.Now()
			result := tx.Model(&schema.Product{}).Where("id = ?", input.ProductID).Updates(updates)
			if result.Error != nil {
				return fmt.Errorf("failed to update product: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.ErrProductNotFound
			}
		}

		// 2. Gallery images, skipping URLs already stored for the product
		if len(input.NewImages) > 0 {
			images := make([]schema.ProductImage, 0, len(input.NewImages))
			for _, img := range input.NewImages {
				images = append(images, schema.ProductImage{
					ProductID: input.ProductID,
					Name:      img.Name,
					Sequence:  img.Sequence,
					Payload:   img.Payload,
					MimeType:  img.MimeType,
					SourceURL: img.SourceURL,
					Source:    img.Source,
				})
			}

			result := tx.Omit(clause.Associations).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "product_id"}, {Name: "source_url"}},
					DoNothing: true,
				}).
				Create(&images)
			if result.Error != nil {
				return fmt.Errorf("failed to create product images: %w", result.Error)
			}
			output.ImagesInserted = int(result.RowsAffected)
		}

		// 3. Per-source tracking
		for _, src := range input.Sources {
			record := schema.EnrichmentSource{
				ProductID:     input.ProductID,
				Source:        src.Source,
				LastOutcome:   src.Outcome,
				LastError:     src.Error,
				LastHash:      src.Hash,
				LastFetchedAt: src.FetchedAt,
				UpdatedAt:     time.Now(),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}, {Name: "source"}},
				DoUpdates: clause.AssignmentColumns([]string{"last_outcome", "last_error", "last_hash", "last_fetched_at", "updated_at"}),
			}).Create(&record).Error; err != nil {
				return fmt.Errorf("failed to upsert enrichment source: %w", err)
			}
		}

		// 4. Attributes under their own savepoint
		details := input.Log.Details
		details.ImagesAdded = output.ImagesInserted
		if len(input.Attributes) > 0 {
			var attrResult *AttributeAssignmentResult
			err := tx.Transaction(func(sp *gorm.DB) error {
				var err error
				attrResult, err = assignProductAttributes(sp, input.ProductID, input.Attributes)
				return err
			})
			if err != nil {
				logger.WarnCtx(ctx, "Attribute ingestion rolled back",
					zap.Int64("productID", input.ProductID),
					zap.Error(err),
				)
				output.AttributesError = err
				details.AttributesError = err.Error()
			} else {
				output.Attributes = attrResult
			}
		}

		// 5. Audit entry
		log := input.Log
		log.Details = details
		return createEnrichmentLog(tx, log)
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// productUpdateColumns converts a ProductUpdate into a column map for gorm Updates
func productUpdateColumns(u ProductUpdate) map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.OriginalName != nil {
		// the shadow name is written once
		updates["original_name"] = gorm.Expr("COALESCE(original_name, ?)", *u.OriginalName)
	}
	if u.EnrichedDescription != nil {
		updates["enriched_description"] = *u.EnrichedDescription
	}
	if u.TechnicalDescription != nil {
		updates["technical_description"] = *u.TechnicalDescription
	}
	if u.MarketingDescription != nil {
		updates["marketing_description"] = *u.MarketingDescription
	}
	if u.VideoURL != nil {
		updates["video_url"] = *u.VideoURL
	}
	if u.DatasheetURL != nil {
		updates["datasheet_url"] = *u.DatasheetURL
	}
	if u.ExternalProductURL != nil {
		updates["external_product_url"] = *u.ExternalProductURL
	}
	if u.PrimaryImage != nil {
		updates["image_data"] = u.PrimaryImage.Payload
		updates["image_mime_type"] = u.PrimaryImage.MimeType
		updates["image_source_url"] = u.PrimaryImage.SourceURL
	}
	if u.EnrichmentState != nil {
		updates["enrichment_state"] = *u.EnrichmentState
	}
	if u.EnrichmentSource != nil {
		updates["enrichment_source"] = *u.EnrichmentSource
	}
	if u.ForceEnrichment != nil {
		updates["force_enrichment"] = *u.ForceEnrichment
	}
	if u.EnrichedAt != nil {
		updates["enriched_at"] = *u.EnrichedAt
	}
	return updates
}

// CreateEnrichmentLog records an audit entry without touching the product
func (s *pgStore) CreateEnrichmentLog(ctx context.Context, input CreateEnrichmentLogInput) error {
	return createEnrichmentLog(s.db.WithContext(ctx), input)
}

func createEnrichmentLog(tx *gorm.DB, input CreateEnrichmentLogInput) error {
	details, err := json.Marshal(input.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal enrichment log details: %w", err)
	}

	entry := schema.EnrichmentLog{
		RunID:     input.RunID,
		ProductID: input.ProductID,
		Pass:      input.Pass,
		Source:    input.Source,
		Status:    input.Status,
		Summary:   input.Summary,
		Details:   details,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to create enrichment log: %w", err)
	}
	return nil
}

// GetEnrichmentLogs retrieves audit entries, newest first, and the total count
func (s *pgStore) GetEnrichmentLogs(ctx context.Context, filter EnrichmentLogFilter) ([]schema.EnrichmentLog, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.EnrichmentLog{})
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.RunID != nil {
		query = query.Where("run_id = ?", *filter.RunID)
	}
	if filter.Pass != nil {
		query = query.Where("pass = ?", *filter.Pass)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count enrichment logs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var logs []schema.EnrichmentLog
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&logs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get enrichment logs: %w", err)
	}

	return logs, uint64(total), nil //nolint:gosec,G115
}

// GetEnrichmentSourcesByProductID retrieves per-source tracking rows for a product
func (s *pgStore) GetEnrichmentSourcesByProductID(ctx context.Context, productID int64) ([]schema.EnrichmentSource, error) {
	var sources []schema.EnrichmentSource
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("source ASC").
		Find(&sources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get enrichment sources: %w", err)
	}
	return sources, nil
}

// =============================================================================
// Attributes
// =============================================================================

// AssignProductAttributes find-or-creates attributes and values and links them to a product
func (s *pgStore) AssignProductAttributes(ctx context.Context, productID int64, assignments []AttributeAssignment) (*AttributeAssignmentResult, error) {
	var result *AttributeAssignmentResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = assignProductAttributes(tx, productID, assignments)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func assignProductAttributes(tx *gorm.DB, productID int64, assignments []AttributeAssignment) (*AttributeAssignmentResult, error) {
	result := &AttributeAssignmentResult{}

	for _, a := range assignments {
		name := strings.TrimSpace(a.Name)
		value := strings.TrimSpace(a.Value)
		if name == "" || value == "" {
			continue
		}

		attr, err := findOrCreateAttribute(tx, name)
		if err != nil {
			return nil, err
		}
		if attr.VariantMode != schema.VariantModeNone {
			result.SkippedVariant = append(result.SkippedVariant, attr.Name)
			continue
		}

		attrValue, err := findOrCreateAttributeValue(tx, attr.ID, value)
		if err != nil {
			return nil, err
		}

		line, err := findOrCreateAttributeLine(tx, productID, attr.ID)
		if err != nil {
			return nil, err
		}

		link := schema.ProductAttributeLineValue{LineID: line.ID, ValueID: attrValue.ID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to link attribute value %q: %w", name, res.Error)
		}
		if res.RowsAffected == 0 {
			result.Unchanged = append(result.Unchanged, attr.Name)
		} else {
			result.Linked = append(result.Linked, attr.Name)
		}
	}

	return result, nil
}

func findOrCreateAttribute(tx *gorm.DB, name string) (*schema.Attribute, error) {
	var attr schema.Attribute
	err := tx.Where("lower(name) = lower(?)", name).First(&attr).Error
	if err == nil {
		return &attr, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get attribute %q: %w", name, err)
	}

	attr = schema.Attribute{Name: name, VariantMode: schema.VariantModeNone}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&attr).Error; err != nil {
		return nil, fmt.Errorf("failed to create attribute %q: %w", name, err)
	}
	if attr.ID != 0 {
		return &attr, nil
	}

	// Lost a race with a concurrent insert
	if err := tx.Where("lower(name) = lower(?)", name).First(&attr).Error; err != nil {
		return nil, fmt.Errorf("failed to reload attribute %q: %w", name, err)
	}
	return &attr, nil
}

func findOrCreateAttributeValue(tx *gorm.DB, attributeID int64, name string) (*schema.AttributeValue, error) {
	var value schema.AttributeValue
	err := tx.Where("attribute_id = ? AND lower(name) = lower(?)", attributeID, name).First(&value).Error
	if err == nil {
		return &value, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get attribute value %q: %w", name, err)
	}

	value = schema.AttributeValue{AttributeID: attributeID, Name: name}
	if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{DoNothing: true}).Create(&value).Error; err != nil {
		return nil, fmt.Errorf("failed to create attribute value %q: %w", name, err)
	}
	if value.ID != 0 {
		return &value, nil
	}

	if err := tx.Where("attribute_id = ? AND lower(name) = lower(?)", attributeID, name).First(&value).Error; err != nil {
		return nil, fmt.Errorf("failed to reload attribute value %q: %w", name, err)
	}
	return &value, nil
}

func findOrCreateAttributeLine(tx *gorm.DB, productID int64, attributeID int64) (*schema.ProductAttributeLine, error) {
	line := schema.ProductAttributeLine{ProductID: productID, AttributeID: attributeID}
	err := tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "attribute_id"}},
			DoNothing: true,
		}).
		Create(&line).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create attribute line: %w", err)
	}
	if line.ID != 0 {
		return &line, nil
	}

	if err := tx.Where("product_id = ? AND attribute_id = ?", productID, attributeID).First(&line).Error; err != nil {
		return nil, fmt.Errorf("failed to get attribute line: %w", err)
	}
	return &line, nil
}

// GetProductAttributes lists the product's attribute lines as name/value pairs
func (s *pgStore) GetProductAttributes(ctx context.Context, productID int64) ([]AttributeAssignment, error) {
	var rows []AttributeAssignment
	err := s.db.WithContext(ctx).
		Table("product_attribute_lines").
		Select("attributes.name AS name, attribute_values.name AS value").
		Joins("JOIN attributes ON attributes.id = product_attribute_lines.attribute_id").
		Joins("JOIN product_attribute_line_values ON product_attribute_line_values.line_id = product_attribute_lines.id").
		Joins("JOIN attribute_values ON attribute_values.id = product_attribute_line_values.value_id").
		Where("product_attribute_lines.product_id = ?", productID).
		Order("attributes.name ASC, attribute_values.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product attributes: %w", err)
	}
	return rows, nil
}

// =============================================================================
// Labels (brands and categories)
// =============================================================================

type labelTables struct {
	label      string
	alias      string
	foreignKey string
}

func tablesFor(kind LabelKind) (labelTables, error) {
	switch kind {
	case LabelKindBrand:
		return labelTables{label: "brands", alias: "brand_aliases", foreignKey: "brand_id"}, nil
	case LabelKindCategory:
		return labelTables{label: "categories", alias: "category_aliases", foreignKey: "category_id"}, nil
	}
	return labelTables{}, fmt.Errorf("%w: %s", domain.ErrInvalidLabelKind, kind)
}

type labelRow struct {
	ID          int64
	Name        string
	IsCanonical bool
}

func (r labelRow) toLabel(kind LabelKind) *Label {
	return &Label{ID: r.ID, Kind: kind, Name: r.Name, IsCanonical: r.IsCanonical}
}

// FindLabelByName matches a canonical brand or category name case-insensitively
func (s *pgStore) FindLabelByName(ctx context.Context, kind LabelKind, name string) (*Label, error) {
	tables, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []labelRow
	err = s.db.WithContext(ctx).
		Table(tables.label).
		Select("id, name, is_canonical").
		Where("lower(name) = lower(?)", name).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find %s by name: %w", kind, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toLabel(kind), nil
}

// FindLabelByAlias matches a learned alias case-insensitively and returns its label
func (s *pgStore) FindLabelByAlias(ctx context.Context, kind LabelKind, alias string) (*Label, error) {
	tables, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []labelRow
	err = s.db.WithContext(ctx).
		Table(tables.label).
		Select(tables.label+".id, "+tables.label+".name, "+tables.label+".is_canonical").
		Joins(fmt.Sprintf("JOIN %s ON %s.%s = %s.id", tables.alias, tables.alias, tables.foreignKey, tables.label)).
		Where(fmt.Sprintf("lower(%s.name) = lower(?)", tables.alias), alias).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find %s by alias: %w", kind, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toLabel(kind), nil
}

// CreateLabelAlias links a raw label to a brand or category; existing aliases are left untouched
func (s *pgStore) CreateLabelAlias(ctx context.Context, kind LabelKind, alias string, labelID int64) error {
	var record interface{}
	switch kind {
	case LabelKindBrand:
		record = &schema.BrandAlias{Name: alias, BrandID: labelID}
	case LabelKindCategory:
		record = &schema.CategoryAlias{Name: alias, CategoryID: labelID}
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidLabelKind, kind)
	}

	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to create %s alias: %w", kind, err)
	}
	return nil
}

// CreateLabel creates a brand or category, returning the existing row on a name conflict
func (s *pgStore) CreateLabel(ctx context.Context, kind LabelKind, name string, canonical bool) (*Label, error) {
	var record interface{}
	switch kind {
	case LabelKindBrand:
		record = &schema.Brand{Name: name, IsCanonical: canonical}
	case LabelKindCategory:
		record = &schema.Category{Name: name, IsCanonical: canonical}
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidLabelKind, kind)
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", kind, err)
	}

	label, err := s.FindLabelByName(ctx, kind, name)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, fmt.Errorf("failed to create %s %q", kind, name)
	}
	return label, nil
}
