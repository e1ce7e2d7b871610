package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/francuello10/tec-ecommerce-suite/internal/domain"
	"github.com/francuello10/tec-ecommerce-suite/internal/store/schema"
)

// InitDBFunc returns a store and the underlying handle used to seed fixtures
type InitDBFunc func(t *testing.T) (Store, *gorm.DB)

// RunStoreTests runs every store test against the given implementation
func RunStoreTests(t *testing.T, initDB InitDBFunc) {
	t.Run("GetProductByID", func(t *testing.T) { testGetProductByID(t, initDB) })
	t.Run("GetPendingProductIDs", func(t *testing.T) { testGetPendingProductIDs(t, initDB) })
	t.Run("SaveEnrichmentResult", func(t *testing.T) { testSaveEnrichmentResult(t, initDB) })
	t.Run("SaveEnrichmentResult_AttributeSavepoint", func(t *testing.T) { testSaveEnrichmentResultAttributeSavepoint(t, initDB) })
	t.Run("AssignProductAttributes", func(t *testing.T) { testAssignProductAttributes(t, initDB) })
	t.Run("Labels", func(t *testing.T) { testLabels(t, initDB) })
	t.Run("EnrichmentLogs", func(t *testing.T) { testEnrichmentLogs(t, initDB) })
	t.Run("Settings", func(t *testing.T) { testSettings(t, initDB) })
}

// =============================================================================
// Test Data Builders
// =============================================================================

func seedProduct(t *testing.T, db *gorm.DB, sku string, partNumber *string, mutate ...func(*schema.Product)) *schema.Product {
	product := &schema.Product{
		SupplierSKU:     sku,
		PartNumber:      partNumber,
		Name:            "Product " + sku,
		EnrichmentState: domain.LifecycleDraft,
	}
	for _, m := range mutate {
		m(product)
	}
	require.NoError(t, db.Omit("Brand", "Category").Create(product).Error)
	return product
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *schema.Category {
	category := &schema.Category{Name: name, IsCanonical: true}
	require.NoError(t, db.Create(category).Error)
	return category
}

func strPtr(s string) *string {
	return &s
}

func buildLogInput(runID string, productID int64, status domain.AuditStatus) CreateEnrichmentLogInput {
	return CreateEnrichmentLogInput{
		RunID:     runID,
		ProductID: productID,
		Pass:      domain.PassTechnical,
		Source:    string(domain.SourceIcecat),
		Status:    status,
		Summary:   domain.AuditSummary("Icecat", "Product", "MPN", "ok"),
		Details: schema.EnrichmentLogDetails{
			Successes:   []string{string(domain.SourceIcecat)},
			StateBefore: string(domain.LifecycleDraft),
			StateAfter:  string(domain.LifecycleTechDone),
		},
	}
}

// =============================================================================
// Tests
// =============================================================================

func testGetProductByID(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	store, db := initDB(t)

	category := seedCategory(t, db, "Notebooks")
	product := seedProduct(t, db, "SKU-1", strPtr("20XW003JUS"), func(p *schema.Product) {
		p.CategoryID = &category.ID
	})

	got, err := store.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "20XW003JUS", got.Identifier())
	require.NotNil(t, got.Category)
	assert.Equal(t, "Notebooks", got.Category.Name)

	missing, err := store.GetProductByID(ctx, product.ID+1000)
	require.NoError(t, err)
	assert.Nil(t, missing)

	products, err := store.GetProductsByIDs(ctx, []int64{product.ID})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func testGetPendingProductIDs(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	store, db := initDB(t)

	notebooks := seedCategory(t, db, "Notebooks")
	cables := seedCategory(t, db, "Cables")

	cable := seedProduct(t, db, "P-CABLE", strPtr("CBL-1"), func(p *schema.Product) { p.CategoryID = &cables.ID })
	laptop := seedProduct(t, db, "P-LAPTOP", strPtr("NB-1"), func(p *schema.Product) { p.CategoryID = &notebooks.ID })
	skuOnly := seedProduct(t, db, "P-NOMPN", nil)
	seedProduct(t, db, "", nil)
	seedProduct(t, db, "P-DONE", strPtr("DONE-1"), func(p *schema.Product) { p.EnrichmentState = domain.LifecycleTechDone })
	forced := seedProduct(t, db, "P-FORCED", strPtr("F-1"), func(p *schema.Product) {
		p.EnrichmentState = domain.LifecycleFullEnriched
		p.ForceEnrichment = true
	})

	ids, err := store.GetPendingProductIDs(ctx, PendingProductsFilter{
		Limit:              10,
		PriorityCategories: []string{"Notebooks"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{laptop.ID, cable.ID, skuOnly.ID, forced.ID}, ids)

	ids, err = store.GetPendingProductIDs(ctx, PendingProductsFilter{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{cable.ID}, ids)
}

func testSaveEnrichmentResult(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	store, db := initDB(t)

	product := seedProduct(t, db, "SKU-SAVE", strPtr("MPN-SAVE"), func(p *schema.Product) { p.ForceEnrichment = true })

	state := domain.LifecycleTechDone
	source := domain.SOURCE_MIXED
	description := `<div data-source="icecat">x</div>`
	page := "https://psref.lenovo.com/Detail/MPN-SAVE"
	force := false
	now := time.Now().UTC()

	input := SaveEnrichmentResultInput{
		ProductID: product.ID,
		Product: ProductUpdate{
			EnrichedDescription: &description,
			ExternalProductURL:  &page,
			PrimaryImage:        &PrimaryImageInput{Payload: []byte{1, 2, 3}, MimeType: "image/png", SourceURL: "https://img/1.png"},
			EnrichmentState:     &state,
			EnrichmentSource:    &source,
			ForceEnrichment:     &force,
			EnrichedAt:          &now,
		},
		NewImages: []CreateProductImageInput{
			{Name: "Icecat View 1", Sequence: 2000, Payload: []byte{4}, MimeType: "image/jpeg", SourceURL: "https://img/2.jpg", Source: domain.SourceIcecat},
			{Name: "Icecat View 2", Sequence: 2001, Payload: []byte{5}, MimeType: "image/jpeg", SourceURL: "https://img/3.jpg", Source: domain.SourceIcecat},
		},
		Sources: []EnrichmentSourceInput{
			{Source: domain.SourceIcecat, Outcome: domain.OutcomeSuccess, Hash: strPtr("abc"), FetchedAt: now},
			{Source: domain.SourceLenovoPSREF, Outcome: domain.OutcomeError, Error: strPtr("timeout"), FetchedAt: now},
		},
		Log: buildLogInput("run-1", product.ID, domain.AuditStatusPartial),
	}

	output, err := store.SaveEnrichmentResult(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, output.ImagesInserted)
	assert.NoError(t, output.AttributesError)

	got, err := store.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LifecycleTechDone, got.EnrichmentState)
	assert.Equal(t, description, got.EnrichedDescription)
	require.NotNil(t, got.ExternalProductURL)
	assert.Equal(t, page, *got.ExternalProductURL)
	assert.False(t, got.ForceEnrichment)
	assert.True(t, got.HasPrimaryImage())
	require.NotNil(t, got.EnrichmentSource)
	assert.Equal(t, domain.SOURCE_MIXED, *got.EnrichmentSource)

	gallery, err := store.GetProductGallery(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, gallery, 2)
	assert.Equal(t, "https://img/2.jpg", gallery[0].SourceURL)
	assert.Nil(t, gallery[0].Payload)

	sources, err := store.GetEnrichmentSourcesByProductID(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, sources, 2)

	t.Run("images with a known URL are not duplicated", func(t *testing.T) {
		again := input
		again.Product = ProductUpdate{}
		again.Log = buildLogInput("run-2", product.ID, domain.AuditStatusSuccess)
		output, err := store.SaveEnrichmentResult(ctx, again)
		require.NoError(t, err)
		assert.Equal(t, 0, output.ImagesInserted)

		gallery, err := store.GetProductGallery(ctx, product.ID)
		require.NoError(t, err)
		assert.Len(t, gallery, 2)
	})

	t.Run("original name is written once", func(t *testing.T) {
		first := "Original Name"
		second := "SEO Name"
		_, err := store.SaveEnrichmentResult(ctx, SaveEnrichmentResultInput{
			ProductID: product.ID,
			Product:   ProductUpdate{OriginalName: &first, Name: &second},
			Log:       buildLogInput("run-3", product.ID, domain.AuditStatusSuccess),
		})
		require.NoError(t, err)

		third := "Another Name"
		_, err = store.SaveEnrichmentResult(ctx, SaveEnrichmentResultInput{
			ProductID: product.ID,
			Product:   ProductUpdate{OriginalName: &second, Name: &third},
			Log:       buildLogInput("run-4", product.ID, domain.AuditStatusSuccess),
		})
		require.NoError(t, err)

		got, err := store.GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, got.OriginalName)
		assert.Equal(t, "Original Name", *got.OriginalName)
		assert.Equal(t, "Another Name", got.Name)
	})

	t.Run("unknown product fails the whole commit", func(t *testing.T) {
		name := "ghost"
		_, err := store.SaveEnrichmentResult(ctx, SaveEnrichmentResultInput{
			ProductID: product.ID + 1000,
			Product:   ProductUpdate{Name: &name},
			Log:       buildLogInput("run-5", product.ID+1000, domain.AuditStatusSuccess),
		})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func testSaveEnrichmentResultAttributeSavepoint(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	store, db := initDB(t)

	product := seedProduct(t, db, "SKU-ATTR-SP", strPtr("MPN-ATTR-SP"))
	description := "<p>kept</p>"

	// PostgreSQL rejects NUL bytes in text, failing the attribute lookup inside the savepoint
	badName := "Bad\x00Name"

	output, err := store.SaveEnrichmentResult(ctx, SaveEnrichmentResultInput{
		ProductID:  product.ID,
		Product:    ProductUpdate{MarketingDescription: &description},
		Attributes: []AttributeAssignment{{Name: badName, Value: "x"}},
		Log:        buildLogInput("run-sp", product.ID, domain.AuditStatusSuccess),
	})
	require.NoError(t, err)
	assert.Error(t, output.AttributesError)

	got, err := store.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>kept</p>", got.MarketingDescription)

	logs, total, err := store.GetEnrichmentLogs(ctx, EnrichmentLogFilter{ProductID: &product.ID})
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)
	var details schema.EnrichmentLogDetails
	require.NoError(t, json.Unmarshal(logs[0].Details, &details))
	assert.NotEmpty(t, details.AttributesError)
}

func testAssignProductAttributes(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	store, db := initDB(t)

	product := seedProduct(t, db, "SKU-ATTR", strPtr("MPN-ATTR"))
	require.NoError(t, db.Create(&schema.Attribute{Name: "Color", VariantMode: schema.VariantModeAlways}).Error)

	result, err := store.AssignProductAttributes(ctx, product.ID, []AttributeAssignment{
		{Name: "RAM", Value: "16 GB"},
		{Name: "Color", Value: "Black"},
		{Name: "Pantalla", Value: "14\""},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"RAM", "Pantalla"}, result.Linked)
	assert.Equal(t, []string{"Color"}, result.SkippedVariant)

	t.Run("same value is not linked twice and names match case-insensitively", func(t *testing.T) {
		result, err := store.AssignProductAttributes(ctx, product.ID, []AttributeAssignment{
			{Name: "ram", Value: "16 gb"},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Linked)
		assert.Equal(t, []string{"RAM"}, result.Unchanged)

		var attributeCount int64
		require.NoError(t, db.Model(&schema.Attribute{}).Where("lower(name) = 'ram'").Count(&attributeCount).Error)
		assert.Equal(t, int64(1), attributeCount)
	})

	attrs, err := store.GetProductAttributes(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []AttributeAssignment{
		{Name: "Pantalla", Value: "14\""},
		{Name: "RAM", Value: "16 GB"},
	}, attrs)

	var lineCount int64
	require.NoError(t, db.Model(&schema.ProductAttributeLine{}).Where("product_id = ?", product.ID).Count(&lineCount).Error)
	assert.Equal(t, int64(2), lineCount)
}

func testLabels(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	store, _ := initDB(t)

	for _, kind := range []LabelKind{LabelKindBrand, LabelKindCategory} {
		t.Run(string(kind), func(t *testing.T) {
			created, err := store.CreateLabel(ctx, kind, "Hewlett Packard Enterprise", true)
			require.NoError(t, err)
			assert.True(t, created.IsCanonical)

			again, err := store.CreateLabel(ctx, kind, "HEWLETT PACKARD ENTERPRISE", false)
			require.NoError(t, err)
			assert.Equal(t, created.ID, again.ID)

			found, err := store.FindLabelByName(ctx, kind, "hewlett packard enterprise")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, created.ID, found.ID)

			missing, err := store.FindLabelByAlias(ctx, kind, "HPE Inc")
			require.NoError(t, err)
			assert.Nil(t, missing)

			require.NoError(t, store.CreateLabelAlias(ctx, kind, "HPE Inc", created.ID))
			require.NoError(t, store.CreateLabelAlias(ctx, kind, "hpe inc", created.ID))

			aliased, err := store.FindLabelByAlias(ctx, kind, "HPE INC")
			require.NoError(t, err)
			require.NotNil(t, aliased)
			assert.Equal(t, created.ID, aliased.ID)
		})
	}

	_, err := store.FindLabelByName(ctx, LabelKind("vendor"), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidLabelKind)
}

func testEnrichmentLogs(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	store, db := initDB(t)

	product := seedProduct(t, db, "SKU-LOG", strPtr("MPN-LOG"))
	for i := range 3 {
		require.NoError(t, store.CreateEnrichmentLog(ctx, buildLogInput(fmt.Sprintf("run-%d", i), product.ID, domain.AuditStatusSkipped)))
	}

	logs, total, err := store.GetEnrichmentLogs(ctx, EnrichmentLogFilter{ProductID: &product.ID, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	assert.Len(t, logs, 2)

	runID := "run-1"
	logs, total, err = store.GetEnrichmentLogs(ctx, EnrichmentLogFilter{RunID: &runID})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Equal(t, domain.AuditStatusSkipped, logs[0].Status)
}

func testSettings(t *testing.T, initDB InitDBFunc) {
	ctx := context.Background()
	_, db := initDB(t)
	settings := NewSettingsStore(db)

	require.NoError(t, settings.SetSettings(ctx, map[string]string{
		domain.SETTINGS_PREFIX + "use_icecat":  "true",
		domain.SETTINGS_PREFIX + "ai_provider": "gemini",
		"unrelated.key":                        "x",
	}))
	require.NoError(t, settings.SetSettings(ctx, map[string]string{
		domain.SETTINGS_PREFIX + "use_icecat": "false",
	}))

	values, err := settings.GetSettingsByPrefix(ctx, domain.SETTINGS_PREFIX)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		domain.SETTINGS_PREFIX + "use_icecat":  "false",
		domain.SETTINGS_PREFIX + "ai_provider": "gemini",
	}, values)

	value, err := settings.GetSetting(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
