package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/francuello10/tec-ecommerce-suite/internal/api/dto"
	"github.com/francuello10/tec-ecommerce-suite/internal/api/executor"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// TriggerEnrichment starts one pass over the given products
	// POST /api/v1/enrichments
	TriggerEnrichment(c *gin.Context)

	// TriggerPendingEnrichment starts mass enrichment of the pending catalog
	// POST /api/v1/enrichments/pending
	TriggerPendingEnrichment(c *gin.Context)

	// GetEnrichmentLogs retrieves the audit entries of a product
	// GET /api/v1/products/:id/enrichment-logs?pass=<pass>&limit=<limit>&offset=<offset>
	GetEnrichmentLogs(c *gin.Context)

	// GetEnrichmentSources retrieves the last outcome of every source for a product
	// GET /api/v1/products/:id/enrichment-sources
	GetEnrichmentSources(c *gin.Context)

	// GetSettings retrieves the enrichment settings
	// GET /api/v1/settings
	GetSettings(c *gin.Context)

	// UpdateSettings writes enrichment settings
	// PUT /api/v1/settings
	UpdateSettings(c *gin.Context)

	// NormalizeBrand resolves a raw supplier brand label
	// POST /api/v1/normalize/brand
	NormalizeBrand(c *gin.Context)

	// NormalizeCategory resolves a raw supplier category label
	// POST /api/v1/normalize/category
	NormalizeCategory(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) TriggerEnrichment(c *gin.Context) {
	var req dto.TriggerEnrichmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.TriggerEnrichment(c.Request.Context(), req.ProductIDs, req.Pass)
	if err != nil {
		respondError(c, err, "Failed to trigger enrichment")
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

func (h *handler) TriggerPendingEnrichment(c *gin.Context) {
	var req dto.TriggerPendingRequest
	// an empty body selects the defaults
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	resp, err := h.executor.TriggerPendingEnrichment(c.Request.Context(), req.Limit, req.Pass)
	if err != nil {
		respondError(c, err, "Failed to trigger mass enrichment")
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

func (h *handler) GetEnrichmentLogs(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var query dto.EnrichmentLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetEnrichmentLogs(c.Request.Context(), productID, query)
	if err != nil {
		respondError(c, err, "Failed to get enrichment logs")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetEnrichmentSources(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetEnrichmentSources(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err, "Failed to get enrichment sources")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sources": resp})
}

func (h *handler) GetSettings(c *gin.Context) {
	resp, err := h.executor.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get settings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.UpdateSettings(c.Request.Context(), req.Values)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) NormalizeBrand(c *gin.Context) {
	var req dto.NormalizeLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.NormalizeBrand(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to normalize brand")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) NormalizeCategory(c *gin.Context) {
	var req dto.NormalizeLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.NormalizeCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to normalize category")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "catalog-enricher-api",
	})
}

// productIDParam parses the :id path parameter, responding 400 when it is not a positive integer
func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid product ID")
		return 0, false
	}
	return id, true
}
