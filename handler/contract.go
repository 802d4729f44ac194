package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/AnTengye/contratos/generator"
	"github.com/AnTengye/contratos/model"
	"github.com/AnTengye/contratos/pkg/logger"
	"github.com/AnTengye/contratos/service"
	"github.com/gin-gonic/gin"
)

type ContractHandler struct {
	repo service.ContractRepository
	docs *service.DocumentService
}

func NewContractHandler(repo service.ContractRepository, docs *service.DocumentService) *ContractHandler {
	return &ContractHandler{repo: repo, docs: docs}
}

// contractSummary is the list view of a contract
type contractSummary struct {
	ID              string               `json:"id"`
	Status          model.ContractStatus `json:"status"`
	PropertyAddress string               `json:"property_address"`
	Tenants         string               `json:"tenants"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	DocumentURL     string               `json:"document_url,omitempty"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}

func summarize(agg *model.ContractAggregate) contractSummary {
	s := contractSummary{
		ID:              agg.ID,
		Status:          agg.Status,
		PropertyAddress: generator.PropertyAddress(agg.Property),
		Tenants:         generator.ResolveParties(agg).TenantNames(),
		StartDate:       agg.StartDate,
		EndDate:         agg.EndDate,
		CreatedAt:       agg.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       agg.UpdatedAt.Format(time.RFC3339),
	}
	if agg.Document != nil {
		s.DocumentURL = agg.Document.URL
	}
	return s
}

// withContract tags the request context so every log line carries the contract id
func withContract(c *gin.Context) string {
	id := c.Param("id")
	c.Request = c.Request.WithContext(logger.WithContractID(c.Request.Context(), id))
	return id
}

// writeError maps service errors onto HTTP responses
func writeError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
	case errors.Is(err, service.ErrStorageDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document storage is not configured"})
	default:
		logger.Error(c.Request.Context(), "failed to "+action, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// List returns the active contracts, newest first
func (h *ContractHandler) List(c *gin.Context) {
	filter := service.ListFilter{
		Status:     model.ContractStatus(c.Query("status")),
		PropertyID: c.Query("property_id"),
		Search:     c.Query("search"),
	}
	contracts, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, "list contracts")
		return
	}

	result := make([]contractSummary, len(contracts))
	for i, agg := range contracts {
		result[i] = summarize(agg)
	}
	c.JSON(http.StatusOK, gin.H{"contracts": result})
}

// Get returns a single contract with its property and tenants
func (h *ContractHandler) Get(c *gin.Context) {
	agg, err := h.repo.Get(c.Request.Context(), withContract(c))
	if err != nil {
		writeError(c, err, "get contract")
		return
	}
	c.JSON(http.StatusOK, agg)
}

// Create stores a new contract aggregate
func (h *ContractHandler) Create(c *gin.Context) {
	var agg model.ContractAggregate
	if err := c.ShouldBindJSON(&agg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := agg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := model.ValidateOverrideKeys(agg.ClauseOverrides, generator.IsStandardLabel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clause_overrides: " + err.Error()})
		return
	}

	agg.ID = ""
	agg.Document = nil
	agg.DeletedAt = nil
	agg.CreatedAt = time.Time{}
	if agg.Status == "" {
		agg.Status = model.StatusDraft
	}
	if agg.Property != nil && agg.PropertyID == "" {
		agg.PropertyID = agg.Property.ID
	}

	if err := h.repo.Save(c.Request.Context(), &agg); err != nil {
		writeError(c, err, "save contract")
		return
	}
	ctx := logger.WithContractID(c.Request.Context(), agg.ID)
	c.Request = c.Request.WithContext(ctx)
	logger.Info(ctx, "contract created", "status", agg.Status)

	c.JSON(http.StatusCreated, &agg)
}

// Delete cancels a contract and withdraws its published document
func (h *ContractHandler) Delete(c *gin.Context) {
	id := withContract(c)
	ctx := c.Request.Context()

	if err := h.docs.Withdraw(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(c, err, "delete contract")
			return
		}
		// the record is still cancelled, the object expires on its own
		logger.Warn(ctx, "failed to withdraw published document", "error", err)
	}
	if err := h.repo.Delete(ctx, id); err != nil {
		writeError(c, err, "delete contract")
		return
	}
	logger.Info(ctx, "contract cancelled")

	c.JSON(http.StatusOK, gin.H{"message": "Contract cancelled", "status": model.StatusTerminated})
}

// UpdateDocument persists the document edits made in the editor
func (h *ContractHandler) UpdateDocument(c *gin.Context) {
	id := withContract(c)

	var edits model.ContractEdits
	if err := c.ShouldBindJSON(&edits); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if edits.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No changes provided"})
		return
	}
	if err := edits.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if edits.ClauseOverrides != nil {
		if err := model.ValidateOverrideKeys(*edits.ClauseOverrides, generator.IsStandardLabel); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clause_overrides: " + err.Error()})
			return
		}
	}

	agg, err := h.repo.ApplyEdits(c.Request.Context(), id, edits)
	if err != nil {
		writeError(c, err, "update document")
		return
	}
	logger.Info(c.Request.Context(), "document edits saved")
	c.JSON(http.StatusOK, agg)
}

// Text returns the composed contract as plain text
func (h *ContractHandler) Text(c *gin.Context) {
	doc, agg, err := h.docs.Compose(c.Request.Context(), withContract(c))
	if err != nil {
		writeError(c, err, "compose document")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"title":          doc.Title,
		"filename":       generator.SuggestFilename(agg),
		"clauses":        len(doc.StandardClauses()),
		"custom_clauses": len(doc.CustomClauses()),
		"signatures":     len(doc.Signatures()),
		"text":           doc.Text(),
	})
}

// PDF streams the contract as a PDF attachment
func (h *ContractHandler) PDF(c *gin.Context) {
	rendered, err := h.docs.Render(c.Request.Context(), withContract(c))
	if err != nil {
		writeError(c, err, "render document")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendered.Filename))
	c.Header("X-Page-Count", strconv.Itoa(rendered.Pages))
	c.Data(http.StatusOK, "application/pdf", rendered.PDF)
}

// Publish uploads the PDF to object storage and returns its download link
func (h *ContractHandler) Publish(c *gin.Context) {
	doc, err := h.docs.Publish(c.Request.Context(), withContract(c))
	if err != nil {
		writeError(c, err, "publish document")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Clause returns one standard clause, as stored and as generated
func (h *ContractHandler) Clause(c *gin.Context) {
	id := withContract(c)
	n, err := strconv.Atoi(c.Param("number"))
	if err != nil || n < 1 || n > generator.StandardClauses {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Clause number must be between 1 and %d", generator.StandardClauses)})
		return
	}

	text, generated, err := h.docs.Clause(c.Request.Context(), id, n)
	if err != nil {
		writeError(c, err, "render clause")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"number":     n,
		"label":      generator.Ordinal(n),
		"text":       text,
		"generated":  generated,
		"overridden": text != generated,
	})
}
