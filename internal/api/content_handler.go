package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/content"
	"github.com/travel-content-admin/internal/form"
	"github.com/travel-content-admin/internal/upstream"
)

// ContentHandler handles the collection content endpoints. Create and update
// run through the form controller so the request passes the same validation,
// reconciliation and payload minimization as the edit modal.
type ContentHandler struct {
	clients *upstream.Clients
	log     zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(clients *upstream.Clients, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		clients: clients,
		log:     log.With().Str("handler", "content").Logger(),
	}
}

// List handles GET /v1/collection-contents
func (h *ContentHandler) List(c *gin.Context) {
	records, err := h.clients.Contents.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListByCollection handles GET /v1/collections/:id/contents
func (h *ContentHandler) ListByCollection(c *gin.Context) {
	records, err := h.clients.Contents.ListByCollection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get handles GET /v1/collection-contents/:id. With ?view=form the record is
// returned in its normalized editable shape, including derived location
// options and any stored-location inconsistency warnings.
func (h *ContentHandler) Get(c *gin.Context) {
	rec, err := h.clients.Contents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("view") == "form" {
		c.JSON(http.StatusOK, content.FromRecord(rec))
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Create handles POST /v1/collection-contents
func (h *ContentHandler) Create(c *gin.Context) {
	var req content.FormModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.CollectionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "collection_id is required"})
		return
	}

	ctrl := form.NewCollectionContentCreate(h.clients.Contents, req.CollectionID, h.log, nil)
	applyContentRequest(ctrl.Model(), &req)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusCreated, ctrl.Saved)
}

// Update handles PATCH /v1/collection-contents/:id
func (h *ContentHandler) Update(c *gin.Context) {
	var req content.FormModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := form.NewCollectionContentEdit(h.clients.Contents, c.Param("id"), h.log, nil)
	if err := ctrl.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	applyContentRequest(ctrl.Model(), &req)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusOK, ctrl.Saved)
}

// Delete handles DELETE /v1/collection-contents/:id
func (h *ContentHandler) Delete(c *gin.Context) {
	if err := h.clients.Contents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// applyContentRequest copies the editable fields of the request onto the
// controller's model. Location goes through the cascade setters so a region
// or country change clears its dependents in the same transition.
func applyContentRequest(model *content.FormModel, req *content.FormModel) {
	model.PropertyName = req.PropertyName
	model.FeaturedImage = req.FeaturedImage
	model.HeroImage = req.HeroImage
	model.AboutCollection = req.AboutCollection
	model.Features = req.Features
	model.AboutDestination = req.AboutDestination
	model.Tags = req.Tags
	model.Active = req.Active

	model.SetRegion(req.Region)
	model.SetCountry(req.Country)
	model.SetCity(req.City)

	model.Normalize()
}
