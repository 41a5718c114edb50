package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/form"
	"github.com/travel-content-admin/internal/upstream"
)

// CollectionHandler handles the collection endpoints
type CollectionHandler struct {
	clients *upstream.Clients
	log     zerolog.Logger
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(clients *upstream.Clients, log zerolog.Logger) *CollectionHandler {
	return &CollectionHandler{
		clients: clients,
		log:     log.With().Str("handler", "collection").Logger(),
	}
}

// List handles GET /v1/collections
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.clients.Collections.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collections)
}

// Get handles GET /v1/collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	col, err := h.clients.Collections.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, col)
}

// Create handles POST /v1/collections
func (h *CollectionHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := form.NewCollectionCreate(h.clients.Collections, h.log, nil)
	ctrl.Name = req.Name

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusCreated, ctrl.Saved)
}

// Update handles PATCH /v1/collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := form.NewCollectionEdit(h.clients.Collections, c.Param("id"), h.log, nil)
	if err := ctrl.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	ctrl.Name = req.Name

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusOK, ctrl.Saved)
}

// Delete handles DELETE /v1/collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.clients.Collections.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
