package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/upstream"
)

// MiscHandler handles the tag and contact-inquiry endpoints
type MiscHandler struct {
	clients *upstream.Clients
	log     zerolog.Logger
}

// NewMiscHandler creates a new MiscHandler
func NewMiscHandler(clients *upstream.Clients, log zerolog.Logger) *MiscHandler {
	return &MiscHandler{
		clients: clients,
		log:     log.With().Str("handler", "misc").Logger(),
	}
}

// ListTags handles GET /v1/tags
func (h *MiscHandler) ListTags(c *gin.Context) {
	tags, err := h.clients.Tags.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateTag handles POST /v1/tags
func (h *MiscHandler) CreateTag(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	tag, err := h.clients.Tags.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// DeleteTag handles DELETE /v1/tags/:id
func (h *MiscHandler) DeleteTag(c *gin.Context) {
	if err := h.clients.Tags.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListContacts handles GET /v1/contacts
func (h *MiscHandler) ListContacts(c *gin.Context) {
	contacts, err := h.clients.Contacts.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// GetContact handles GET /v1/contacts/:id
func (h *MiscHandler) GetContact(c *gin.Context) {
	contact, err := h.clients.Contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DeleteContact handles DELETE /v1/contacts/:id
func (h *MiscHandler) DeleteContact(c *gin.Context) {
	if err := h.clients.Contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
