package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/form"
	"github.com/travel-content-admin/internal/upstream"
)

// ExperienceHandler handles the experience endpoints
type ExperienceHandler struct {
	clients *upstream.Clients
	log     zerolog.Logger
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(clients *upstream.Clients, log zerolog.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		clients: clients,
		log:     log.With().Str("handler", "experience").Logger(),
	}
}

// List handles GET /v1/experiences
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.clients.Experiences.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// Get handles GET /v1/experiences/:id
func (h *ExperienceHandler) Get(c *gin.Context) {
	exp, err := h.clients.Experiences.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// Create handles POST /v1/experiences
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req form.ExperienceModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := form.NewExperienceCreate(h.clients.Experiences, h.log, nil)
	applyExperienceRequest(ctrl.Model(), &req)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusCreated, ctrl.Saved)
}

// Update handles PATCH /v1/experiences/:id
func (h *ExperienceHandler) Update(c *gin.Context) {
	var req form.ExperienceModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := form.NewExperienceEdit(h.clients.Experiences, c.Param("id"), h.log, nil)
	if err := ctrl.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	applyExperienceRequest(ctrl.Model(), &req)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusOK, ctrl.Saved)
}

// Delete handles DELETE /v1/experiences/:id
func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.clients.Experiences.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// applyExperienceRequest copies the editable fields onto the controller's
// model, routing location through the cascade setters
func applyExperienceRequest(model *form.ExperienceModel, req *form.ExperienceModel) {
	model.Title = req.Title
	model.FeaturedImage = req.FeaturedImage
	model.Taglines = req.Taglines
	model.BestTimes = req.BestTimes
	model.CarouselImages = req.CarouselImages
	model.Brief = req.Brief
	model.Sections = req.Sections
	model.Gallery = req.Gallery
	model.Story = req.Story
	model.Tags = req.Tags
	model.DurationDays = req.DurationDays
	model.Price = req.Price
	model.Active = req.Active

	model.SetRegion(req.Region)
	model.SetCountry(req.Country)
	model.City = req.City

	model.Normalize()
}
