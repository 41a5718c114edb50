package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/form"
	"github.com/travel-content-admin/internal/upstream"
)

// BlogHandler handles the blog endpoints
type BlogHandler struct {
	clients *upstream.Clients
	log     zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(clients *upstream.Clients, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		clients: clients,
		log:     log.With().Str("handler", "blog").Logger(),
	}
}

// List handles GET /v1/blogs
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.clients.Blogs.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// Get handles GET /v1/blogs/:id
func (h *BlogHandler) Get(c *gin.Context) {
	blog, err := h.clients.Blogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// Create handles POST /v1/blogs
func (h *BlogHandler) Create(c *gin.Context) {
	var req form.BlogModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := form.NewBlogCreate(h.clients.Blogs, h.log, nil)
	applyBlogRequest(ctrl.Model(), &req)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusCreated, ctrl.Saved)
}

// Update handles PATCH /v1/blogs/:id
func (h *BlogHandler) Update(c *gin.Context) {
	var req form.BlogModel
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctrl := form.NewBlogEdit(h.clients.Blogs, c.Param("id"), h.log, nil)
	if err := ctrl.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	applyBlogRequest(ctrl.Model(), &req)

	if err := ctrl.Submit(c.Request.Context()); err != nil {
		respondSubmitError(c, err, ctrl.FieldErrors())
		return
	}

	c.JSON(http.StatusOK, ctrl.Saved)
}

// Delete handles DELETE /v1/blogs/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.clients.Blogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// applyBlogRequest copies the editable fields onto the controller's model,
// routing location through the cascade setters
func applyBlogRequest(model *form.BlogModel, req *form.BlogModel) {
	model.Title = req.Title
	model.Slug = req.Slug
	model.HeroImage = req.HeroImage
	model.FeaturedImage = req.FeaturedImage
	model.Taglines = req.Taglines
	model.Excerpt = req.Excerpt
	model.Sections = req.Sections
	model.AuthorName = req.AuthorName
	model.AuthorAvatar = req.AuthorAvatar
	model.ReadTime = req.ReadTime
	model.Active = req.Active

	model.SetRegion(req.Region)
	model.SetCountry(req.Country)
	model.City = req.City

	model.Normalize()
}
