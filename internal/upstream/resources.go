package upstream

import (
	"context"

	"github.com/travel-content-admin/internal/models"
)

// BlogClient talks to the /blogs endpoints
type BlogClient struct {
	c *Client
}

func (b *BlogClient) List(ctx context.Context) ([]models.Blog, error) {
	return getList[models.Blog](ctx, b.c, "/blogs")
}

func (b *BlogClient) Get(ctx context.Context, id string) (*models.Blog, error) {
	return getOne[models.Blog](ctx, b.c, "/blogs/"+id)
}

func (b *BlogClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Blog, error) {
	return createOne[models.Blog](ctx, b.c, "/blogs", payload)
}

func (b *BlogClient) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Blog, error) {
	return updateOne[models.Blog](ctx, b.c, "/blogs/"+id, payload)
}

func (b *BlogClient) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, b.c, "/blogs/"+id)
}

// CollectionClient talks to the /collections endpoints
type CollectionClient struct {
	c *Client
}

func (cc *CollectionClient) List(ctx context.Context) ([]models.Collection, error) {
	return getList[models.Collection](ctx, cc.c, "/collections")
}

func (cc *CollectionClient) Get(ctx context.Context, id string) (*models.Collection, error) {
	return getOne[models.Collection](ctx, cc.c, "/collections/"+id)
}

func (cc *CollectionClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Collection, error) {
	return createOne[models.Collection](ctx, cc.c, "/collections", payload)
}

func (cc *CollectionClient) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Collection, error) {
	return updateOne[models.Collection](ctx, cc.c, "/collections/"+id, payload)
}

func (cc *CollectionClient) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, cc.c, "/collections/"+id)
}

// CollectionContentClient talks to the /collection-contents endpoints
type CollectionContentClient struct {
	c *Client
}

func (cc *CollectionContentClient) List(ctx context.Context) ([]models.CollectionContent, error) {
	return getList[models.CollectionContent](ctx, cc.c, "/collection-contents")
}

func (cc *CollectionContentClient) ListByCollection(ctx context.Context, collectionID string) ([]models.CollectionContent, error) {
	return getList[models.CollectionContent](ctx, cc.c, "/collections/"+collectionID+"/contents")
}

func (cc *CollectionContentClient) Get(ctx context.Context, id string) (*models.CollectionContent, error) {
	return getOne[models.CollectionContent](ctx, cc.c, "/collection-contents/"+id)
}

func (cc *CollectionContentClient) Create(ctx context.Context, payload map[string]interface{}) (*models.CollectionContent, error) {
	return createOne[models.CollectionContent](ctx, cc.c, "/collection-contents", payload)
}

func (cc *CollectionContentClient) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.CollectionContent, error) {
	return updateOne[models.CollectionContent](ctx, cc.c, "/collection-contents/"+id, payload)
}

func (cc *CollectionContentClient) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, cc.c, "/collection-contents/"+id)
}

// ExperienceClient talks to the /experiences endpoints
type ExperienceClient struct {
	c *Client
}

func (e *ExperienceClient) List(ctx context.Context) ([]models.Experience, error) {
	return getList[models.Experience](ctx, e.c, "/experiences")
}

func (e *ExperienceClient) Get(ctx context.Context, id string) (*models.Experience, error) {
	return getOne[models.Experience](ctx, e.c, "/experiences/"+id)
}

func (e *ExperienceClient) Create(ctx context.Context, payload map[string]interface{}) (*models.Experience, error) {
	return createOne[models.Experience](ctx, e.c, "/experiences", payload)
}

func (e *ExperienceClient) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Experience, error) {
	return updateOne[models.Experience](ctx, e.c, "/experiences/"+id, payload)
}

func (e *ExperienceClient) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, e.c, "/experiences/"+id)
}

// TagClient talks to the /tags endpoints
type TagClient struct {
	c *Client
}

func (t *TagClient) List(ctx context.Context) ([]models.Tag, error) {
	return getList[models.Tag](ctx, t.c, "/tags")
}

func (t *TagClient) Create(ctx context.Context, name string) (*models.Tag, error) {
	return createOne[models.Tag](ctx, t.c, "/tags", map[string]interface{}{"name": name})
}

func (t *TagClient) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, t.c, "/tags/"+id)
}

// ContactClient talks to the /contacts endpoints
type ContactClient struct {
	c *Client
}

func (cn *ContactClient) List(ctx context.Context) ([]models.ContactInquiry, error) {
	return getList[models.ContactInquiry](ctx, cn.c, "/contacts")
}

func (cn *ContactClient) Get(ctx context.Context, id string) (*models.ContactInquiry, error) {
	return getOne[models.ContactInquiry](ctx, cn.c, "/contacts/"+id)
}

func (cn *ContactClient) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, cn.c, "/contacts/"+id)
}
