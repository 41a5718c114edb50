package mocks

import (
	"context"

	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/session"
	"github.com/travel-content-admin/internal/upstream"
)

// MockBlogAPI is a mock implementation of upstream.BlogAPI
type MockBlogAPI struct {
	Blogs       map[string]*models.Blog
	Err         error
	CreateCalls int
	UpdateCalls int
	LastPayload map[string]interface{}
	Deleted     []string
}

func NewMockBlogAPI() *MockBlogAPI {
	return &MockBlogAPI{Blogs: make(map[string]*models.Blog)}
}

func (m *MockBlogAPI) List(ctx context.Context) ([]models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Blog, 0, len(m.Blogs))
	for _, b := range m.Blogs {
		out = append(out, *b)
	}
	return out, nil
}

func (m *MockBlogAPI) Get(ctx context.Context, id string) (*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if b, ok := m.Blogs[id]; ok {
		return b, nil
	}
	return nil, &upstream.Error{Message: "blog not found", Status: 404}
}

func (m *MockBlogAPI) Create(ctx context.Context, payload map[string]interface{}) (*models.Blog, error) {
	m.CreateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	blog := &models.Blog{ID: "blog-new"}
	if title, ok := payload["title"].(string); ok {
		blog.Title = title
	}
	m.Blogs[blog.ID] = blog
	return blog, nil
}

func (m *MockBlogAPI) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Blog, error) {
	m.UpdateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	blog, ok := m.Blogs[id]
	if !ok {
		return nil, &upstream.Error{Message: "blog not found", Status: 404}
	}
	if title, ok := payload["title"].(string); ok {
		blog.Title = title
	}
	return blog, nil
}

func (m *MockBlogAPI) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Blogs, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockCollectionAPI is a mock implementation of upstream.CollectionAPI
type MockCollectionAPI struct {
	Collections map[string]*models.Collection
	Err         error
	CreateCalls int
	UpdateCalls int
	LastPayload map[string]interface{}
	Deleted     []string
}

func NewMockCollectionAPI() *MockCollectionAPI {
	return &MockCollectionAPI{Collections: make(map[string]*models.Collection)}
}

func (m *MockCollectionAPI) List(ctx context.Context) ([]models.Collection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Collection, 0, len(m.Collections))
	for _, c := range m.Collections {
		out = append(out, *c)
	}
	return out, nil
}

func (m *MockCollectionAPI) Get(ctx context.Context, id string) (*models.Collection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if c, ok := m.Collections[id]; ok {
		return c, nil
	}
	return nil, &upstream.Error{Message: "collection not found", Status: 404}
}

func (m *MockCollectionAPI) Create(ctx context.Context, payload map[string]interface{}) (*models.Collection, error) {
	m.CreateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	col := &models.Collection{ID: "col-new"}
	if name, ok := payload["name"].(string); ok {
		col.Name = name
	}
	m.Collections[col.ID] = col
	return col, nil
}

func (m *MockCollectionAPI) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Collection, error) {
	m.UpdateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	col, ok := m.Collections[id]
	if !ok {
		return nil, &upstream.Error{Message: "collection not found", Status: 404}
	}
	if name, ok := payload["name"].(string); ok {
		col.Name = name
	}
	return col, nil
}

func (m *MockCollectionAPI) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Collections, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockCollectionContentAPI is a mock implementation of
// upstream.CollectionContentAPI
type MockCollectionContentAPI struct {
	Contents    map[string]*models.CollectionContent
	Err         error
	CreateCalls int
	UpdateCalls int
	LastPayload map[string]interface{}
	Deleted     []string
}

func NewMockCollectionContentAPI() *MockCollectionContentAPI {
	return &MockCollectionContentAPI{Contents: make(map[string]*models.CollectionContent)}
}

func (m *MockCollectionContentAPI) List(ctx context.Context) ([]models.CollectionContent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.CollectionContent, 0, len(m.Contents))
	for _, c := range m.Contents {
		out = append(out, *c)
	}
	return out, nil
}

func (m *MockCollectionContentAPI) ListByCollection(ctx context.Context, collectionID string) ([]models.CollectionContent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.CollectionContent
	for _, c := range m.Contents {
		if c.CollectionID == collectionID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *MockCollectionContentAPI) Get(ctx context.Context, id string) (*models.CollectionContent, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if c, ok := m.Contents[id]; ok {
		return c, nil
	}
	return nil, &upstream.Error{Message: "collection content not found", Status: 404}
}

func (m *MockCollectionContentAPI) Create(ctx context.Context, payload map[string]interface{}) (*models.CollectionContent, error) {
	m.CreateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	rec := &models.CollectionContent{ID: "cc-new"}
	if cid, ok := payload["collection_id"].(string); ok {
		rec.CollectionID = cid
	}
	m.Contents[rec.ID] = rec
	return rec, nil
}

func (m *MockCollectionContentAPI) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.CollectionContent, error) {
	m.UpdateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	rec, ok := m.Contents[id]
	if !ok {
		return nil, &upstream.Error{Message: "collection content not found", Status: 404}
	}
	return rec, nil
}

func (m *MockCollectionContentAPI) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Contents, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockExperienceAPI is a mock implementation of upstream.ExperienceAPI
type MockExperienceAPI struct {
	Experiences map[string]*models.Experience
	Err         error
	CreateCalls int
	UpdateCalls int
	LastPayload map[string]interface{}
	Deleted     []string
}

func NewMockExperienceAPI() *MockExperienceAPI {
	return &MockExperienceAPI{Experiences: make(map[string]*models.Experience)}
}

func (m *MockExperienceAPI) List(ctx context.Context) ([]models.Experience, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Experience, 0, len(m.Experiences))
	for _, e := range m.Experiences {
		out = append(out, *e)
	}
	return out, nil
}

func (m *MockExperienceAPI) Get(ctx context.Context, id string) (*models.Experience, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if e, ok := m.Experiences[id]; ok {
		return e, nil
	}
	return nil, &upstream.Error{Message: "experience not found", Status: 404}
}

func (m *MockExperienceAPI) Create(ctx context.Context, payload map[string]interface{}) (*models.Experience, error) {
	m.CreateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	exp := &models.Experience{ID: "exp-new"}
	if title, ok := payload["title"].(string); ok {
		exp.Title = title
	}
	m.Experiences[exp.ID] = exp
	return exp, nil
}

func (m *MockExperienceAPI) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.Experience, error) {
	m.UpdateCalls++
	m.LastPayload = payload
	if m.Err != nil {
		return nil, m.Err
	}
	exp, ok := m.Experiences[id]
	if !ok {
		return nil, &upstream.Error{Message: "experience not found", Status: 404}
	}
	return exp, nil
}

func (m *MockExperienceAPI) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Experiences, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockTagAPI is a mock implementation of upstream.TagAPI
type MockTagAPI struct {
	Tags    map[string]*models.Tag
	Err     error
	Deleted []string
}

func NewMockTagAPI() *MockTagAPI {
	return &MockTagAPI{Tags: make(map[string]*models.Tag)}
}

func (m *MockTagAPI) List(ctx context.Context) ([]models.Tag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Tag, 0, len(m.Tags))
	for _, t := range m.Tags {
		out = append(out, *t)
	}
	return out, nil
}

func (m *MockTagAPI) Create(ctx context.Context, name string) (*models.Tag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	tag := &models.Tag{ID: "tag-" + name, Name: name}
	m.Tags[tag.ID] = tag
	return tag, nil
}

func (m *MockTagAPI) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Tags, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockContactAPI is a mock implementation of upstream.ContactAPI
type MockContactAPI struct {
	Contacts map[string]*models.ContactInquiry
	Err      error
	Deleted  []string
}

func NewMockContactAPI() *MockContactAPI {
	return &MockContactAPI{Contacts: make(map[string]*models.ContactInquiry)}
}

func (m *MockContactAPI) List(ctx context.Context) ([]models.ContactInquiry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.ContactInquiry, 0, len(m.Contacts))
	for _, c := range m.Contacts {
		out = append(out, *c)
	}
	return out, nil
}

func (m *MockContactAPI) Get(ctx context.Context, id string) (*models.ContactInquiry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if c, ok := m.Contacts[id]; ok {
		return c, nil
	}
	return nil, &upstream.Error{Message: "contact not found", Status: 404}
}

func (m *MockContactAPI) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Contacts, id)
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockAuthAPI is a mock implementation of upstream.AuthAPI
type MockAuthAPI struct {
	Token      string
	Profile    *session.Profile
	Err        error
	LoginCalls int
	LoggedOut  bool
}

func NewMockAuthAPI() *MockAuthAPI {
	return &MockAuthAPI{Token: "test-token"}
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*session.Session, error) {
	m.LoginCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return &session.Session{Token: m.Token, Profile: m.Profile}, nil
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	m.LoggedOut = true
	return m.Err
}

// MockHealthAPI is a mock implementation of upstream.HealthAPI
type MockHealthAPI struct {
	Status *upstream.HealthStatus
	Err    error
}

func NewMockHealthAPI() *MockHealthAPI {
	return &MockHealthAPI{Status: &upstream.HealthStatus{Status: "healthy"}}
}

func (m *MockHealthAPI) Check(ctx context.Context) (*upstream.HealthStatus, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Status, nil
}
