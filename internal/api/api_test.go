package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/travel-content-admin/internal/api"
	"github.com/travel-content-admin/internal/config"
	"github.com/travel-content-admin/internal/mocks"
	"github.com/travel-content-admin/internal/models"
	"github.com/travel-content-admin/internal/upstream"
)

type testMocks struct {
	blogs       *mocks.MockBlogAPI
	collections *mocks.MockCollectionAPI
	contents    *mocks.MockCollectionContentAPI
	experiences *mocks.MockExperienceAPI
	tags        *mocks.MockTagAPI
	contacts    *mocks.MockContactAPI
	auth        *mocks.MockAuthAPI
	health      *mocks.MockHealthAPI
}

func setupTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)

	m := &testMocks{
		blogs:       mocks.NewMockBlogAPI(),
		collections: mocks.NewMockCollectionAPI(),
		contents:    mocks.NewMockCollectionContentAPI(),
		experiences: mocks.NewMockExperienceAPI(),
		tags:        mocks.NewMockTagAPI(),
		contacts:    mocks.NewMockContactAPI(),
		auth:        mocks.NewMockAuthAPI(),
		health:      mocks.NewMockHealthAPI(),
	}

	clients := &upstream.Clients{
		Blogs:       m.blogs,
		Collections: m.collections,
		Contents:    m.contents,
		Experiences: m.experiences,
		Tags:        m.tags,
		Contacts:    m.contacts,
		Auth:        m.auth,
		Health:      m.health,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
	}

	log := zerolog.Nop()
	router := api.NewRouter(clients, cfg, log)

	return router, m
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["upstream"] != "healthy" {
		t.Errorf("Expected upstream 'healthy', got %v", response["upstream"])
	}
	if response["service"] != "travel-content-admin" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestHealthEndpoint_UpstreamDown(t *testing.T) {
	router, m := setupTestRouter()
	m.health.Err = &upstream.Error{Message: "connection refused"}

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 even when the backend is down, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["upstream"] != "unreachable" {
		t.Errorf("Expected upstream 'unreachable', got %v", response["upstream"])
	}
}

func TestLogin(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{"email":"admin@example.com","password":"secret"}`)
	req := httptest.NewRequest("POST", "/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if m.auth.LoginCalls != 1 {
		t.Errorf("Expected 1 login call, got %d", m.auth.LoginCalls)
	}
}

func TestLogin_MissingCredentials(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{"email":"admin@example.com"}`)
	req := httptest.NewRequest("POST", "/v1/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if m.auth.LoginCalls != 0 {
		t.Error("Login must not reach the backend without a password")
	}
}

func TestLogout(t *testing.T) {
	router, m := setupTestRouter()

	req := httptest.NewRequest("POST", "/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if !m.auth.LoggedOut {
		t.Error("Expected logout to be forwarded")
	}
}

func TestUnauthorizedMapsTo401(t *testing.T) {
	router, m := setupTestRouter()
	m.blogs.Err = &upstream.Error{Message: "token expired", Status: 401}

	req := httptest.NewRequest("GET", "/v1/blogs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("sign in again")) {
		t.Errorf("Expected sign-in prompt, got: %s", w.Body.String())
	}
}

func TestGetCollectionContent(t *testing.T) {
	router, m := setupTestRouter()
	m.contents.Contents["cc1"] = &models.CollectionContent{
		ID:           "cc1",
		CollectionID: "col1",
		PropertyName: "Alpine Lodge",
		Region:       "Europe",
		Country:      "Switzerland",
	}

	req := httptest.NewRequest("GET", "/v1/collection-contents/cc1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response models.CollectionContent
	json.Unmarshal(w.Body.Bytes(), &response)
	if response.PropertyName != "Alpine Lodge" {
		t.Errorf("Expected property name, got '%s'", response.PropertyName)
	}
}

func TestGetCollectionContent_FormView(t *testing.T) {
	router, m := setupTestRouter()
	m.contents.Contents["cc1"] = &models.CollectionContent{
		ID:           "cc1",
		CollectionID: "col1",
		Region:       "Europe",
		Country:      "Japan", // not a European option
	}

	req := httptest.NewRequest("GET", "/v1/collection-contents/cc1?view=form", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if _, ok := response["country_options"]; !ok {
		t.Error("Form view should include derived country options")
	}
	warnings, ok := response["location_warnings"].([]interface{})
	if !ok || len(warnings) == 0 {
		t.Errorf("Expected location warnings for a stale country, got: %s", w.Body.String())
	}
	features, ok := response["features"].([]interface{})
	if !ok || len(features) != 1 {
		t.Error("Form view should seed the feature placeholder")
	}
}

func TestGetCollectionContent_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/collection-contents/nonexistent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestCreateCollectionContent(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{
		"collection_id": "col1",
		"property_name": "Alpine Lodge",
		"region": "Europe",
		"country": "Switzerland",
		"city": "Zermatt",
		"features": [{"title":"Spa","content":"desc","images":["u1",""]}],
		"is_active": true
	}`)
	req := httptest.NewRequest("POST", "/v1/collection-contents", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}
	if m.contents.CreateCalls != 1 {
		t.Errorf("Expected 1 create call, got %d", m.contents.CreateCalls)
	}
	if m.contents.LastPayload["collection_id"] != "col1" {
		t.Errorf("Expected collection_id in create payload, got %v", m.contents.LastPayload["collection_id"])
	}

	features, ok := m.contents.LastPayload["features"].([]map[string]interface{})
	if !ok || len(features) != 1 {
		t.Fatalf("Expected 1 feature in payload, got %v", m.contents.LastPayload["features"])
	}
	images := features[0]["images"].([]string)
	if len(images) != 1 || images[0] != "u1" {
		t.Errorf("Expected blank image slots filtered, got %v", images)
	}
}

func TestCreateCollectionContent_ValidationBlocked(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{"collection_id":"col1","property_name":"Lodge"}`)
	req := httptest.NewRequest("POST", "/v1/collection-contents", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d. Body: %s", w.Code, w.Body.String())
	}
	if m.contents.CreateCalls != 0 {
		t.Error("A blocked submit must not reach the backend")
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	fields := response["fields"].(map[string]interface{})
	if fields["region"] != "region is required" {
		t.Errorf("Expected region field error, got %v", fields)
	}
	if fields["country"] != "country is required" {
		t.Errorf("Expected country field error, got %v", fields)
	}
}

func TestCreateCollectionContent_MissingCollectionID(t *testing.T) {
	router, _ := setupTestRouter()

	body := bytes.NewBufferString(`{"property_name":"Lodge","region":"Europe","country":"France"}`)
	req := httptest.NewRequest("POST", "/v1/collection-contents", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestUpdateCollectionContent(t *testing.T) {
	router, m := setupTestRouter()
	m.contents.Contents["cc1"] = &models.CollectionContent{
		ID:           "cc1",
		CollectionID: "col1",
		Region:       "Europe",
		Country:      "France",
	}

	body := bytes.NewBufferString(`{"property_name":"Renamed","region":"Europe","country":"France","is_active":true}`)
	req := httptest.NewRequest("PATCH", "/v1/collection-contents/cc1", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if m.contents.UpdateCalls != 1 {
		t.Errorf("Expected 1 update call, got %d", m.contents.UpdateCalls)
	}
	if _, ok := m.contents.LastPayload["collection_id"]; ok {
		t.Error("Update payload must not carry collection_id")
	}
}

func TestListContentsByCollection(t *testing.T) {
	router, m := setupTestRouter()
	m.contents.Contents["cc1"] = &models.CollectionContent{ID: "cc1", CollectionID: "col1"}
	m.contents.Contents["cc2"] = &models.CollectionContent{ID: "cc2", CollectionID: "col2"}

	req := httptest.NewRequest("GET", "/v1/collections/col1/contents", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response []models.CollectionContent
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response) != 1 || response[0].ID != "cc1" {
		t.Errorf("Expected only col1 contents, got %v", response)
	}
}

func TestCreateBlog_ValidationBlocked(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{"slug":"untitled"}`)
	req := httptest.NewRequest("POST", "/v1/blogs", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Code)
	}
	if m.blogs.CreateCalls != 0 {
		t.Error("A blocked submit must not reach the backend")
	}
}

func TestCreateBlog(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{"title":"Hidden Gems","taglines":["wander",""],"content":[{"title":"Day one","content":"We arrived."}]}`)
	req := httptest.NewRequest("POST", "/v1/blogs", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}
	if m.blogs.LastPayload["title"] != "Hidden Gems" {
		t.Errorf("Expected title in payload, got %v", m.blogs.LastPayload["title"])
	}
	taglines := m.blogs.LastPayload["taglines"].([]string)
	if len(taglines) != 1 {
		t.Errorf("Expected blank taglines filtered, got %v", taglines)
	}
}

func TestDeleteBlog(t *testing.T) {
	router, m := setupTestRouter()
	m.blogs.Blogs["b1"] = &models.Blog{ID: "b1", Title: "Old"}

	req := httptest.NewRequest("DELETE", "/v1/blogs/b1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if len(m.blogs.Deleted) != 1 || m.blogs.Deleted[0] != "b1" {
		t.Errorf("Expected b1 deleted, got %v", m.blogs.Deleted)
	}
}

func TestCreateExperience_ValidationBlocked(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{"region":"Africa"}`)
	req := httptest.NewRequest("POST", "/v1/experiences", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Code)
	}
	if m.experiences.CreateCalls != 0 {
		t.Error("A blocked submit must not reach the backend")
	}
}

func TestTagEndpoints(t *testing.T) {
	router, m := setupTestRouter()

	body := bytes.NewBufferString(`{"name":"luxury"}`)
	req := httptest.NewRequest("POST", "/v1/tags", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/v1/tags", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var tags []models.Tag
	json.Unmarshal(w.Body.Bytes(), &tags)
	if len(tags) != 1 || tags[0].Name != "luxury" {
		t.Errorf("Expected the created tag, got %v", tags)
	}

	req = httptest.NewRequest("DELETE", "/v1/tags/tag-luxury", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	if len(m.tags.Deleted) != 1 {
		t.Errorf("Expected 1 deletion, got %v", m.tags.Deleted)
	}
}

func TestCreateTag_MissingName(t *testing.T) {
	router, _ := setupTestRouter()

	body := bytes.NewBufferString(`{}`)
	req := httptest.NewRequest("POST", "/v1/tags", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestContactEndpoints(t *testing.T) {
	router, m := setupTestRouter()
	m.contacts.Contacts["c1"] = &models.ContactInquiry{ID: "c1", FullName: "Jane Doe", Email: "jane@example.com"}

	req := httptest.NewRequest("GET", "/v1/contacts/c1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var contact models.ContactInquiry
	json.Unmarshal(w.Body.Bytes(), &contact)
	if contact.FullName != "Jane Doe" {
		t.Errorf("Expected contact name, got '%s'", contact.FullName)
	}

	req = httptest.NewRequest("DELETE", "/v1/contacts/c1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
}

func TestLocationEndpoints(t *testing.T) {
	router, _ := setupTestRouter()

	tests := []struct {
		name     string
		url      string
		contains string
	}{
		{"continents", "/v1/locations/continents", "Europe"},
		{"countries", "/v1/locations/continents/Europe/countries", "Switzerland"},
		{"states", "/v1/locations/countries/CH/states", "Valais"},
		{"cities", "/v1/locations/countries/CH/cities", "Zermatt"},
		{"search", "/v1/locations/search?q=united", "United Kingdom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tt.contains)) {
				t.Errorf("Expected '%s' in response, got: %s", tt.contains, w.Body.String())
			}
		})
	}
}

func TestLocationEndpoints_UnknownYieldEmptyList(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/locations/continents/Atlantis/countries", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "[]" {
		t.Errorf("Expected empty list, got: %s", w.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("OPTIONS", "/v1/blogs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for OPTIONS, got %d", w.Code)
	}

	allowOrigin := w.Header().Get("Access-Control-Allow-Origin")
	if allowOrigin != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got '%s'", allowOrigin)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID header")
	}

	req = httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") != "fixed-id" {
		t.Errorf("Expected the supplied request id echoed, got '%s'", w.Header().Get("X-Request-ID"))
	}
}
