package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"pokereview/internal/adapter/database/repository"
	"pokereview/internal/adapter/http/handler"
	"pokereview/internal/adapter/http/routes"
	"pokereview/internal/core/model/response"
	"pokereview/internal/core/service"
	"pokereview/pkg/auth"
	"pokereview/pkg/config"
	"pokereview/pkg/test"
)

type CategoryHandlerSuite struct {
	suite.Suite
	router *gin.Engine
	token  string
}

func (s *CategoryHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db := test.InitTestDB()

	jwt := auth.NewJWT(config.TokenConfig{
		Issuer:   "pokereview-test",
		Audience: "pokereview-clients",
		Secret:   "test-secret",
	})

	categoryRepo := repository.NewCategoryRepository(db, nil)
	categorySvc := service.NewCategoryService(categoryRepo)

	s.router = routes.SetupRouterForTests(routes.HandlersConfig{
		CategoryHandler: handler.NewCategoryHandler(categorySvc),
	}, jwt)

	token, err := jwt.Issue(1, "ash@example.com")
	assert.NoError(s.T(), err)
	s.token = token
}

func TestCategoryHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader

	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w
}

func (s *CategoryHandlerSuite) TestCreate_ReturnsOriginalMessage() {
	w := s.do(http.MethodPost, "/categories", `{"name":"Water"}`)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var resp response.SuccessResponse
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(s.T(), "Category Created!", resp.Message)
}

func (s *CategoryHandlerSuite) TestCreate_DuplicateIs409() {
	s.do(http.MethodPost, "/categories", `{"name":"Water"}`)

	w := s.do(http.MethodPost, "/categories", `{"name":" water "}`)

	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

func (s *CategoryHandlerSuite) TestCreate_MissingNameIs400() {
	w := s.do(http.MethodPost, "/categories", `{}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *CategoryHandlerSuite) TestGet_UnknownIs404() {
	w := s.do(http.MethodGet, "/categories/999", "")

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *CategoryHandlerSuite) TestUpdate_BodyIDMismatchIs400() {
	s.do(http.MethodPost, "/categories", `{"name":"Water"}`)

	w := s.do(http.MethodPut, "/categories/1", `{"id":2,"name":"Fire"}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *CategoryHandlerSuite) TestFullCRUDFlow() {
	s.do(http.MethodPost, "/categories", `{"name":"Water"}`)

	list := s.do(http.MethodGet, "/categories", "")
	assert.Equal(s.T(), http.StatusOK, list.Code)
	assert.Contains(s.T(), list.Body.String(), "Water")

	update := s.do(http.MethodPut, "/categories/1", `{"name":"Fire"}`)
	assert.Equal(s.T(), http.StatusOK, update.Code)
	assert.Contains(s.T(), update.Body.String(), "Category Updated!")

	del := s.do(http.MethodDelete, "/categories/1", "")
	assert.Equal(s.T(), http.StatusOK, del.Code)
	assert.Contains(s.T(), del.Body.String(), "Category Deleted!")

	missing := s.do(http.MethodGet, "/categories/1", "")
	assert.Equal(s.T(), http.StatusNotFound, missing.Code)
}
