package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"pokereview/internal/adapter/database/repository"
	"pokereview/internal/adapter/http/handler"
	"pokereview/internal/adapter/http/routes"
	"pokereview/internal/core/model/response"
	"pokereview/internal/core/service"
	"pokereview/pkg/auth"
	"pokereview/pkg/config"
	"pokereview/pkg/metrics"
	"pokereview/pkg/test"
)

type AuthHandlerSuite struct {
	suite.Suite
	router     *gin.Engine
	jwt        *auth.JWT
	registry   *prometheus.Registry
	appMetrics *metrics.AppMetrics
}

func (s *AuthHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db := test.InitTestDB()

	s.jwt = auth.NewJWT(config.TokenConfig{
		Issuer:   "pokereview-test",
		Audience: "pokereview-clients",
		Secret:   "test-secret",
	})

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db, nil)

	authSvc := service.NewAuthService(userRepo, s.jwt)
	categorySvc := service.NewCategoryService(categoryRepo)

	s.registry = prometheus.NewRegistry()
	s.appMetrics = metrics.NewAppMetrics(s.registry)

	s.router = routes.SetupRouterForTests(routes.HandlersConfig{
		AuthHandler:     handler.NewAuthHandler(authSvc, s.appMetrics),
		CategoryHandler: handler.NewCategoryHandler(categorySvc),
	}, s.jwt)
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w
}

func (s *AuthHandlerSuite) register() response.AuthResult {
	w := s.postJSON("/auth/register", `{"username":"ash","email":"ash@example.com","password":"password123"}`)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var result response.AuthResult
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &result))

	return result
}

func (s *AuthHandlerSuite) TestRegister_ReturnsVerifiableToken() {
	result := s.register()

	assert.True(s.T(), result.Result)
	assert.NotEmpty(s.T(), result.Token)
	assert.Empty(s.T(), result.Errors)

	claims, err := s.jwt.Verify(result.Token)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "ash@example.com", claims["email"])
}

func (s *AuthHandlerSuite) TestRegister_DuplicateEmailIs409() {
	s.register()

	w := s.postJSON("/auth/register", `{"username":"ash2","email":"ash@example.com","password":"password123"}`)

	assert.Equal(s.T(), http.StatusConflict, w.Code)

	var result response.AuthResult
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &result))

	assert.False(s.T(), result.Result)
	assert.Contains(s.T(), result.Errors, "Email already in use")
}

func (s *AuthHandlerSuite) TestRegister_ValidationErrorsAccumulate() {
	w := s.postJSON("/auth/register", `{"username":"a","email":"not-an-email","password":"123"}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	var result response.AuthResult
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &result))

	assert.False(s.T(), result.Result)
	// One message per failed field, all reported at once.
	assert.Len(s.T(), result.Errors, 3)
}

func (s *AuthHandlerSuite) TestLogin_Success() {
	s.register()

	w := s.postJSON("/auth/login", `{"email":"ash@example.com","password":"password123"}`)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var result response.AuthResult
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &result))

	assert.True(s.T(), result.Result)
	assert.NotEmpty(s.T(), result.Token)
}

func (s *AuthHandlerSuite) TestLogin_GenericFailureForBothModes() {
	s.register()

	wrongPassword := s.postJSON("/auth/login", `{"email":"ash@example.com","password":"wrongpass123"}`)
	unknownEmail := s.postJSON("/auth/login", `{"email":"nobody@example.com","password":"password123"}`)

	assert.Equal(s.T(), http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(s.T(), http.StatusUnauthorized, unknownEmail.Code)

	// Identical bodies: the response never reveals which part was wrong.
	assert.Equal(s.T(), wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(s.T(), wrongPassword.Body.String(), "Invalid Authentication Request")
}

func (s *AuthHandlerSuite) TestAuthOperationsAreCounted() {
	s.register()

	s.postJSON("/auth/login", `{"email":"ash@example.com","password":"wrongpass123"}`)
	s.postJSON("/auth/login", `{"email":"ash@example.com","password":"password123"}`)

	assert.Equal(s.T(), 1.0, s.authCounter("register", "success"))
	assert.Equal(s.T(), 1.0, s.authCounter("login", "failure"))
	assert.Equal(s.T(), 1.0, s.authCounter("login", "success"))
}

func (s *AuthHandlerSuite) authCounter(operation, outcome string) float64 {
	families, err := s.registry.Gather()
	assert.NoError(s.T(), err)

	for _, family := range families {
		if family.GetName() != "auth_operations_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			matches := 0

			for _, label := range metric.GetLabel() {
				if label.GetName() == "operation" && label.GetValue() == operation {
					matches++
				}

				if label.GetName() == "outcome" && label.GetValue() == outcome {
					matches++
				}
			}

			if matches == 2 {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func (s *AuthHandlerSuite) TestProtectedRouteRejectsMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *AuthHandlerSuite) TestProtectedRouteAcceptsIssuedToken() {
	result := s.register()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthHandlerSuite) TestProtectedRouteRejectsGarbageToken() {
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}
