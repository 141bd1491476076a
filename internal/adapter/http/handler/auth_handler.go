package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"pokereview/internal/adapter/http/validation"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/model/request"
	"pokereview/internal/core/model/response"
	"pokereview/internal/core/port"
	"pokereview/pkg/metrics"
)

type AuthHandler struct {
	svc     port.AuthService
	metrics *metrics.AppMetrics
}

func NewAuthHandler(svc port.AuthService, appMetrics *metrics.AppMetrics) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		metrics: appMetrics,
	}
}

func (a *AuthHandler) recordAuth(ctx context.Context, operation, outcome string) {
	if a.metrics != nil {
		a.metrics.RecordAuthOperation(ctx, operation, outcome)
	}
}

// Register responds with the AuthResult envelope in every branch: a
// token on success, the accumulated reasons otherwise.
func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.SignUpRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, response.AuthResult{
			Result: false,
			Errors: []string{"Invalid Payload"},
		})
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		c.JSON(http.StatusBadRequest, response.AuthResult{
			Result: false,
			Errors: validationMessages(err),
		})
		return
	}

	token, err := a.svc.Register(ctx, &params)

	if errors.Is(err, domain.ErrConflict) {
		a.recordAuth(ctx, "register", "conflict")
		c.JSON(http.StatusConflict, response.AuthResult{
			Result: false,
			Errors: []string{"Email already in use"},
		})
		return
	}

	if err != nil {
		slog.Error("Auth#Register", "error", err)
		a.recordAuth(ctx, "register", "error")
		c.JSON(http.StatusInternalServerError, response.AuthResult{
			Result: false,
			Errors: []string{"Server error"},
		})
		return
	}

	a.recordAuth(ctx, "register", "success")
	c.JSON(http.StatusOK, response.AuthResult{
		Result: true,
		Token:  token,
	})
}

// Login never says whether the email or the password was wrong.
func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.LoginRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, response.AuthResult{
			Result: false,
			Errors: []string{"Invalid Payload"},
		})
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		c.JSON(http.StatusBadRequest, response.AuthResult{
			Result: false,
			Errors: validationMessages(err),
		})
		return
	}

	token, err := a.svc.Login(ctx, &params)

	if err != nil {
		a.recordAuth(ctx, "login", "failure")
		c.JSON(http.StatusUnauthorized, response.AuthResult{
			Result: false,
			Errors: []string{"Invalid Authentication Request"},
		})
		return
	}

	a.recordAuth(ctx, "login", "success")
	c.JSON(http.StatusOK, response.AuthResult{
		Result: true,
		Token:  token,
	})
}

func validationMessages(err error) []string {
	formatted := validation.FormatValidationErrors(err)

	messages := make([]string, 0, len(formatted))

	for _, fieldError := range formatted {
		messages = append(messages, fieldError.Message)
	}

	if len(messages) == 0 {
		messages = append(messages, "Invalid Payload")
	}

	return messages
}
