package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	. "pokereview/internal/adapter/http/helper"
	"pokereview/internal/adapter/http/validation"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/model/request"
	"pokereview/internal/core/model/response"
	"pokereview/internal/core/port"
)

type CountryHandler struct {
	svc port.CountryService
}

func NewCountryHandler(svc port.CountryService) *CountryHandler {
	return &CountryHandler{
		svc: svc,
	}
}

func (h *CountryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	countries, err := h.svc.List(ctx)

	if err != nil {
		SendInternalError(c, "Error getting countries")
		return
	}

	data := make([]response.CountryResponse, 0, len(countries))

	for _, country := range countries {
		data = append(data, response.CountryResponse(country))
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *CountryHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	country, err := h.svc.Get(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.CountryResponse(country))
}

func (h *CountryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CountryRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	err := h.svc.Create(ctx, domain.Country{Name: params.Name})

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Country Created")
}

func (h *CountryHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	var params request.CountryRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if params.ID != 0 && params.ID != id {
		SendBadRequestError(c, "id", "Body id does not match path id")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	err = h.svc.Update(ctx, domain.Country{ID: id, Name: params.Name})

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Country Updated")
}

func (h *CountryHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Country Deleted")
}
