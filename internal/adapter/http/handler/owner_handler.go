package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	. "pokereview/internal/adapter/http/helper"
	"pokereview/internal/adapter/http/validation"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/model/request"
	"pokereview/internal/core/model/response"
	"pokereview/internal/core/port"
)

type OwnerHandler struct {
	svc port.OwnerService
}

func NewOwnerHandler(svc port.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		svc: svc,
	}
}

func (h *OwnerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	owners, err := h.svc.List(ctx)

	if err != nil {
		SendInternalError(c, "Error getting owners")
		return
	}

	data := make([]response.OwnerResponse, 0, len(owners))

	for _, owner := range owners {
		data = append(data, ownerResponse(owner))
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *OwnerHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	owner, err := h.svc.Get(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, ownerResponse(owner))
}

func (h *OwnerHandler) PokemonByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	pokemon, err := h.svc.PokemonByOwner(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, pokemonResponses(pokemon))
}

func (h *OwnerHandler) CountryByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	country, err := h.svc.CountryByOwner(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.CountryResponse(country))
}

// Create links the owner to a country given as the countryId query
// param, matching the original request shape.
func (h *OwnerHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	countryID, err := strconv.Atoi(c.Query("countryId"))

	if err != nil {
		SendBadRequestError(c, "countryId", "Invalid countryId")
		return
	}

	var params request.OwnerRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	owner := domain.Owner{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Gym:       params.Gym,
	}

	if err := h.svc.Create(ctx, countryID, owner); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Owner Created!")
}

func (h *OwnerHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	countryID, err := strconv.Atoi(c.Query("countryId"))

	if err != nil {
		SendBadRequestError(c, "countryId", "Invalid countryId")
		return
	}

	var params request.OwnerRequest

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

	owner := domain.Owner{
		ID:        id,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Gym:       params.Gym,
	}

	if err := h.svc.Update(ctx, countryID, owner); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Owner Updated!")
}

func (h *OwnerHandler) Delete(c *gin.Context) {
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

	SendSuccess(c, http.StatusOK, nil, "Owner Deleted!")
}

func ownerResponse(owner domain.Owner) response.OwnerResponse {
	return response.OwnerResponse{
		ID:        owner.ID,
		FirstName: owner.FirstName,
		LastName:  owner.LastName,
		Gym:       owner.Gym,
		CountryID: owner.CountryID,
	}
}
