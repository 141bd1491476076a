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

type CategoryHandler struct {
	svc port.CategoryService
}

func NewCategoryHandler(svc port.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		svc: svc,
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.svc.List(ctx)

	if err != nil {
		SendInternalError(c, "Error getting categories")
		return
	}

	data := make([]response.CategoryResponse, 0, len(categories))

	for _, category := range categories {
		data = append(data, response.CategoryResponse(category))
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	category, err := h.svc.Get(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.CategoryResponse(category))
}

func (h *CategoryHandler) PokemonByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	pokemon, err := h.svc.PokemonByCategory(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, pokemonResponses(pokemon))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.CategoryRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	err := h.svc.Create(ctx, domain.Category{Name: params.Name})

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Category Created!")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	var params request.CategoryRequest

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

	err = h.svc.Update(ctx, domain.Category{ID: id, Name: params.Name})

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Category Updated!")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
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

	SendSuccess(c, http.StatusOK, nil, "Category Deleted!")
}

func pathID(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func pokemonResponses(pokemon []domain.Pokemon) []response.PokemonResponse {
	data := make([]response.PokemonResponse, 0, len(pokemon))

	for _, p := range pokemon {
		data = append(data, response.PokemonResponse{
			ID:        p.ID,
			Name:      p.Name,
			BirthDate: p.BirthDate,
		})
	}

	return data
}

func reviewResponses(reviews []domain.Review) []response.ReviewResponse {
	data := make([]response.ReviewResponse, 0, len(reviews))

	for _, r := range reviews {
		data = append(data, response.ReviewResponse{
			ID:         r.ID,
			Title:      r.Title,
			Text:       r.Text,
			Rating:     r.Rating,
			PokemonID:  r.PokemonID,
			ReviewerID: r.ReviewerID,
		})
	}

	return data
}
