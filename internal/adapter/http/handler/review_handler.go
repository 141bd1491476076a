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

type ReviewHandler struct {
	svc port.ReviewService
}

func NewReviewHandler(svc port.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := h.svc.List(ctx)

	if err != nil {
		SendInternalError(c, "Error getting reviews")
		return
	}

	SendSuccess(c, http.StatusOK, reviewResponses(reviews))
}

func (h *ReviewHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	review, err := h.svc.Get(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.ReviewResponse{
		ID:         review.ID,
		Title:      review.Title,
		Text:       review.Text,
		Rating:     review.Rating,
		PokemonID:  review.PokemonID,
		ReviewerID: review.ReviewerID,
	})
}

// Create links the review to a reviewer and a pokemon given as query
// params, matching the original request shape.
func (h *ReviewHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	reviewerID, err := strconv.Atoi(c.Query("reviewerId"))

	if err != nil {
		SendBadRequestError(c, "reviewerId", "Invalid reviewerId")
		return
	}

	pokemonID, err := strconv.Atoi(c.Query("pokeId"))

	if err != nil {
		SendBadRequestError(c, "pokeId", "Invalid pokeId")
		return
	}

	var params request.ReviewRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	review := domain.Review{
		Title:  params.Title,
		Text:   params.Text,
		Rating: params.Rating,
	}

	if err := h.svc.Create(ctx, reviewerID, pokemonID, review); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Review Created")
}

func (h *ReviewHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	var params request.ReviewRequest

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

	review := domain.Review{
		ID:     id,
		Title:  params.Title,
		Text:   params.Text,
		Rating: params.Rating,
	}

	if err := h.svc.Update(ctx, review); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Review Updated")
}

func (h *ReviewHandler) Delete(c *gin.Context) {
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

	SendSuccess(c, http.StatusOK, nil, "Review Deleted!")
}
