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

type ReviewerHandler struct {
	svc port.ReviewerService
}

func NewReviewerHandler(svc port.ReviewerService) *ReviewerHandler {
	return &ReviewerHandler{
		svc: svc,
	}
}

func (h *ReviewerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	reviewers, err := h.svc.List(ctx)

	if err != nil {
		SendInternalError(c, "Error getting reviewers")
		return
	}

	data := make([]response.ReviewerResponse, 0, len(reviewers))

	for _, reviewer := range reviewers {
		data = append(data, response.ReviewerResponse{
			ID:        reviewer.ID,
			FirstName: reviewer.FirstName,
			LastName:  reviewer.LastName,
		})
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *ReviewerHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	reviewer, err := h.svc.Get(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.ReviewerResponse{
		ID:        reviewer.ID,
		FirstName: reviewer.FirstName,
		LastName:  reviewer.LastName,
	})
}

func (h *ReviewerHandler) Reviews(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	reviews, err := h.svc.ReviewsByReviewer(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, reviewResponses(reviews))
}

func (h *ReviewerHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.ReviewerRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	reviewer := domain.Reviewer{
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}

	if err := h.svc.Create(ctx, reviewer); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Reviewer Created")
}

func (h *ReviewerHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	var params request.ReviewerRequest

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

	reviewer := domain.Reviewer{
		ID:        id,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}

	if err := h.svc.Update(ctx, reviewer); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Reviewer Updated")
}

func (h *ReviewerHandler) Delete(c *gin.Context) {
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

	SendSuccess(c, http.StatusOK, nil, "Reviewer Deleted")
}
