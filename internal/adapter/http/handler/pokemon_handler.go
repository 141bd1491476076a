package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	. "pokereview/internal/adapter/http/helper"
	"pokereview/internal/adapter/http/validation"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/model/request"
	"pokereview/internal/core/model/response"
	"pokereview/internal/core/port"
)

const birthDateLayout = "2006-01-02"

type PokemonHandler struct {
	svc port.PokemonService
}

func NewPokemonHandler(svc port.PokemonService) *PokemonHandler {
	return &PokemonHandler{
		svc: svc,
	}
}

func (h *PokemonHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	pokemon, err := h.svc.List(ctx)

	if err != nil {
		SendInternalError(c, "Error getting pokemon")
		return
	}

	SendSuccess(c, http.StatusOK, pokemonResponses(pokemon))
}

func (h *PokemonHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	pokemon, err := h.svc.Get(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.PokemonResponse{
		ID:        pokemon.ID,
		Name:      pokemon.Name,
		BirthDate: pokemon.BirthDate,
	})
}

func (h *PokemonHandler) Rating(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	rating, err := h.svc.Rating(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, gin.H{"rating": rating})
}

func (h *PokemonHandler) Reviews(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	reviews, err := h.svc.ReviewsOfPokemon(ctx, id)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, reviewResponses(reviews))
}

// Create links the pokemon to an owner and a category given as query
// params, matching the original request shape.
func (h *PokemonHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, err := strconv.Atoi(c.Query("ownerId"))

	if err != nil {
		SendBadRequestError(c, "ownerId", "Invalid ownerId")
		return
	}

	categoryID, err := strconv.Atoi(c.Query("catId"))

	if err != nil {
		SendBadRequestError(c, "catId", "Invalid catId")
		return
	}

	var params request.PokemonRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	pokemon, err := pokemonFromRequest(params, 0)

	if err != nil {
		SendBadRequestError(c, "birth_date", "Invalid birth_date")
		return
	}

	if err := h.svc.Create(ctx, ownerID, categoryID, pokemon); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Pokemon Created!")
}

func (h *PokemonHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid id")
		return
	}

	ownerID, err := strconv.Atoi(c.Query("ownerId"))

	if err != nil {
		SendBadRequestError(c, "ownerId", "Invalid ownerId")
		return
	}

	categoryID, err := strconv.Atoi(c.Query("catId"))

	if err != nil {
		SendBadRequestError(c, "catId", "Invalid catId")
		return
	}

	var params request.PokemonRequest

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

	pokemon, err := pokemonFromRequest(params, id)

	if err != nil {
		SendBadRequestError(c, "birth_date", "Invalid birth_date")
		return
	}

	if err := h.svc.Update(ctx, ownerID, categoryID, pokemon); err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Pokemon Updated!")
}

func (h *PokemonHandler) Delete(c *gin.Context) {
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

	SendSuccess(c, http.StatusOK, nil, "Pokemon Deleted!")
}

func pokemonFromRequest(params request.PokemonRequest, id int) (domain.Pokemon, error) {
	pokemon := domain.Pokemon{
		ID:   id,
		Name: params.Name,
	}

	if params.BirthDate != "" {
		birthDate, err := time.Parse(birthDateLayout, params.BirthDate)

		if err != nil {
			return domain.Pokemon{}, err
		}

		pokemon.BirthDate = birthDate
	}

	return pokemon, nil
}
