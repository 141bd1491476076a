package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"pokereview/internal/adapter/database/repository"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
	"pokereview/internal/core/service"
	"pokereview/pkg/test"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	svc port.ReviewService

	reviewerID int
	pokemonID  int
}

func (s *ReviewServiceTestSuite) SetupTest() {
	db := test.InitTestDB()

	reviewRepo := repository.NewReviewRepository(db, nil)
	reviewerRepo := repository.NewReviewerRepository(db, nil)
	pokemonRepo := repository.NewPokemonRepository(db, nil)
	ownerRepo := repository.NewOwnerRepository(db, nil)
	categoryRepo := repository.NewCategoryRepository(db, nil)
	countryRepo := repository.NewCountryRepository(db, nil)

	s.svc = service.NewReviewService(reviewRepo, reviewerRepo, pokemonRepo)

	ctx := context.Background()

	country := domain.Country{Name: "Kanto"}
	_, err := countryRepo.Create(ctx, &country)
	assert.NoError(s.T(), err)

	owner := domain.Owner{FirstName: "Brock", LastName: "Harrison", CountryID: country.ID}
	_, err = ownerRepo.Create(ctx, &owner)
	assert.NoError(s.T(), err)

	category := domain.Category{Name: "Rock"}
	_, err = categoryRepo.Create(ctx, &category)
	assert.NoError(s.T(), err)

	reviewer := domain.Reviewer{FirstName: "Misty", LastName: "Waterflower"}
	_, err = reviewerRepo.Create(ctx, &reviewer)
	assert.NoError(s.T(), err)
	s.reviewerID = reviewer.ID

	pokemon := domain.Pokemon{Name: "Onix", BirthDate: time.Date(1996, 2, 27, 0, 0, 0, 0, time.UTC)}
	_, err = pokemonRepo.Create(ctx, owner.ID, category.ID, &pokemon)
	assert.NoError(s.T(), err)
	s.pokemonID = pokemon.ID
}

func TestReviewServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(ReviewServiceTestSuite))
}

func (s *ReviewServiceTestSuite) TestCreate_DuplicateTitle() {
	err := s.svc.Create(context.Background(), s.reviewerID, s.pokemonID, domain.Review{
		Title:  "Great",
		Text:   "Solid rock type",
		Rating: 5,
	})
	assert.NoError(s.T(), err)

	err = s.svc.Create(context.Background(), s.reviewerID, s.pokemonID, domain.Review{
		Title:  " GREAT ",
		Text:   "Another take",
		Rating: 3,
	})

	assert.True(s.T(), errors.Is(err, domain.ErrConflict))

	reviews, _ := s.svc.List(context.Background())
	assert.Len(s.T(), reviews, 1)
}

func (s *ReviewServiceTestSuite) TestUpdate_TitleIsNotRecheckedForDuplicates() {
	for _, review := range []domain.Review{
		{Title: "Great", Text: "Solid rock type", Rating: 5},
		{Title: "Mediocre", Text: "Too slow", Rating: 2},
	} {
		err := s.svc.Create(context.Background(), s.reviewerID, s.pokemonID, review)
		assert.NoError(s.T(), err)
	}

	reviews, _ := s.svc.List(context.Background())

	err := s.svc.Update(context.Background(), domain.Review{
		ID:     reviews[1].ID,
		Title:  "Great",
		Text:   "Changed my mind",
		Rating: 4,
	})

	assert.NoError(s.T(), err)
}

func (s *ReviewServiceTestSuite) TestCreate_UnknownReviewerIsNotFound() {
	err := s.svc.Create(context.Background(), 999, s.pokemonID, domain.Review{
		Title:  "Great",
		Text:   "Text",
		Rating: 5,
	})

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}
