package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"pokereview/internal/adapter/database/repository"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
	"pokereview/internal/core/service"
	"pokereview/pkg/test"
)

type OwnerServiceTestSuite struct {
	suite.Suite
	svc         port.OwnerService
	countryRepo port.CountryRepository

	countryID int
}

func (s *OwnerServiceTestSuite) SetupTest() {
	db := test.InitTestDB()

	ownerRepo := repository.NewOwnerRepository(db, nil)
	s.countryRepo = repository.NewCountryRepository(db, nil)
	s.svc = service.NewOwnerService(ownerRepo, s.countryRepo)

	country := domain.Country{Name: "Kanto"}
	_, err := s.countryRepo.Create(context.Background(), &country)
	assert.NoError(s.T(), err)
	s.countryID = country.ID
}

func TestOwnerServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(OwnerServiceTestSuite))
}

func (s *OwnerServiceTestSuite) TestCreate_LinksCountry() {
	err := s.svc.Create(context.Background(), s.countryID, domain.Owner{
		FirstName: "Brock",
		LastName:  "Harrison",
		Gym:       "Pewter",
	})
	assert.NoError(s.T(), err)

	owners, err := s.svc.List(context.Background())

	assert.NoError(s.T(), err)
	assert.Len(s.T(), owners, 1)
	assert.Equal(s.T(), s.countryID, owners[0].CountryID)
}

func (s *OwnerServiceTestSuite) TestCreate_UnknownCountryIsNotFound() {
	err := s.svc.Create(context.Background(), 999, domain.Owner{
		FirstName: "Brock",
		LastName:  "Harrison",
	})

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))

	owners, _ := s.svc.List(context.Background())
	assert.Empty(s.T(), owners)
}

func (s *OwnerServiceTestSuite) TestCreate_DuplicateFirstName() {
	err := s.svc.Create(context.Background(), s.countryID, domain.Owner{
		FirstName: "Brock",
		LastName:  "Harrison",
	})
	assert.NoError(s.T(), err)

	err = s.svc.Create(context.Background(), s.countryID, domain.Owner{
		FirstName: " brock ",
		LastName:  "Stone",
	})

	assert.True(s.T(), errors.Is(err, domain.ErrConflict))

	owners, _ := s.svc.List(context.Background())
	assert.Len(s.T(), owners, 1)
}

func (s *OwnerServiceTestSuite) TestUpdate_KeepingOwnFirstNameIsNotAConflict() {
	err := s.svc.Create(context.Background(), s.countryID, domain.Owner{
		FirstName: "Brock",
		LastName:  "Harrison",
	})
	assert.NoError(s.T(), err)

	owners, _ := s.svc.List(context.Background())

	err = s.svc.Update(context.Background(), s.countryID, domain.Owner{
		ID:        owners[0].ID,
		FirstName: "Brock",
		LastName:  "Stone",
	})

	assert.NoError(s.T(), err)
}

func (s *OwnerServiceTestSuite) TestCountryByOwner() {
	err := s.svc.Create(context.Background(), s.countryID, domain.Owner{
		FirstName: "Brock",
		LastName:  "Harrison",
	})
	assert.NoError(s.T(), err)

	owners, _ := s.svc.List(context.Background())

	country, err := s.svc.CountryByOwner(context.Background(), owners[0].ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Kanto", country.Name)
}

func (s *OwnerServiceTestSuite) TestCountryByOwner_UnknownOwnerIsNotFound() {
	_, err := s.svc.CountryByOwner(context.Background(), 999)

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}

func (s *OwnerServiceTestSuite) TestPokemonByOwner_UnknownOwnerIsNotFound() {
	_, err := s.svc.PokemonByOwner(context.Background(), 999)

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}

func (s *OwnerServiceTestSuite) TestDelete_UnknownIsNotFound() {
	err := s.svc.Delete(context.Background(), 999)

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}
