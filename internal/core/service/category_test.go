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

type CategoryServiceTestSuite struct {
	suite.Suite
	svc  port.CategoryService
	repo port.CategoryRepository
}

func (s *CategoryServiceTestSuite) SetupTest() {
	db := test.InitTestDB()

	s.repo = repository.NewCategoryRepository(db, nil)
	s.svc = service.NewCategoryService(s.repo)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) TestCreateAndList() {
	err := s.svc.Create(context.Background(), domain.Category{Name: "Water"})
	assert.NoError(s.T(), err)

	categories, err := s.svc.List(context.Background())

	assert.NoError(s.T(), err)
	assert.Len(s.T(), categories, 1)
	assert.Equal(s.T(), "Water", categories[0].Name)
}

func (s *CategoryServiceTestSuite) TestCreate_DuplicateNameTrimmedCaseInsensitive() {
	err := s.svc.Create(context.Background(), domain.Category{Name: "Water"})
	assert.NoError(s.T(), err)

	err = s.svc.Create(context.Background(), domain.Category{Name: " water "})

	assert.True(s.T(), errors.Is(err, domain.ErrConflict))

	categories, err := s.svc.List(context.Background())

	assert.NoError(s.T(), err)
	assert.Len(s.T(), categories, 1)
}

func (s *CategoryServiceTestSuite) TestGet_UnknownIsNotFound() {
	_, err := s.svc.Get(context.Background(), 999)

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}

func (s *CategoryServiceTestSuite) TestUpdate() {
	err := s.svc.Create(context.Background(), domain.Category{Name: "Water"})
	assert.NoError(s.T(), err)

	categories, _ := s.svc.List(context.Background())

	err = s.svc.Update(context.Background(), domain.Category{ID: categories[0].ID, Name: "Fire"})
	assert.NoError(s.T(), err)

	updated, err := s.svc.Get(context.Background(), categories[0].ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Fire", updated.Name)
}

func (s *CategoryServiceTestSuite) TestUpdate_UnknownIsNotFound() {
	err := s.svc.Update(context.Background(), domain.Category{ID: 999, Name: "Ghost"})

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}

func (s *CategoryServiceTestSuite) TestUpdate_KeepingOwnNameIsNotAConflict() {
	err := s.svc.Create(context.Background(), domain.Category{Name: "Water"})
	assert.NoError(s.T(), err)

	categories, _ := s.svc.List(context.Background())

	err = s.svc.Update(context.Background(), domain.Category{ID: categories[0].ID, Name: "Water"})

	assert.NoError(s.T(), err)
}

func (s *CategoryServiceTestSuite) TestDelete() {
	err := s.svc.Create(context.Background(), domain.Category{Name: "Water"})
	assert.NoError(s.T(), err)

	categories, _ := s.svc.List(context.Background())

	err = s.svc.Delete(context.Background(), categories[0].ID)
	assert.NoError(s.T(), err)

	_, err = s.svc.Get(context.Background(), categories[0].ID)
	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}

func (s *CategoryServiceTestSuite) TestDelete_UnknownIsNotFound() {
	err := s.svc.Delete(context.Background(), 999)

	assert.True(s.T(), errors.Is(err, domain.ErrNotFound))
}
