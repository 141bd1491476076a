package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"

	"pokereview/internal/adapter/database/repository"
	"pokereview/internal/core/domain"
	"pokereview/pkg/test"
	"pokereview/pkg/test/factory"
)

func TestCategoryRepository_SaveResults(t *testing.T) {
	RegisterTestingT(t)

	db := test.InitTestDB()
	defer db.Close()

	repo := repository.NewCategoryRepository(db, nil)
	ctx := context.Background()

	category := domain.Category{Name: "Water"}

	result, err := repo.Create(ctx, &category)
	assert.NoError(t, err)
	assert.Equal(t, domain.SaveCreated, result)
	assert.NotZero(t, category.ID)

	result, err = repo.Update(ctx, domain.Category{ID: category.ID, Name: "Fire"})
	assert.NoError(t, err)
	assert.Equal(t, domain.SaveUpdated, result)

	// Touching an absent row is not an error, just no change.
	result, err = repo.Update(ctx, domain.Category{ID: 999, Name: "Ghost"})
	assert.NoError(t, err)
	assert.Equal(t, domain.SaveNoChange, result)

	result, err = repo.Delete(ctx, category.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.SaveDeleted, result)

	result, err = repo.Delete(ctx, category.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.SaveNoChange, result)
}

func TestCategoryRepository_GetUnknownIsNotFound(t *testing.T) {
	db := test.InitTestDB()
	defer db.Close()

	repo := repository.NewCategoryRepository(db, nil)

	_, err := repo.Get(context.Background(), 42)

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCategoryRepository_Exists(t *testing.T) {
	db := test.InitTestDB()
	defer db.Close()

	repo := repository.NewCategoryRepository(db, nil)
	ctx := context.Background()

	found, err := repo.Exists(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, found)

	category := domain.Category{Name: "Water"}
	_, err = repo.Create(ctx, &category)
	assert.NoError(t, err)

	found, err = repo.Exists(ctx, category.ID)
	assert.NoError(t, err)
	assert.True(t, found)
}

func TestUserRepository_DuplicateEmailIsConflict(t *testing.T) {
	db := test.InitTestDB()
	defer db.Close()

	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	user := factory.NewUser(map[string]any{
		"Email":     "ash@example.com",
		"Username":  "ash",
		"CreatedAt": time.Now(),
		"UpdatedAt": time.Now(),
	})

	_, err := repo.Create(ctx, user)
	assert.NoError(t, err)

	// Same address in another case still trips the unique constraint.
	user.Email = "ASH@example.com"

	_, err = repo.Create(ctx, user)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	stored, err := repo.GetByEmail(ctx, "ash@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "ash@example.com", stored.Email)
}

func TestPokemonRepository_CreateRollsBackOnBadJoin(t *testing.T) {
	db := test.InitTestDB()
	defer db.Close()

	pokemonRepo := repository.NewPokemonRepository(db, nil)
	ctx := context.Background()

	// Owner 999 does not exist; the FK failure must undo the pokemon
	// row too.
	pokemon := domain.Pokemon{Name: "Onix", BirthDate: time.Now()}

	_, err := pokemonRepo.Create(ctx, 999, 999, &pokemon)
	assert.Error(t, err)

	all, err := pokemonRepo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestReviewRepository_ReviewsOfPokemonEmptySlice(t *testing.T) {
	db := test.InitTestDB()
	defer db.Close()

	repo := repository.NewReviewRepository(db, nil)

	reviews, err := repo.ReviewsOfPokemon(context.Background(), 123)

	assert.NoError(t, err)
	Expect(reviews).NotTo(BeNil())
	Expect(reviews).To(BeEmpty())
}
