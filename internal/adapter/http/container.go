package http

import (
	"pokereview/internal/adapter/database"
	"pokereview/internal/adapter/database/repository"
	"pokereview/internal/adapter/http/handler"
	"pokereview/internal/core/port"
	"pokereview/internal/core/service"
	"pokereview/pkg/auth"
	"pokereview/pkg/metrics"
)

type Container struct {
	UserRepo     port.UserRepository
	CategoryRepo port.CategoryRepository
	CountryRepo  port.CountryRepository
	OwnerRepo    port.OwnerRepository
	PokemonRepo  port.PokemonRepository
	ReviewerRepo port.ReviewerRepository
	ReviewRepo   port.ReviewRepository

	AuthService     port.AuthService
	CategoryService port.CategoryService
	CountryService  port.CountryService
	OwnerService    port.OwnerService
	PokemonService  port.PokemonService
	ReviewerService port.ReviewerService
	ReviewService   port.ReviewService

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	CountryHandler  *handler.CountryHandler
	OwnerHandler    *handler.OwnerHandler
	PokemonHandler  *handler.PokemonHandler
	ReviewerHandler *handler.ReviewerHandler
	ReviewHandler   *handler.ReviewHandler
}

func NewContainer(db *database.DB, jwt *auth.JWT, probe port.Telemetry, appMetrics *metrics.AppMetrics) *Container {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db, probe)
	countryRepo := repository.NewCountryRepository(db, probe)
	ownerRepo := repository.NewOwnerRepository(db, probe)
	pokemonRepo := repository.NewPokemonRepository(db, probe)
	reviewerRepo := repository.NewReviewerRepository(db, probe)
	reviewRepo := repository.NewReviewRepository(db, probe)

	authSvc := service.NewAuthService(userRepo, jwt)
	categorySvc := service.NewCategoryService(categoryRepo)
	countrySvc := service.NewCountryService(countryRepo)
	ownerSvc := service.NewOwnerService(ownerRepo, countryRepo)
	pokemonSvc := service.NewPokemonService(pokemonRepo, ownerRepo, categoryRepo, reviewRepo)
	reviewerSvc := service.NewReviewerService(reviewerRepo)
	reviewSvc := service.NewReviewService(reviewRepo, reviewerRepo, pokemonRepo)

	return &Container{
		UserRepo:     userRepo,
		CategoryRepo: categoryRepo,
		CountryRepo:  countryRepo,
		OwnerRepo:    ownerRepo,
		PokemonRepo:  pokemonRepo,
		ReviewerRepo: reviewerRepo,
		ReviewRepo:   reviewRepo,

		AuthService:     authSvc,
		CategoryService: categorySvc,
		CountryService:  countrySvc,
		OwnerService:    ownerSvc,
		PokemonService:  pokemonSvc,
		ReviewerService: reviewerSvc,
		ReviewService:   reviewSvc,

		AuthHandler:     handler.NewAuthHandler(authSvc, appMetrics),
		CategoryHandler: handler.NewCategoryHandler(categorySvc),
		CountryHandler:  handler.NewCountryHandler(countrySvc),
		OwnerHandler:    handler.NewOwnerHandler(ownerSvc),
		PokemonHandler:  handler.NewPokemonHandler(pokemonSvc),
		ReviewerHandler: handler.NewReviewerHandler(reviewerSvc),
		ReviewHandler:   handler.NewReviewHandler(reviewSvc),
	}
}
