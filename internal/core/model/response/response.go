package response

import "time"

// AuthResult is the registration/login boundary shape: a result flag,
// a signed token on success, accumulated reasons on failure.
type AuthResult struct {
	Result bool     `json:"result"`
	Token  string   `json:"token,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CountryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type OwnerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gym       string `json:"gym,omitempty"`
	CountryID int    `json:"country_id"`
}

type PokemonResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birth_date"`
}

type ReviewerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ReviewResponse struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Rating     int    `json:"rating"`
	PokemonID  int    `json:"pokemon_id"`
	ReviewerID int    `json:"reviewer_id"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}
