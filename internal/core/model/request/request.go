package request

type SignUpRequest struct {
	Username string `json:"username,omitempty" validate:"required,min=2,max=100"`
	Email    string `json:"email,omitempty" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

type CategoryRequest struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CountryRequest struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type OwnerRequest struct {
	ID        int    `json:"id,omitempty"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Gym       string `json:"gym,omitempty" validate:"max=100"`
}

type PokemonRequest struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name" validate:"required,min=1,max=100"`
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type ReviewerRequest struct {
	ID        int    `json:"id,omitempty"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
}

type ReviewRequest struct {
	ID     int    `json:"id,omitempty"`
	Title  string `json:"title" validate:"required,min=1,max=200"`
	Text   string `json:"text" validate:"required,min=1,max=2000"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}
