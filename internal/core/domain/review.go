package domain

type Review struct {
	ID         int
	Title      string `validate:"required,min=1,max=200"`
	Text       string `validate:"required,min=1,max=2000"`
	Rating     int    `validate:"min=1,max=5"`
	PokemonID  int
	ReviewerID int
}
