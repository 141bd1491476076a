package domain

type Owner struct {
	ID        int
	FirstName string `validate:"required,min=1,max=100"`
	LastName  string `validate:"required,min=1,max=100"`
	Gym       string `validate:"max=100"`
	CountryID int
}
