package domain

type Reviewer struct {
	ID        int
	FirstName string `validate:"required,min=1,max=100"`
	LastName  string `validate:"required,min=1,max=100"`
}
