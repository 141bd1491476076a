package domain

type Category struct {
	ID   int
	Name string `validate:"required,min=1,max=100"`
}
