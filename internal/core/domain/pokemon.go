package domain

import "time"

type Pokemon struct {
	ID        int
	Name      string `validate:"required,min=1,max=100"`
	BirthDate time.Time
}
