package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stamp agrupa o ID e os timestamps gerenciados pelo sistema.
// É embutido nas entidades persistidas e aplicado pelo repositório a cada Save.
type Stamp struct {
	ID         string    `json:"id"`
	CreateTime time.Time `json:"create_time"`
	UpdateTime time.Time `json:"update_time"`
}

// IsNew indica que o registro ainda não foi persistido.
func (s *Stamp) IsNew() bool { return s.ID == "" }

// Touch atribui ID e CreateTime na primeira chamada e sempre renova UpdateTime.
// O ID é um UUIDv7, ordenável pelo instante de criação.
func (s *Stamp) Touch(now time.Time) error {
	now = now.UTC()
	if s.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		s.ID = id.String()
		s.CreateTime = now
	}
	s.UpdateTime = now
	return nil
}
