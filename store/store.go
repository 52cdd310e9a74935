package store

import (
	"context"
	"errors"

	"triviaapp/models"
)

// ErrNotFound is returned when a question or category id does not exist.
var ErrNotFound = errors.New("not found")

// QuestionStore is the persistence surface consumed by the handlers and the
// quiz selector. Listings return questions in ascending id order so repeated
// pagination over an unchanged store is stable.
type QuestionStore interface {
	ListAll(ctx context.Context) ([]models.Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
	Search(ctx context.Context, term string) ([]models.Question, error)
	GetByID(ctx context.Context, id int) (models.Question, error)
	Create(ctx context.Context, q models.Question) (models.Question, error)
	DeleteByID(ctx context.Context, id int) error
}

type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (models.Category, error)
}
