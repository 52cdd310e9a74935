package services

import (
	"context"
	"fmt"
	"math/rand"

	"triviaapp/models"
	"triviaapp/store"
)

// QuizService picks the next unseen question for a quiz session. The server
// keeps no session state: the client resends the full exclusion set each call.
type QuizService struct {
	questions  store.QuestionStore
	categories store.CategoryStore
	intn       func(n int) int
}

func NewQuizService(questions store.QuestionStore, categories store.CategoryStore) *QuizService {
	return &QuizService{
		questions:  questions,
		categories: categories,
		intn:       rand.Intn,
	}
}

// NewQuizServiceWithRand uses the given intn for selection, so tests can make
// the pick deterministic.
func NewQuizServiceWithRand(questions store.QuestionStore, categories store.CategoryStore, intn func(n int) int) *QuizService {
	return &QuizService{questions: questions, categories: categories, intn: intn}
}

// NextQuestion returns a uniformly random question from the candidate pool
// that is not in excludeIDs. A categoryID of 0 means no category filter; a
// nonzero categoryID that does not exist yields store.ErrNotFound. A nil
// question with a nil error means the pool is exhausted.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, excludeIDs []int) (*models.Question, error) {
	var pool []models.Question
	var err error

	if categoryID == 0 {
		pool, err = s.questions.ListAll(ctx)
	} else {
		if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
			return nil, fmt.Errorf("resolve quiz category: %w", err)
		}
		pool, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz candidates: %w", err)
	}

	seen := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		seen[id] = true
	}

	var candidates []models.Question
	for _, q := range pool {
		if !seen[q.ID] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	next := candidates[s.intn(len(candidates))]
	return &next, nil
}
