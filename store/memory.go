package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"triviaapp/models"
)

// MemoryQuestionStore is an in-memory QuestionStore, used as the injectable
// substitute for Postgres in tests.
type MemoryQuestionStore struct {
	mu        sync.RWMutex
	questions map[int]models.Question
	nextID    int
}

func NewMemoryQuestionStore() *MemoryQuestionStore {
	return &MemoryQuestionStore{
		questions: make(map[int]models.Question),
		nextID:    1,
	}
}

func (s *MemoryQuestionStore) ListAll(ctx context.Context) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(models.Question) bool { return true }), nil
}

func (s *MemoryQuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(q models.Question) bool { return q.Category == categoryID }), nil
}

func (s *MemoryQuestionStore) Search(ctx context.Context, term string) ([]models.Question, error) {
	needle := strings.ToLower(term)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(q models.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}), nil
}

func (s *MemoryQuestionStore) GetByID(ctx context.Context, id int) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.questions[id]
	if !ok {
		return models.Question{}, ErrNotFound
	}
	return q, nil
}

func (s *MemoryQuestionStore) Create(ctx context.Context, q models.Question) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = s.nextID
	s.nextID++
	s.questions[q.ID] = q
	return q, nil
}

func (s *MemoryQuestionStore) DeleteByID(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.questions[id]; !ok {
		return ErrNotFound
	}
	delete(s.questions, id)
	return nil
}

// collect returns matching questions in ascending id order. Callers must hold
// at least a read lock.
func (s *MemoryQuestionStore) collect(match func(models.Question) bool) []models.Question {
	var result []models.Question
	for _, q := range s.questions {
		if match(q) {
			result = append(result, q)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// MemoryCategoryStore is the in-memory CategoryStore counterpart.
type MemoryCategoryStore struct {
	mu         sync.RWMutex
	categories map[int]models.Category
}

func NewMemoryCategoryStore(categories ...models.Category) *MemoryCategoryStore {
	s := &MemoryCategoryStore{categories: make(map[int]models.Category)}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	return s
}

func (s *MemoryCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.Category
	for _, c := range s.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *MemoryCategoryStore) GetByID(ctx context.Context, id int) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	return c, nil
}
