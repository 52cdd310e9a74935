package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"triviaapp/models"
)

const questionFields = "id, question, answer, category, difficulty"

// PostgresQuestionStore implements QuestionStore over a pgx pool.
type PostgresQuestionStore struct {
	pool *pgxpool.Pool
}

func NewPostgresQuestionStore(pool *pgxpool.Pool) *PostgresQuestionStore {
	return &PostgresQuestionStore{pool: pool}
}

func (s *PostgresQuestionStore) ListAll(ctx context.Context) ([]models.Question, error) {
	query := fmt.Sprintf("SELECT %s FROM questions ORDER BY id ASC", questionFields)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (s *PostgresQuestionStore) ListByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	query := fmt.Sprintf("SELECT %s FROM questions WHERE category = $1 ORDER BY id ASC", questionFields)
	rows, err := s.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions by category: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (s *PostgresQuestionStore) Search(ctx context.Context, term string) ([]models.Question, error) {
	query := fmt.Sprintf("SELECT %s FROM questions WHERE question ILIKE $1 ORDER BY id ASC", questionFields)
	rows, err := s.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (s *PostgresQuestionStore) GetByID(ctx context.Context, id int) (models.Question, error) {
	var q models.Question
	query := fmt.Sprintf("SELECT %s FROM questions WHERE id = $1", questionFields)
	err := s.pool.QueryRow(ctx, query, id).
		Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

func (s *PostgresQuestionStore) Create(ctx context.Context, q models.Question) (models.Question, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO questions (question, answer, category, difficulty)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		q.Question, q.Answer, q.Category, q.Difficulty).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("create question: %w", err)
	}
	return q, nil
}

func (s *PostgresQuestionStore) DeleteByID(ctx context.Context, id int) error {
	result, err := s.pool.Exec(ctx, "DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PostgresCategoryStore implements CategoryStore over a pgx pool.
type PostgresCategoryStore struct {
	pool *pgxpool.Pool
}

func NewPostgresCategoryStore(pool *pgxpool.Pool) *PostgresCategoryStore {
	return &PostgresCategoryStore{pool: pool}
}

func (s *PostgresCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM categories ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresCategoryStore) GetByID(ctx context.Context, id int) (models.Category, error) {
	var c models.Category
	err := s.pool.QueryRow(ctx, "SELECT id, name FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func scanQuestions(rows pgx.Rows) ([]models.Question, error) {
	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
