package models

type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type QuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   int    `json:"category" validate:"required"`
	Difficulty int    `json:"difficulty" validate:"required,min=1,max=5"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
}

type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int         `json:"previous_questions"`
}

// QuizCategory mirrors the client payload; ID 0 means no category filter.
type QuizCategory struct {
	ID int `json:"id"`
}
