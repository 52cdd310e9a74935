package models

type CategoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}

type QuestionListResponse struct {
	Success         bool        `json:"success"`
	Questions       []Question  `json:"questions"`
	TotalQuestions  int         `json:"total_questions"`
	Categories      CategoryMap `json:"categories,omitempty"`
	CurrentCategory string      `json:"current_category,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deleted int    `json:"deleted,omitempty"`
}

// QuizResponse carries a nil Question when the candidate pool is exhausted,
// so clients always see an explicit "question": null.
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}
