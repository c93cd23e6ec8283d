package quiz

// CreateQuizRequest is the body of POST /api/quiz/create. Pointers tell an
// absent number apart from zero.
type CreateQuizRequest struct {
	Topic             string `json:"topic"`
	Level             string `json:"level"`
	NumberOfQuestions *int   `json:"numberOfQuestions"`
	TimeLimit         *int   `json:"timeLimit"`
}

// ListFilter is applied in field order: ID, then PublicOnly, then UserID,
// falling back to public quizzes. Query narrows whichever set was chosen.
type ListFilter struct {
	ID         *uint
	PublicOnly bool
	UserID     *uint
	Query      string
}

type createResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Quiz    *Quiz  `json:"quiz"`
}

type listResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Data    []*Quiz `json:"data"`
}
