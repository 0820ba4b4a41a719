package dto

import "time"

// CreateQuestionRequest entrada para crear una pregunta.
// Options solo aplica a kind=choice (opciones separadas por "|").
type CreateQuestionRequest struct {
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	Text       string `json:"text" validate:"required,min=1"`
	Kind       string `json:"kind" validate:"required,oneof=scale text choice"`
	Options    string `json:"options"`
}

// QuestionResponse salida de una pregunta.
type QuestionResponse struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"category_id"`
	Text       string    `json:"text"`
	Kind       string    `json:"kind"`
	Options    string    `json:"options,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// QuestionListResponse lista paginada de preguntas.
type QuestionListResponse struct {
	Items []QuestionResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
