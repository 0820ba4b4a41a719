package entity

import "time"

// Survey es un cuestionario armado a partir de preguntas existentes.
type Survey struct {
	ID          int64
	Title       string
	Description string
	CreatedBy   int64 // users.id del creador
	CreatedAt   time.Time
}

// SurveyQuestion asocia una pregunta a una encuesta con su posición.
type SurveyQuestion struct {
	SurveyID   int64
	QuestionID int64
	Position   int
}
