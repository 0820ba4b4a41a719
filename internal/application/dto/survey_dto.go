package dto

import "time"

// CreateSurveyRequest entrada para crear una encuesta a partir de preguntas existentes.
type CreateSurveyRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=300"`
	Description string  `json:"description"`
	QuestionIDs []int64 `json:"question_ids" validate:"required,min=1,dive,gt=0"`
}

// SurveyResponse salida de una encuesta (cabecera).
type SurveyResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// SurveyDetailResponse encuesta con sus preguntas en orden.
type SurveyDetailResponse struct {
	SurveyResponse
	Questions []QuestionResponse `json:"questions"`
}

// SurveyListResponse lista paginada de encuestas.
type SurveyListResponse struct {
	Items []SurveyResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
