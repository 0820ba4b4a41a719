package dto

import "time"

// AnswerInput una respuesta individual dentro de un envío.
type AnswerInput struct {
	QuestionID int64  `json:"question_id" validate:"required,gt=0"`
	Value      string `json:"value" validate:"required"`
}

// SubmitResponseRequest entrada para responder una encuesta. El survey_id
// viene en la ruta; el respondent sale del token.
type SubmitResponseRequest struct {
	Answers []AnswerInput `json:"answers" validate:"required,min=1,dive"`
}

// SubmissionResponse confirmación del envío registrado.
type SubmissionResponse struct {
	SubmissionUUID string    `json:"submission_uuid"`
	SurveyID       int64     `json:"survey_id"`
	AnswerCount    int       `json:"answer_count"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
