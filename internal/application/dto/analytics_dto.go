package dto

// QuestionStats estadísticas de una pregunta dentro de una encuesta.
// AverageScale se serializa como string decimal ("3.75") y se omite para
// preguntas no numéricas.
type QuestionStats struct {
	QuestionID   int64  `json:"question_id"`
	Text         string `json:"text"`
	Kind         string `json:"kind"`
	AnswerCount  int64  `json:"answer_count"`
	AverageScale string `json:"average_scale,omitempty"`
}

// SurveyStatsResponse resumen de participación y resultados de una encuesta.
type SurveyStatsResponse struct {
	SurveyID        int64           `json:"survey_id"`
	Title           string          `json:"title"`
	SubmissionCount int64           `json:"submission_count"`
	Questions       []QuestionStats `json:"questions"`
}
