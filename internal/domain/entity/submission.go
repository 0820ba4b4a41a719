package entity

import "time"

// Submission es un envío de respuestas de un usuario a una encuesta.
// Agrupa N Answer insertadas en una misma transacción; UUID identifica el
// envío de cara al cliente sin exponer el id secuencial.
type Submission struct {
	ID           int64
	UUID         string
	SurveyID     int64
	RespondentID int64 // users.id de quien responde
	SubmittedAt  time.Time
}

// Answer es la respuesta a una pregunta dentro de un Submission.
type Answer struct {
	ID           int64
	SubmissionID int64
	QuestionID   int64
	Value        string // texto libre, opción elegida o número 1..5 como texto
}
