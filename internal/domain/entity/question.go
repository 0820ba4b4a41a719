package entity

import "time"

// Tipos de pregunta soportados.
const (
	QuestionScale  = "scale"  // respuesta 1..5
	QuestionText   = "text"   // respuesta libre
	QuestionChoice = "choice" // respuesta entre Options
)

// ValidQuestionKind informa si kind es un tipo de pregunta conocido.
func ValidQuestionKind(kind string) bool {
	return kind == QuestionScale || kind == QuestionText || kind == QuestionChoice
}

// Question es una pregunta reutilizable perteneciente a una Category.
type Question struct {
	ID         int64
	CategoryID int64
	Text       string
	Kind       string // scale, text, choice
	Options    string // para choice: opciones separadas por "|"; vacío en el resto
	CreatedAt  time.Time
}
