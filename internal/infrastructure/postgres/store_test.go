package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureReturningID_AgregaClausula(t *testing.T) {
	got := ensureReturningID("INSERT INTO companies (name) VALUES ($1)")
	assert.Equal(t, "INSERT INTO companies (name) VALUES ($1) RETURNING id", got)
}

func TestEnsureReturningID_RespetaReturningExistente(t *testing.T) {
	sql := "INSERT INTO submissions (uuid) VALUES ($1) RETURNING id, submitted_at"
	assert.Equal(t, sql, ensureReturningID(sql))
}

func TestEnsureReturningID_ReturningEnMinusculas(t *testing.T) {
	sql := "insert into answers (value) values ($1) returning id"
	assert.Equal(t, sql, ensureReturningID(sql))
}

func TestEnsureReturningID_RecortaPuntoYComaYEspacios(t *testing.T) {
	got := ensureReturningID("INSERT INTO categories (name) VALUES ($1);\n")
	assert.Equal(t, "INSERT INTO categories (name) VALUES ($1) RETURNING id", got)
}
