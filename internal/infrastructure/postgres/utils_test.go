package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder_Empty(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())
	assert.Empty(t, w.args)
}

func TestWhereBuilder_RenumbersPlaceholders(t *testing.T) {
	var w whereBuilder
	w.add("is_active = true")
	w.add("category = ?", "Jabones")
	w.addSearch("rosa", "name", "description", "sku")
	w.add("price BETWEEN ? AND ?", 10, 20)

	assert.Equal(t,
		" WHERE is_active = true AND category = $1 AND (name ILIKE $2 OR description ILIKE $2 OR sku ILIKE $2) AND price BETWEEN $3 AND $4",
		w.sql())
	assert.Equal(t, []any{"Jabones", "%rosa%", 10, 20}, w.args)

	assert.Equal(t, "$5", w.next(10))
	assert.Len(t, w.args, 5)
}

func TestWhereBuilder_SearchIgnoresEmpty(t *testing.T) {
	var w whereBuilder
	w.addSearch("", "name")
	assert.Equal(t, "", w.sql())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_x`, escapeLike(" 50% off_x "))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}
	wrapped := fmt.Errorf("insert: %w", pgErr)
	assert.True(t, isUniqueViolation(wrapped))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
