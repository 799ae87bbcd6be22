package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("Campos requeridos faltantes", "name", "price")
	assert.Equal(t, "Campos requeridos faltantes: name, price", err.Error())

	wrapped := fmt.Errorf("crear producto: %w", err)
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(ErrNotFound))
	assert.Equal(t, "sin campos", NewValidationError("sin campos").Error())
}
