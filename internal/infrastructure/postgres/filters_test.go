package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bapesu/bapesu-api/internal/domain/repository"
)

func TestProductWhere(t *testing.T) {
	lo, hi := decimal.NewFromInt(10000), decimal.NewFromInt(50000)
	featured := true

	cases := []struct {
		name  string
		in    repository.ProductFilter
		where string
		args  []any
	}{
		{
			name:  "sin filtros solo activos",
			where: " WHERE is_active = true",
		},
		{
			name:  "categoría y estado",
			in:    repository.ProductFilter{Category: "Jabones", Status: "Disponible"},
			where: " WHERE is_active = true AND category = $1 AND status = $2",
			args:  []any{"Jabones", "Disponible"},
		},
		{
			name: "todos los filtros combinados",
			in: repository.ProductFilter{
				Category: "Jabones", Status: "Disponible", Search: "avena",
				MinPrice: &lo, MaxPrice: &hi, Featured: &featured, InStock: true,
			},
			where: " WHERE is_active = true AND category = $1 AND status = $2" +
				" AND (name ILIKE $3 OR description ILIKE $3 OR sku ILIKE $3)" +
				" AND price >= $4 AND price <= $5 AND is_featured = $6 AND stock > 0",
			args: []any{"Jabones", "Disponible", "%avena%", lo, hi, true},
		},
		{
			name:  "rango de precio sin categoría",
			in:    repository.ProductFilter{MaxPrice: &hi, InStock: true},
			where: " WHERE is_active = true AND price <= $1 AND stock > 0",
			args:  []any{hi},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := productWhere(tc.in)
			assert.Equal(t, tc.where, w.sql())
			assertArgs(t, tc.args, w.args)
		})
	}
}

func TestProductWhere_PaginationPlaceholders(t *testing.T) {
	lo := decimal.NewFromInt(10000)
	w := productWhere(repository.ProductFilter{Category: "Velas", Search: "lavanda", MinPrice: &lo})
	page := repository.Page{Number: 3, Size: 20}

	limit, offset := w.next(page.Size), w.next(page.Offset())
	assert.Equal(t, "$4", limit)
	assert.Equal(t, "$5", offset)
	require.Len(t, w.args, 5)
	assert.Equal(t, 20, w.args[3])
	assert.Equal(t, 40, w.args[4])
}

func TestUserWhere(t *testing.T) {
	active := false
	w := userWhere(repository.UserFilter{Active: &active, Role: "vendor", Search: "ana"})
	assert.Equal(t,
		" WHERE is_active = $1 AND role = $2 AND (first_name ILIKE $3 OR last_name ILIKE $3 OR email ILIKE $3)",
		w.sql())
	assert.Equal(t, []any{false, "vendor", "%ana%"}, w.args)

	assert.Equal(t, "", userWhere(repository.UserFilter{}).sql())
}

func TestCategoryWhere(t *testing.T) {
	cases := []struct {
		name  string
		in    repository.CategoryFilter
		where string
	}{
		{"por defecto solo activas", repository.CategoryFilter{}, " WHERE is_active = true"},
		{"incluye inactivas", repository.CategoryFilter{IncludeInactive: true}, ""},
		{"inactivas", repository.CategoryFilter{Status: "inactive"}, " WHERE is_active = false"},
		{"destacadas con búsqueda", repository.CategoryFilter{Status: "featured", Search: "piel"},
			" WHERE (name ILIKE $1 OR description ILIKE $1) AND is_featured = true AND is_active = true"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.where, categoryWhere(tc.in).sql())
		})
	}
}

func TestOrderWhere(t *testing.T) {
	w := orderWhere(repository.OrderFilter{UserID: "2b6f0cf1-3f7e-4d8a-9a51-0f6a3c1d2e4b", Status: "Entregado"})
	assert.Equal(t, " WHERE user_id = $1::uuid AND status = $2", w.sql())
	assert.Equal(t, "$3", w.next(10))

	w = orderWhere(repository.OrderFilter{Status: "Pendiente"})
	assert.Equal(t, " WHERE status = $1", w.sql())
	assert.Equal(t, []any{"Pendiente"}, w.args)
}

// assertArgs compara argumentos; los decimales se comparan por valor.
func assertArgs(t *testing.T, want, got []any) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if d, ok := want[i].(decimal.Decimal); ok {
			gd, ok := got[i].(decimal.Decimal)
			require.True(t, ok, "arg %d no es decimal", i)
			assert.True(t, d.Equal(gd), "arg %d: %s != %s", i, d, gd)
			continue
		}
		assert.Equal(t, want[i], got[i], "arg %d", i)
	}
}
