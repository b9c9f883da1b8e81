package scaffold

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveForms(t *testing.T) {
	names, err := Derive("ProductOrder", "")
	require.NoError(t, err)

	assert.Equal(t, "ProductOrder", names.Raw)
	assert.Equal(t, "ProductOrder", names.Pascal)
	assert.Equal(t, "productorder", names.Lower)
	assert.Equal(t, "PRODUCTORDER", names.Upper)
	assert.Equal(t, "product-order", names.Kebab)
	assert.Equal(t, "productorder", names.TableName)
}

func TestDeriveUppercasesOnlyFirstLetter(t *testing.T) {
	// * multi-word inputs are deliberately not normalized further
	names, err := Derive("order", "")
	require.NoError(t, err)
	assert.Equal(t, "Order", names.Pascal)

	names, err = Derive("productOrder", "")
	require.NoError(t, err)
	assert.Equal(t, "ProductOrder", names.Pascal)
}

func TestDeriveNonASCII(t *testing.T) {
	names, err := Derive("émodule", "")
	require.NoError(t, err)

	assert.Equal(t, "Émodule", names.Pascal)
	assert.Equal(t, "émodule", names.Lower)
	assert.True(t, utf8.ValidString(names.Pascal))
	assert.True(t, utf8.ValidString(names.Kebab))
}

func TestDeriveTableOverride(t *testing.T) {
	names, err := Derive("Product", "inventory_items")
	require.NoError(t, err)

	assert.Equal(t, "product", names.Lower)
	assert.Equal(t, "inventory_items", names.TableName)
}

func TestDeriveEmptyName(t *testing.T) {
	_, err := Derive("", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Derive("   ", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeriveDeterministic(t *testing.T) {
	first, err := Derive("ProductOrder", "inventory_items")
	require.NoError(t, err)

	second, err := Derive("ProductOrder", "inventory_items")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDeriveKebabShape(t *testing.T) {
	for _, raw := range []string{"Order", "ProductOrder", "Account", "UserProfileEntry", "x"} {
		names, err := Derive(raw, "")
		require.NoError(t, err)

		assert.NotContains(t, names.Kebab, "--", "kebab of %q", raw)
		assert.False(t, strings.HasPrefix(names.Kebab, "-"), "kebab of %q", raw)
		assert.False(t, strings.HasSuffix(names.Kebab, "-"), "kebab of %q", raw)
	}
}

func TestExpand(t *testing.T) {
	names, err := Derive("ProductOrder", "inventory_items")
	require.NoError(t, err)

	expanded := names.Expand("{Module} {module} {MODULE} {module-path} {table} {id}")
	assert.Equal(t, "ProductOrder productorder PRODUCTORDER product-order inventory_items {id}", expanded)
}
