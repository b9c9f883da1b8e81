package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseParser(t *testing.T) {
	assert.Equal(t, []string{"product", "order"}, CaseParser("ProductOrder"))
	assert.Equal(t, []string{"product", "order"}, CaseParser("product_order"))
	assert.Equal(t, []string{"order"}, CaseParser("Order"))
	assert.Empty(t, CaseParser(""))
}

func TestToKebabCase(t *testing.T) {
	assert.Equal(t, "product-order", ToKebabCase("ProductOrder"))
	assert.Equal(t, "order", ToKebabCase("Order"))
	assert.Equal(t, "a-b-c", ToKebabCase("ABC"))
	assert.Equal(t, "", ToKebabCase(""))
}

func TestToDisplayName(t *testing.T) {
	assert.Equal(t, "Product Order", ToDisplayName("ProductOrder"))
	assert.Equal(t, "Order", ToDisplayName("Order"))
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "Order", UpperFirst("order"))
	assert.Equal(t, "ProductOrder", UpperFirst("productOrder"))
	assert.Equal(t, "", UpperFirst(""))

	// * a multi-byte first rune is uppercased whole, never byte-split
	assert.Equal(t, "Émodule", UpperFirst("émodule"))
	assert.Equal(t, "Ørder", UpperFirst("ørder"))
}
