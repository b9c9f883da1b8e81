package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteSubstitutionOrder(t *testing.T) {
	rewriter := mustRewriter(t, "Order", "")

	got := string(rewriter.Rewrite([]byte("Example example EXAMPLE")))
	assert.Equal(t, "Order order ORDER", got)
}

func TestRewriteCompoundIdentifiers(t *testing.T) {
	rewriter := mustRewriter(t, "Order", "")

	content := []byte("class ExampleService { private ExampleRepositoryInterface $exampleRepository; }")
	got := string(rewriter.Rewrite(content))

	assert.Contains(t, got, "OrderService")
	assert.Contains(t, got, "OrderRepositoryInterface")
	assert.Contains(t, got, "$orderRepository")
	assert.NotContains(t, got, "Example")
	assert.NotContains(t, got, "example")
}

func TestRewriteTableDivergence(t *testing.T) {
	rewriter := mustRewriter(t, "Product", "inventory_items")

	content := []byte(
		"private const TABLE_NAME = 'example';\n" +
			"private const PERMISSION_PREFIX = 'example';\n" +
			"$rows = $db->select(orderBy: 'example_id');\n",
	)
	got := string(rewriter.Rewrite(content))

	// * table constant and storage identifiers track the override
	assert.Contains(t, got, "TABLE_NAME = 'inventory_items';")
	assert.Contains(t, got, "'inventory_items_id'")
	// * code identifiers keep the module's lowercase form
	assert.Contains(t, got, "PERMISSION_PREFIX = 'product';")
}

func TestRewriteNoDivergenceLeavesQuotedLiterals(t *testing.T) {
	rewriter := mustRewriter(t, "Order", "")

	got := string(rewriter.Rewrite([]byte("private const TABLE_NAME = 'example';")))
	assert.Equal(t, "private const TABLE_NAME = 'order';", got)
}

func TestRewritePath(t *testing.T) {
	rewriter := mustRewriter(t, "Order", "")

	assert.Equal(t, "OrderController.php", rewriter.RewritePath("ExampleController.php"))
	assert.Equal(t, "helpers.php", rewriter.RewritePath("helpers.php"))
}
