package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryIcon(t *testing.T) {
	assert.Equal(t, "🚀", CategoryIcon("Production"))
	assert.Equal(t, "🚀", CategoryIcon("production"))
	assert.Equal(t, FallbackIcon, CategoryIcon("Underwater Basket Weaving"))
}

func TestCategoryNaming(t *testing.T) {
	assert.Equal(t, "devtools", CategoryID("DevTools"))
	assert.Equal(t, "Production", CategoryName("production"))
}

func TestNormalizeDeploy(t *testing.T) {
	assert.Equal(t, "AWS Lambda", NormalizeDeploy("lambda"))
	assert.Equal(t, "Local", NormalizeDeploy("Local"))
	assert.Equal(t, "GitHub Actions", NormalizeDeploy("gh-actions"))
	assert.Equal(t, "my-basement-server", NormalizeDeploy("my-basement-server"),
		"unrecognized raw values pass through unchanged")
}
