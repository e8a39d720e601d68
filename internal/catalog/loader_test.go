package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanindra-max/FrameworkLens/internal/model"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathUsesBuiltin(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 35, cat.Len())
}

func TestLoadFromFile(t *testing.T) {
	path := writeCatalogFile(t, `
frameworks:
  - area: NIST_AI_RMF
    name: NIST AI RMF
    description: Trimmed pilot questionnaire
    sections:
      - name: Govern
        questions:
          - prompt: Defined AI risk governance roles.
            weight: 2
          - prompt: Documented risk appetite.
      - name: Measure
        questions:
          - prompt: Implemented bias evaluation.
            scaleMin: 1
            scaleMax: 5
`)

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []model.FrameworkArea{model.AreaNISTAIRMF}, cat.AllAreas())

	q, ok := cat.Lookup("nist-ai-rmf-govern-0")
	require.True(t, ok)
	assert.Equal(t, 2.0, q.Weight)
	assert.Equal(t, 4, q.ScaleMax)

	q, ok = cat.Lookup("nist-ai-rmf-measure-0")
	require.True(t, ok)
	assert.Equal(t, 1, q.ScaleMin)
	assert.Equal(t, 5, q.ScaleMax)
	assert.Equal(t, 1.0, q.Weight)
}

func TestLoadRejectsUnknownArea(t *testing.T) {
	path := writeCatalogFile(t, `
frameworks:
  - area: ISO_42001
    name: ISO 42001
    sections:
      - name: Context
        questions:
          - prompt: Scoped the AI management system.
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeCatalogFile(t, "frameworks: [unclosed")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadRejectsEmptyDefinition(t *testing.T) {
	path := writeCatalogFile(t, "frameworks: []")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
