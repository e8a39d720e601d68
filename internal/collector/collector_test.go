package collector

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]model.Framework{
		{
			Area: model.AreaNISTAIRMF,
			Name: "NIST AI RMF",
			Sections: []model.Section{
				{
					Name: "Govern",
					Questions: []model.Question{
						{Prompt: "Roles defined."},
						{Prompt: "Policies approved."},
					},
				},
			},
		},
		{
			Area: model.AreaGRC,
			Name: "GRC Tools and Practices",
			Sections: []model.Section{
				{
					Name: "Risk Register",
					Questions: []model.Question{
						{Prompt: "Register maintained."},
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return cat
}

func TestRecordAndSnapshot(t *testing.T) {
	col := New(testCatalog(t))

	require.NoError(t, col.Record("nist-ai-rmf-govern-0", 3, false))
	assert.Equal(t, 1, col.Len())

	snap := col.Snapshot()
	assert.Equal(t, model.AnswerValue{Value: 3}, snap["nist-ai-rmf-govern-0"])
}

func TestRecordOverwrites(t *testing.T) {
	col := New(testCatalog(t))

	require.NoError(t, col.Record("nist-ai-rmf-govern-0", 1, false))
	require.NoError(t, col.Record("nist-ai-rmf-govern-0", 4, false))

	assert.Equal(t, 1, col.Len())
	assert.Equal(t, 4, col.Snapshot()["nist-ai-rmf-govern-0"].Value)
}

func TestRecordUnknownQuestion(t *testing.T) {
	col := New(testCatalog(t))

	err := col.Record("no-such-question", 2, false)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
	assert.Equal(t, 0, col.Len())
}

func TestRecordOutOfRange(t *testing.T) {
	col := New(testCatalog(t))

	err := col.Record("nist-ai-rmf-govern-0", 5, false)
	assert.ErrorIs(t, err, ErrOutOfRange)

	err = col.Record("nist-ai-rmf-govern-0", -1, false)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Rejected values leave no trace.
	assert.Equal(t, 0, col.Len())
}

func TestRecordNotApplicable(t *testing.T) {
	col := New(testCatalog(t))

	// NA answers skip range validation and count toward completeness.
	require.NoError(t, col.Record("grc-tools-and-practices-risk-register-0", 0, true))
	assert.True(t, col.IsComplete(model.AreaGRC))
	assert.True(t, col.Snapshot()["grc-tools-and-practices-risk-register-0"].NotApplicable)
}

func TestIsComplete(t *testing.T) {
	col := New(testCatalog(t))

	assert.False(t, col.IsComplete(model.AreaNISTAIRMF))

	require.NoError(t, col.Record("nist-ai-rmf-govern-0", 2, false))
	assert.False(t, col.IsComplete(model.AreaNISTAIRMF))

	require.NoError(t, col.Record("nist-ai-rmf-govern-1", 3, false))
	assert.True(t, col.IsComplete(model.AreaNISTAIRMF))

	assert.False(t, col.IsComplete(model.AreaGRC))
}

func TestSnapshotIsIsolated(t *testing.T) {
	col := New(testCatalog(t))
	require.NoError(t, col.Record("nist-ai-rmf-govern-0", 1, false))

	snap := col.Snapshot()
	require.NoError(t, col.Record("nist-ai-rmf-govern-0", 4, false))

	assert.Equal(t, 1, snap["nist-ai-rmf-govern-0"].Value)
	assert.Equal(t, 4, col.Snapshot()["nist-ai-rmf-govern-0"].Value)
}

func TestConcurrentRecord(t *testing.T) {
	col := New(testCatalog(t))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			if err := col.Record("nist-ai-rmf-govern-0", v%5, false); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			col.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, col.Len())
}
