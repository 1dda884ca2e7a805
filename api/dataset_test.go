package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/PedroMissola/analisador-relatorios/store/sqlite"
	"github.com/PedroMissola/analisador-relatorios/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegenerateDataset_WithSynthesizer(t *testing.T) {
	// GIVEN: A real synthesizer over an in-memory SQLite store
	// WHEN: The admin endpoint is called twice
	// THEN: Each call replaces the dataset and the summary matches storage

	store, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	gen := synth.New(store, synth.Config{
		Seed: 11,
		Now:  func() time.Time { return time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC) },
	})
	h := NewHandler(nil, gen, nil)

	for _, employees := range []int{40, 15} {
		rec := do(t, h, http.MethodPost, "/api/admin/dataset", `{"employees":`+strconv.Itoa(employees)+`}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp RegenerateDatasetResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		counts, err := store.Counts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, employees, counts.Employees)
		assert.Equal(t, resp.Summary.Payments, counts.Payments)
		assert.Equal(t, resp.Summary.Expenses, counts.Expenses)
	}
}
