package pipeline

import (
	"testing"
	"time"

	"bidboard/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func boardFixture() []entities.Estimate {
	return []entities.Estimate{
		{ID: "e1", Name: "Medical Office", CustomerID: "c1", Status: entities.EstimateStatusWon, Total: 100, UpdatedAt: t0},
		{ID: "e2", Name: "Warehouse", CustomerID: "c2", Status: entities.EstimateStatusSubmitted, Total: 200, UpdatedAt: t0.Add(time.Hour)},
		{ID: "e3", Name: "Retail Shell", CustomerID: "c3", Status: entities.EstimateStatusDraft, Total: 50, UpdatedAt: t0},
		{ID: "e4", Name: "Parking Deck", CustomerID: "c1", Status: entities.EstimateStatusLost, Total: 400, UpdatedAt: t0},
		{ID: "e5", Name: "Clinic", CustomerID: "c2", Status: entities.EstimateStatusSubmitted, Total: 10, UpdatedAt: t0.Add(2 * time.Hour)},
	}
}

func TestBoard(t *testing.T) {
	cols := Board(boardFixture())

	require.Len(t, cols, 4)
	for i, st := range entities.PipelineStatuses {
		require.Equal(t, st, cols[i].Status)
	}
	require.Len(t, cols[0].Estimates, 1)
	require.Len(t, cols[1].Estimates, 2)
	require.Equal(t, "e5", cols[1].Estimates[0].ID, "most recently updated first")
	require.Equal(t, 210.0, cols[1].Total)
	require.Equal(t, 400.0, cols[3].Total)

	t.Run("empty board keeps every column", func(t *testing.T) {
		cols := Board(nil)
		require.Len(t, cols, 4)
		for _, c := range cols {
			require.NotNil(t, c.Estimates)
			require.Empty(t, c.Estimates)
		}
	})
}

func TestFilter(t *testing.T) {
	customers := map[string]entities.Customer{
		"c1": {ID: "c1", Name: "Acme Builders"},
		"c2": {ID: "c2", Name: "Summit Development"},
	}

	got := Filter(boardFixture(), customers, "  ACME ")
	require.Len(t, got, 2)
	require.Equal(t, "e1", got[0].ID)
	require.Equal(t, "e4", got[1].ID)

	got = Filter(boardFixture(), customers, "shell")
	require.Len(t, got, 1)
	require.Equal(t, "e3", got[0].ID)

	require.Len(t, Filter(boardFixture(), customers, ""), 5)
	require.Empty(t, Filter(boardFixture(), customers, "nothing-matches"))
}

func TestSummarize(t *testing.T) {
	s := Summarize(boardFixture())

	require.Equal(t, 5, s.EstimateCount)
	require.Equal(t, 360.0, s.PipelineValue)
	require.Equal(t, 100.0, s.WonValue)
	require.Equal(t, 3, s.PendingCount)
	require.Equal(t, 20, s.WinRate)

	require.Equal(t, Stats{}, Summarize(nil))
}
