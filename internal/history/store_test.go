package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zimjobs/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMarkSeen(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 8, 20, 8, 0, 0, 0, time.UTC)

	job := models.Listing{ID: "VM_001_001_20250820", Title: "Senior Accountant", Company: "ABC Bank", SourceSite: "vacancymail"}

	isNew, err := s.MarkSeen(ctx, job, now)
	require.NoError(t, err)
	assert.True(t, isNew)

	// same posting on a later run, new run ID
	repeat := job
	repeat.ID = "VM_002_007_20250821"
	isNew, err = s.MarkSeen(ctx, repeat, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, isNew)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFilterNew(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	first := []models.Listing{
		{Title: "Senior Accountant", Company: "ABC Bank", SourceSite: "vacancymail"},
		{Title: "Registered General Nurse", Company: "Avenues Clinic", SourceSite: "jobszimbabwe"},
	}
	fresh, err := s.FilterNew(ctx, first, now)
	require.NoError(t, err)
	assert.Len(t, fresh, 2)

	second := append(first, models.Listing{Title: "Truck Driver", Company: "Haulage Logistics", SourceSite: "zimbojobs"})
	fresh, err = s.FilterNew(ctx, second, now)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Truck Driver", fresh[0].Title)
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.MarkSeen(ctx, models.Listing{Title: "Boilermaker", Company: "Engineering Works", SourceSite: "myjobszim"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	isNew, err := reopened.MarkSeen(ctx, models.Listing{Title: "Boilermaker", Company: "Engineering Works", SourceSite: "myjobszim"}, time.Now())
	require.NoError(t, err)
	assert.False(t, isNew)
}
