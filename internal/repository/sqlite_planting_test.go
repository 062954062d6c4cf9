package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/orgplant/internal/testutil"
)

func TestPlantingRepo_CreateAndListRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlantingRepo(db)
	ctx := context.Background()

	due := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	p := testutil.NewTestPlanting("Quarterly report",
		testutil.WithDueDate(due),
		testutil.WithFile("/home/amr/org/work.org"),
		testutil.WithSubtaskCount(6),
	)
	require.NoError(t, repo.Create(ctx, p))

	listed, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Quarterly report", got.Name)
	assert.Equal(t, "Quarterly report", got.Category)
	assert.Equal(t, "/home/amr/org/work.org", got.File)
	assert.Equal(t, due, got.DueDate)
	assert.Equal(t, 6, got.SubtaskCount)
	assert.Equal(t, p.CreatedAt, got.CreatedAt.UTC())
}

func TestPlantingRepo_ListRecent_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlantingRepo(db)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		p := testutil.NewTestPlanting(name, testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Create(ctx, p))
	}

	listed, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "third", listed[0].Name)
	assert.Equal(t, "second", listed[1].Name)
	assert.Equal(t, "first", listed[2].Name)
}

func TestPlantingRepo_ListRecent_Limit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlantingRepo(db)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		p := testutil.NewTestPlanting("project", testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, p))
	}

	listed, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestPlantingRepo_ListRecent_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlantingRepo(db)

	listed, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
