package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"k8s.io/utils/ptr"

	"github.com/mealtrack/food-api/pkg/food"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func newFood(name string) *food.Food {
	return &food.Food{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Meal:      "Dinner",
		Timestamp: food.NormalizeTime(time.Date(2025, 3, 14, 12, 30, 45, 123456789, time.UTC)),
		Salads:    []food.Salad{},
	}
}

func TestStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	f := newFood("Pizza")
	require.NoError(t, s.Insert(ctx, f))

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f, got)
	assert.NotNil(t, got.Salads)

	assert.Error(t, s.Insert(ctx, f), "duplicate id")
}

func TestStore_InsertWithSalads(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	f := newFood("Pizza")
	f.Salads = []food.Salad{
		{ID: primitive.NewObjectID(), Name: "Caesar", Dressing: "Ranch", Timestamp: f.Timestamp},
		{ID: primitive.NewObjectID(), Name: "Greek", Timestamp: f.Timestamp},
	}
	require.NoError(t, s.Insert(ctx, f))

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Salads, got.Salads)
}

func TestStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, food.ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	f := newFood("Pizza")
	require.NoError(t, s.Insert(ctx, f))

	got, err := s.Update(ctx, f.ID, food.FoodPatch{Name: ptr.To("new name"), Meal: ptr.To("lunch")})
	require.NoError(t, err)
	assert.Equal(t, "new name", got.Name)
	assert.Equal(t, "lunch", got.Meal)
	assert.Equal(t, f.Timestamp, got.Timestamp)

	got, err = s.Update(ctx, f.ID, food.FoodPatch{Meal: ptr.To("brunch")})
	require.NoError(t, err)
	assert.Equal(t, "new name", got.Name, "nil fields are left as is")
	assert.Equal(t, "brunch", got.Meal)

	_, err = s.Update(ctx, primitive.NewObjectID(), food.FoodPatch{Name: ptr.To("x")})
	assert.ErrorIs(t, err, food.ErrNotFound)
}

func TestStore_AppendSalad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	f := newFood("Pizza")
	require.NoError(t, s.Insert(ctx, f))

	names := []string{"Caesar", "Greek", "Cobb"}
	for _, name := range names {
		require.NoError(t, s.AppendSalad(ctx, f.ID, food.Salad{
			ID:        primitive.NewObjectID(),
			Name:      name,
			Timestamp: f.Timestamp,
		}))
	}

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, got.Salads, len(names))
	for i, name := range names {
		assert.Equal(t, name, got.Salads[i].Name, "salads keep insertion order")
	}

	err = s.AppendSalad(ctx, primitive.NewObjectID(), food.Salad{ID: primitive.NewObjectID(), Name: "orphan"})
	assert.ErrorIs(t, err, food.ErrNotFound)
}

func TestStore_DeleteAll(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, name := range []string{"a", "b", "c"} {
		f := newFood(name)
		require.NoError(t, s.Insert(ctx, f))
		require.NoError(t, s.AppendSalad(ctx, f.ID, food.Salad{ID: primitive.NewObjectID(), Name: "side"}))
	}

	n, err := s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	var salads int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM salads`).Scan(&salads))
	assert.Zero(t, salads)
}

func TestOpen_FileDatabasePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "food.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)

	f := newFood("Soup")
	require.NoError(t, s.Insert(ctx, f))
	require.NoError(t, s.Close(ctx))

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close(ctx)

	got, err := s.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Name)
	assert.NoError(t, s.Ping(ctx))
}
