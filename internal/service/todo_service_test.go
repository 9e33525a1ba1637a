package service

import (
	"context"
	"testing"

	"github.com/Varun5711/todolist/internal/apperror"
	"github.com/Varun5711/todolist/internal/models"
	"github.com/Varun5711/todolist/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoService_CreateAndGet(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStorage())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "Buy milk", "2 litres")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "Buy milk", created.Title)

	got, err := svc.Get(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "2 litres", got.Content)
}

func TestTodoService_CreateWithoutOwner(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStorage())

	_, err := svc.Create(context.Background(), 0, "title", "content")
	assert.True(t, apperror.Is(err, apperror.BadRequest))
	assert.Equal(t, []string{MsgUserNotFound}, apperror.From(err).PublicMessages())
}

func TestTodoService_ForeignTodoLooksMissing(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStorage())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "private", "c")
	require.NoError(t, err)

	_, errForeign := svc.Get(ctx, created.ID, 2)
	_, errMissing := svc.Get(ctx, 999, 2)

	require.Error(t, errForeign)
	require.Error(t, errMissing)
	assert.True(t, apperror.Is(errForeign, apperror.NotFound))
	assert.Equal(t, apperror.From(errMissing).PublicMessages(), apperror.From(errForeign).PublicMessages())

	_, err = svc.Update(ctx, created.ID, 2, "hijack", "c")
	assert.True(t, apperror.Is(err, apperror.NotFound))

	err = svc.Delete(ctx, created.ID, 2)
	assert.True(t, apperror.Is(err, apperror.NotFound))

	still, err := svc.Get(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "private", still.Title)
}

func TestTodoService_List(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStorage())
	ctx := context.Background()

	for _, todo := range []models.Todo{
		{UserID: 1, Title: "Buy milk"},
		{UserID: 1, Title: "buy eggs"},
		{UserID: 2, Title: "Buy bread"},
	} {
		_, err := svc.Create(ctx, todo.UserID, todo.Title, "c")
		require.NoError(t, err)
	}

	mine, err := svc.List(ctx, 1, "")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	filtered, err := svc.List(ctx, 1, "Buy")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Buy milk", filtered[0].Title)

	unscoped, err := svc.List(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, unscoped, 3)

	none, err := svc.List(ctx, 3, "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTodoService_UpdateAndDelete(t *testing.T) {
	svc := NewTodoService(storage.NewMemoryTodoStorage())
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "old", "old")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, 1, "new", "new content")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "new content", updated.Content)

	require.NoError(t, svc.Delete(ctx, created.ID, 1))

	_, err = svc.Get(ctx, created.ID, 1)
	assert.True(t, apperror.Is(err, apperror.NotFound))

	err = svc.Delete(ctx, created.ID, 1)
	assert.True(t, apperror.Is(err, apperror.NotFound))
}
