package booking

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "bookings.json")
	store := NewFileStore(path)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, store.Append(ctx, newTestBooking("booking-1", "center-1", "service-1-1")))
	require.NoError(t, store.Append(ctx, newTestBooking("booking-2", "center-2", "service-2-1")))

	// новый экземпляр читает то же содержимое
	reopened := NewFileStore(path)
	list, err = reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, *newTestBooking("booking-1", "center-1", "service-1-1"), *list[0])

	byCenter, err := reopened.ListByCenter(ctx, "center-2")
	require.NoError(t, err)
	require.Len(t, byCenter, 1)
	assert.Equal(t, "booking-2", byCenter[0].ID)

	require.NoError(t, reopened.Clear(ctx))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// повторная очистка без файла не ошибка
	require.NoError(t, reopened.Clear(ctx))
}

func TestFileStore_CorruptedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	store := NewFileStore(path)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, store.Append(ctx, newTestBooking("booking-1", "center-1", "service-1-1")))
	list, err = store.ListByService(ctx, "service-1-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFileStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// родительский путь - обычный файл, поэтому каталог создать нельзя
	store := NewFileStore(filepath.Join(blocker, "bookings.json"))

	err := store.Append(context.Background(), newTestBooking("booking-1", "center-1", "service-1-1"))
	assert.ErrorIs(t, err, ErrSave)
}
