package gamejolt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataStoreScopes(t *testing.T) {
	ctx := context.Background()

	t.Run("global", func(t *testing.T) {
		client, ft := newTestClient(t, success(`"data":"hello"`))

		item, err := client.DataStore.Fetch(ctx, nil, "greeting")
		require.NoError(t, err)
		assert.Equal(t, "hello", item.Data)
		assert.Equal(t, ScopeGlobal, item.Scope)

		path, q := ft.lastRequest(t)
		assert.Equal(t, "/api/game/v1_2/data-store", path)
		assert.Equal(t, "greeting", q.Get("key"))
		assert.False(t, q.Has("username"))
		assert.False(t, q.Has("user_token"))
	})

	t.Run("user", func(t *testing.T) {
		client, ft := newTestClient(t, success(`"data":"17"`))

		item, err := client.DataStore.Fetch(ctx, testUser(), "level")
		require.NoError(t, err)
		assert.Equal(t, ScopeUser, item.Scope)
		n, err := item.Int()
		require.NoError(t, err)
		assert.Equal(t, int64(17), n)

		_, q := ft.lastRequest(t)
		assert.Equal(t, "cros", q.Get("username"))
		assert.Equal(t, "tok", q.Get("user_token"))
	})

	t.Run("user without token", func(t *testing.T) {
		client, ft := newTestClient(t, success(`"data":"x"`))

		_, err := client.DataStore.Fetch(ctx, &User{Username: "cros"}, "level")
		assert.ErrorIs(t, err, ErrTokenRequired)
		assert.Empty(t, ft.urls)
	})
}

func TestDataStoreFetchNumericData(t *testing.T) {
	client, _ := newTestClient(t, success(`"data":42`))

	item, err := client.DataStore.Fetch(context.Background(), nil, "count")
	require.NoError(t, err)
	assert.Equal(t, "42", item.Data)
}

func TestDataStoreEmptyKey(t *testing.T) {
	ctx := context.Background()
	client, ft := newTestClient(t, success(""))

	_, err := client.DataStore.Fetch(ctx, nil, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, client.DataStore.Set(ctx, nil, "", "x"), ErrInvalidArgument)
	assert.ErrorIs(t, client.DataStore.Remove(ctx, nil, ""), ErrInvalidArgument)
	_, err = client.DataStore.Update(ctx, nil, "", OpAdd, "1")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, ft.urls)
}

func TestDataStoreSetAndRemove(t *testing.T) {
	ctx := context.Background()
	client, ft := newTestClient(t, success(""))

	require.NoError(t, client.DataStore.Set(ctx, testUser(), "save", "slot=1"))
	path, q := ft.lastRequest(t)
	assert.Equal(t, "/api/game/v1_2/data-store/set", path)
	assert.Equal(t, "save", q.Get("key"))
	assert.Equal(t, "slot=1", q.Get("data"))
	requireSigned(t, ft.urls[0])

	require.NoError(t, client.DataStore.Remove(ctx, nil, "save"))
	path, q = ft.lastRequest(t)
	assert.Equal(t, "/api/game/v1_2/data-store/remove", path)
	assert.Equal(t, "save", q.Get("key"))
}

func TestDataStoreRemoveMissingKey(t *testing.T) {
	client, _ := newTestClient(t, failure("There is no item with the key passed in."))

	err := client.DataStore.Remove(context.Background(), nil, "ghost")
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestDataStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("numeric", func(t *testing.T) {
		client, ft := newTestClient(t, success(`"data":"15"`))

		item, err := client.DataStore.Update(ctx, nil, "coins", OpAdd, "5")
		require.NoError(t, err)
		assert.Equal(t, "15", item.Data)

		path, q := ft.lastRequest(t)
		assert.Equal(t, "/api/game/v1_2/data-store/update", path)
		assert.Equal(t, "add", q.Get("operation"))
		assert.Equal(t, "5", q.Get("value"))
	})

	t.Run("unknown operation", func(t *testing.T) {
		client, ft := newTestClient(t, success(""))

		_, err := client.DataStore.Update(ctx, nil, "coins", Operation("modulo"), "5")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Empty(t, ft.urls)
	})
}

func TestOperation(t *testing.T) {
	for _, op := range []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide} {
		assert.True(t, op.IsNumeric(), op)
		assert.True(t, op.Valid(), op)
	}
	for _, op := range []Operation{OpAppend, OpPrepend} {
		assert.False(t, op.IsNumeric(), op)
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, Operation("").Valid())
}

func TestDataStoreGetKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("keys with pattern", func(t *testing.T) {
		client, ft := newTestClient(t, success(`"keys":[{"key":"save_1"},{"key":"save_2"}]`))

		keys, err := client.DataStore.GetKeys(ctx, testUser(), "save_*")
		require.NoError(t, err)
		assert.Equal(t, []string{"save_1", "save_2"}, keys)

		path, q := ft.lastRequest(t)
		assert.Equal(t, "/api/game/v1_2/data-store/get-keys", path)
		assert.Equal(t, "save_*", q.Get("pattern"))
		assert.Equal(t, "cros", q.Get("username"))
	})

	t.Run("empty store", func(t *testing.T) {
		client, ft := newTestClient(t, success(""))

		keys, err := client.DataStore.GetKeys(ctx, nil, "")
		require.NoError(t, err)
		assert.Empty(t, keys)
		assert.NotNil(t, keys)

		_, q := ft.lastRequest(t)
		assert.False(t, q.Has("pattern"))
	})

	t.Run("no pattern on older versions", func(t *testing.T) {
		client, ft := newTestClient(t, success(`"keys":[{"key":"a"}]`), WithVersion("v1_1"))

		keys, err := client.DataStore.GetKeys(ctx, nil, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, keys)
		assert.Len(t, ft.urls, 1)
	})
}
