package notes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/api"
	"pinboard/api/apitest"
	"pinboard/api/v1/notes"
	v1 "pinboard/types/v1"
)

func TestList(t *testing.T) {
	client := apitest.NewClient(t, apitest.Expected{
		Path: "v1/notes/list",
		Body: []byte(`{"count":1,"notes":[{"id":"8e5d6964bb810e0050b0","hash":"0c9c30f60cadabd31415","title":"Groceries","length":"24","created_at":"2024-10-27 17:38:11","updated_at":"2024-10-27 17:38:11"}]}`),
	})
	got, err := api.Query[v1.NoteList](context.Background(), client, notes.NewList())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Count)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "Groceries", got.Notes[0].Title)
	assert.Equal(t, v1.Count(24), got.Notes[0].Length)
}

func TestNote(t *testing.T) {
	ep, err := notes.NewNote("8e5d6964bb810e0050b0")
	require.NoError(t, err)
	assert.Equal(t, "v1/notes/8e5d6964bb810e0050b0/", ep.Path())

	client := apitest.NewClient(t, apitest.Expected{
		Path: "v1/notes/8e5d6964bb810e0050b0/",
		Body: []byte(`{"id":"8e5d6964bb810e0050b0","title":"Groceries","text":"milk","length":4}`),
	})
	got, err := api.Query[v1.Note](context.Background(), client, ep)
	require.NoError(t, err)
	assert.Equal(t, "milk", got.Text)
}

func TestNoteMissingID(t *testing.T) {
	_, err := notes.NewNote("")
	var missing *api.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "id", missing.Field)
}
