package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinboard/api"
	"pinboard/api/apitest"
	"pinboard/api/v1/user"
	v1 "pinboard/types/v1"
)

func TestSecret(t *testing.T) {
	client := apitest.NewClient(t, apitest.Expected{
		Path: "v1/user/secret",
		Body: []byte(`{"result":"6493a84f72d86e7de130"}`),
	})
	got, err := api.Query[v1.UserSecret](context.Background(), client, user.NewSecret())
	require.NoError(t, err)
	assert.Equal(t, "6493a84f72d86e7de130", got.Secret)
}

func TestAPIToken(t *testing.T) {
	client := apitest.NewClient(t, apitest.Expected{
		Path: "v1/user/api_token",
		Body: []byte(`{"result":"XOG86E7JIYMI"}`),
	})
	got, err := api.Query[v1.UserAPIToken](context.Background(), client, user.NewAPIToken())
	require.NoError(t, err)
	assert.Equal(t, "XOG86E7JIYMI", got.Token)
}

func TestAPITokenEmptyResult(t *testing.T) {
	client := apitest.NewClient(t, apitest.Expected{
		Path: "v1/user/api_token",
		Body: []byte(`{}`),
	})
	_, err := api.Query[v1.UserAPIToken](context.Background(), client, user.NewAPIToken())
	var dte *api.DataTypeError
	assert.ErrorAs(t, err, &dte)
}
