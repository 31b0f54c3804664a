package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_UpWhenStoreReachable(t *testing.T) {
	rr := do(t, NewRouter(newFakeStore()), "GET", "/health", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "UP", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestHealth_DownWhenStorePingFails(t *testing.T) {
	fs := newFakeStore()
	fs.err = errors.New("connection refused")
	rr := do(t, NewRouter(fs), "GET", "/health", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "DOWN", resp["status"])
	assert.Equal(t, "connection refused", resp["error"])
}
