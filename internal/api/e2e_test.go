package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiskyhouse/whisky-service/internal/model"
	"github.com/whiskyhouse/whisky-service/internal/store/sqlite"
)

// newSQLiteRouter builds the full stack over a real SQLite database in a
// temp directory.
func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "whiskys.db"))
	require.NoError(t, err)
	require.NoError(t, sqlite.EnsureSchema(db))
	t.Cleanup(func() { _ = db.Close() })
	return NewRouter(sqlite.New(db))
}

func TestWhiskyLifecycle_EndToEnd(t *testing.T) {
	router := newSQLiteRouter(t)

	// Create.
	rr := do(t, router, "POST", "/rest/whiskys", `{"name":"Talisker","origin":"Scotland"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created model.Whisky
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotNil(t, created.ID)
	id := *created.ID

	// Read one.
	rr = do(t, router, "GET", fmt.Sprintf("/rest/whiskys/%d", id), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got model.Whisky
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Talisker", got.Name)
	assert.Equal(t, "Scotland", got.Origin)

	// Read all.
	rr = do(t, router, "GET", "/rest/whiskys", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []model.Whisky
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	require.Len(t, all, 1)

	// Update, partial: origin preserved.
	rr = do(t, router, "PUT", fmt.Sprintf("/rest/whiskys/%d", id), `{"name":"Talisker Storm"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated model.Whisky
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.NotNil(t, updated.ID)
	assert.Equal(t, id, *updated.ID)
	assert.Equal(t, "Talisker Storm", updated.Name)
	assert.Equal(t, "Scotland", updated.Origin)

	// Delete, then delete again.
	rr = do(t, router, "DELETE", fmt.Sprintf("/rest/whiskys/%d", id), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "Deleted.", rr.Body.String())

	rr = do(t, router, "DELETE", fmt.Sprintf("/rest/whiskys/%d", id), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// And reads agree it is gone.
	rr = do(t, router, "GET", fmt.Sprintf("/rest/whiskys/%d", id), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, fmt.Sprintf("Whisky not found for id=%d", id), rr.Body.String())

	rr = do(t, router, "GET", "/rest/whiskys", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
