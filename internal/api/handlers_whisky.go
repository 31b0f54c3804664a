package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/whiskyhouse/whisky-service/internal/api/reqbody"
	"github.com/whiskyhouse/whisky-service/internal/api/respond"
	"github.com/whiskyhouse/whisky-service/internal/model"
	"github.com/whiskyhouse/whisky-service/internal/store"
)

// Exact response bodies. Clients parse these strings, so the create variant
// has no trailing period while the update variant does.
const (
	malformedCreateBody = "Malformed Whisky object"
	malformedUpdateBody = "Malformed Whisky object."
	deletedBody         = "Deleted."
)

// WhiskyHandler translates HTTP requests into store operations. It holds no
// state beyond the injected store.
type WhiskyHandler struct {
	store store.Store
}

// NewWhiskyHandler creates the handler set for the whisky CRUD routes.
func NewWhiskyHandler(s store.Store) *WhiskyHandler { return &WhiskyHandler{store: s} }

// AddOne handles POST /rest/whiskys.
func (h *WhiskyHandler) AddOne(w http.ResponseWriter, r *http.Request) {
	whisky, ok := decodeWhisky(reqbody.FromContext(r.Context()))
	if !ok {
		respond.WriteString(w, http.StatusBadRequest, respond.JSONContentType, malformedCreateBody)
		return
	}

	// The store assigns identity; a client-supplied id is ignored.
	whisky.ID = nil
	created, err := h.store.Save(r.Context(), whisky)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, created)
}

// GetOne handles GET /rest/whiskys/{id}.
func (h *WhiskyHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	id, ok := whiskyID(w, r)
	if !ok {
		return
	}
	whisky, err := h.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteString(w, http.StatusNotFound, "", fmt.Sprintf("Whisky not found for id=%d", id))
	case err != nil:
		respond.WriteInternalError(w, err.Error())
	default:
		respond.WriteJSON(w, http.StatusOK, whisky)
	}
}

// GetAll handles GET /rest/whiskys. Order and size are the store's contract.
func (h *WhiskyHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	whiskys, err := h.store.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, whiskys)
}

// whiskyPatch is the lenient update payload. Unknown keys are tolerated;
// absent or null fields preserve the stored value.
type whiskyPatch struct {
	Name   *string `json:"name"`
	Origin *string `json:"origin"`
}

// UpdateOne handles PUT /rest/whiskys/{id}.
func (h *WhiskyHandler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	id, ok := whiskyID(w, r)
	if !ok {
		return
	}

	var patch *whiskyPatch
	if err := json.Unmarshal(reqbody.FromContext(r.Context()), &patch); err != nil || patch == nil {
		respond.WriteString(w, http.StatusBadRequest, "", malformedUpdateBody)
		return
	}

	current, err := h.store.Get(r.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		respond.WriteString(w, http.StatusNotFound, "", "")
		return
	}
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}

	// Build the merged value instead of mutating the fetched one. The path
	// id always wins over anything in the body.
	merged := model.Whisky{ID: &id, Name: current.Name, Origin: current.Origin}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Origin != nil {
		merged.Origin = *patch.Origin
	}

	updated, err := h.store.Save(r.Context(), &merged)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, updated)
}

// DeleteOne handles DELETE /rest/whiskys/{id}. The 204 deliberately carries
// the body "Deleted."; net/http elides it on the wire but recorders see it,
// and existing clients depend on the status.
func (h *WhiskyHandler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id, ok := whiskyID(w, r)
	if !ok {
		return
	}
	err := h.store.Delete(r.Context(), id)
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteString(w, http.StatusNotFound, "", fmt.Sprintf("Can not delete Whisky because it does not exist. ID=%d", id))
	case err != nil:
		respond.WriteInternalError(w, err.Error())
	default:
		respond.WriteString(w, http.StatusNoContent, "", deletedBody)
	}
}

// decodeWhisky decodes a create payload strictly: unknown keys, trailing
// data and a JSON null body are all malformed.
func decodeWhisky(body []byte) (*model.Whisky, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	var whisky *model.Whisky
	if err := dec.Decode(&whisky); err != nil {
		log.Error().Err(err).Msg("failed to decode whisky payload")
		return nil, false
	}
	if whisky == nil || dec.More() {
		return nil, false
	}
	return whisky, true
}

// whiskyID parses the {id} path variable. On failure it writes the 400
// response itself; the caller must return without touching the store.
func whiskyID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Error().Err(err).Str("id", raw).Msg("invalid whisky id")
		respond.WriteString(w, http.StatusBadRequest, "text/html", fmt.Sprintf("Bad ID. ID=\"%s\"", raw))
		return 0, false
	}
	return id, true
}
