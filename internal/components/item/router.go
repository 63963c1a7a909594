package item

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"andrasnagy-data/taskboard/internal/shared/middleware"
	"andrasnagy-data/taskboard/internal/shared/respond"
)

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer) *Router {
	return &Router{service: service}
}

// Routes returns the item CRUD subrouter. The auth gate is applied by the
// server where this is mounted.
func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.ListItems)
	router.Post("/", r.CreateItem)
	router.Put("/{id}", r.UpdateItem)
	router.Delete("/{id}", r.DeleteItem)

	return router
}

func (r *Router) ListItems(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	items, err := r.service.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list items")
		respond.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, items)
}

// HandleData returns the item list together with the acting username.
func (r *Router) HandleData(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	user := middleware.GetUser(ctx)
	if user == nil {
		respond.Detail(w, http.StatusUnauthorized, "No se pudo validar el token")
		return
	}

	items, err := r.service.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list items")
		respond.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, DataResponse{Items: items, UserActive: user.Username})
}

func (r *Router) CreateItem(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body CreateItemIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respond.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := r.service.Create(ctx, body)
	if err != nil {
		if writeValidationError(w, err) {
			return
		}
		logger.Error().Err(err).Msg("Failed to create item")
		respond.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Int64("item_id", item.ID).Msg("Item created")
	respond.JSON(w, http.StatusCreated, item)
}

func (r *Router) UpdateItem(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, "id: must be an integer")
		return
	}

	var body UpdateItemIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respond.Detail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := r.service.Update(ctx, id, body)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Detail(w, http.StatusNotFound, "Item not found")
			return
		}
		if writeValidationError(w, err) {
			return
		}
		logger.Error().Err(err).Int64("item_id", id).Msg("Failed to update item")
		respond.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, item)
}

func (r *Router) DeleteItem(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		respond.Detail(w, http.StatusBadRequest, "id: must be an integer")
		return
	}

	if err := r.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Detail(w, http.StatusNotFound, "Item not found")
			return
		}
		logger.Error().Err(err).Int64("item_id", id).Msg("Failed to delete item")
		respond.Detail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Debug().Int64("item_id", id).Msg("Item deleted")
	w.WriteHeader(http.StatusNoContent)
}

// writeValidationError maps input validation failures to a 400 with field
// detail, reporting whether it handled the error.
func writeValidationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrEmptyName):
		respond.Detail(w, http.StatusBadRequest, "name: must not be empty")
		return true
	case errors.Is(err, ErrInvalidStatus):
		respond.Detail(w, http.StatusBadRequest, "status: must be one of Pendiente, En progreso, Completado")
		return true
	}
	return false
}
