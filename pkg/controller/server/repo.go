package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repotrack/pkg/domain/interfaces"
	"github.com/secmon-lab/repotrack/pkg/domain/model"
	"github.com/secmon-lab/repotrack/pkg/domain/types"
	"github.com/secmon-lab/repotrack/pkg/repository"
	"github.com/secmon-lab/repotrack/pkg/utils/errutil"
	"github.com/secmon-lab/repotrack/pkg/utils/logging"
)

type repoHandler struct {
	uc          interfaces.UseCase
	maxBodySize int64
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to encode response", goerr.Wrap(err, "failed to marshal response"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

// writeError maps domain errors to HTTP status codes. Upstream failures carry
// a fixed message so that GitHub's response is not exposed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case errors.Is(err, types.ErrValidationFailed):
		logger.Info("invalid request", slog.Any("error", err))
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})

	case errors.Is(err, repository.ErrNotFound):
		logger.Info("repository not found", slog.Any("error", err))
		writeJSON(w, r, http.StatusNotFound, errorResponse{Detail: "Repository not found"})

	case errors.Is(err, types.ErrUpstreamFailure):
		logger.Warn("upstream failure", slog.Any("error", err))
		writeJSON(w, r, http.StatusBadGateway, errorResponse{Detail: "GitHub API failed"})

	default:
		errutil.HandleError(r.Context(), "fail to handle request", err)
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}

func (x *repoHandler) create(w http.ResponseWriter, r *http.Request) {
	var input model.CreateRepoInput
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, x.maxBodySize))
	if err := decoder.Decode(&input); err != nil {
		writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("error", err.Error())))
		return
	}

	repo, err := x.uc.CreateRepo(r.Context(), &input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, repo)
}

func (x *repoHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseRepoID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	repo, err := x.uc.GetRepo(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, repo)
}

func (x *repoHandler) updateStars(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseRepoID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	if !query.Has("stars") {
		writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "stars is required"))
		return
	}
	stars, err := strconv.ParseInt(query.Get("stars"), 10, 64)
	if err != nil {
		writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "stars must be an integer", goerr.V("stars", query.Get("stars"))))
		return
	}

	if err := x.uc.UpdateRepoStars(r.Context(), id, stars); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, messageResponse{Message: "Stars updated"})
}

func (x *repoHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseRepoID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := x.uc.DeleteRepo(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
