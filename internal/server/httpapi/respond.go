package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rangoamigo/rangoamigo/internal/common"
)

type errorResponse struct {
	Erro string `json:"erro"`
}

type messageResponse struct {
	Mensagem string `json:"mensagem"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(context.Background(), "encoding response", "error", err.Error())
	}
}

// writeError maps service errors to status codes and the {"erro": ...}
// envelope. Anything unrecognized is a store/infrastructure failure and
// surfaces as a generic 500, with the detail kept in the server log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Erro: err.Error()})
	case errors.Is(err, common.ErrorNotArchived):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Erro: err.Error()})
	case errors.Is(err, common.ErrorDuplicateEmail):
		s.writeJSON(w, http.StatusConflict, errorResponse{Erro: err.Error()})
	case errors.Is(err, common.ErrorInvalidCredentials):
		s.writeJSON(w, http.StatusUnauthorized, errorResponse{Erro: err.Error()})
	case errors.Is(err, common.ErrorUnauthenticated):
		s.writeJSON(w, http.StatusUnauthorized, errorResponse{Erro: err.Error()})
	case errors.Is(err, common.ErrorForbidden):
		s.writeJSON(w, http.StatusForbidden, errorResponse{Erro: err.Error()})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Erro: err.Error()})
	default:
		s.logger.Error(r.Context(), "internal error", "error", err.Error())
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Erro: "erro interno do servidor"})
	}
}
