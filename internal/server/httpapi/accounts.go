package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rangoamigo/rangoamigo/internal/common"
)

type registerRequest struct {
	Email           string `json:"email"`
	DisplayName     string `json:"display_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Erro: "JSON inválido"})
		return
	}

	account, err := s.accounts.Register(r.Context(), req.Email, req.DisplayName, req.Password, req.ConfirmPassword)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "account registered", "id", account.ID)
	s.writeJSON(w, http.StatusCreated, account)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Erro: "JSON inválido"})
		return
	}

	token, account, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			authFailures.Inc()
		}
		s.writeError(w, r, err)
		return
	}

	session, _ := s.store.Get(r, s.cookieName)
	session.Values["token"] = token
	if err := session.Save(r, w); err != nil {
		s.writeError(w, r, common.ErrorInternal)
		return
	}

	authSuccesses.Inc()
	s.logger.Info(r.Context(), "login", "account_id", account.ID)
	s.writeJSON(w, http.StatusOK, account)
}

// logout invalidates the server-side session and clears the cookie. It
// never fails: logging out twice, or without a session, is a no-op.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if token := s.tokenFromRequest(r); token != "" {
		if err := s.accounts.Logout(r.Context(), token); err != nil {
			s.logger.Warn(r.Context(), "logout", "error", err.Error())
		}
	}

	session, _ := s.store.Get(r, s.cookieName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		s.logger.Warn(r.Context(), "clearing session cookie", "error", err.Error())
	}

	w.WriteHeader(http.StatusNoContent)
}
