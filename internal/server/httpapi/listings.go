package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rangoamigo/rangoamigo/internal/server/services"
)

type createListingRequest struct {
	NomeLocal       string   `json:"nome_local"`
	Itens           string   `json:"itens"`
	HorarioRetirada string   `json:"horario_retirada"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Cep             *string  `json:"cep"`
	Rua             *string  `json:"rua"`
	Numero          *string  `json:"numero"`
	Bairro          *string  `json:"bairro"`
	Cidade          *string  `json:"cidade"`
}

func (s *Server) listActive(w http.ResponseWriter, r *http.Request) {
	items, err := s.listings.ListActive(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) listMine(w http.ResponseWriter, r *http.Request) {
	account := accountFromContext(r.Context())
	items, err := s.listings.ListMine(r.Context(), account.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) createListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Erro: "JSON inválido"})
		return
	}

	account := accountFromContext(r.Context())
	listing, err := s.listings.Create(r.Context(), account, services.CreateListingInput{
		NomeLocal:       req.NomeLocal,
		Itens:           req.Itens,
		HorarioRetirada: req.HorarioRetirada,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Cep:             req.Cep,
		Rua:             req.Rua,
		Numero:          req.Numero,
		Bairro:          req.Bairro,
		Cidade:          req.Cidade,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	listingsCreated.Inc()
	s.logger.Info(r.Context(), "listing created", "id", listing.ID, "owner", account.ID)
	s.writeJSON(w, http.StatusCreated, listing)
}

func (s *Server) archiveListing(w http.ResponseWriter, r *http.Request) {
	id, ok := s.listingID(w, r)
	if !ok {
		return
	}
	account := accountFromContext(r.Context())
	if err := s.listings.Archive(r.Context(), account.ID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Mensagem: "doação arquivada com sucesso"})
}

func (s *Server) restoreListing(w http.ResponseWriter, r *http.Request) {
	id, ok := s.listingID(w, r)
	if !ok {
		return
	}
	account := accountFromContext(r.Context())
	if err := s.listings.Restore(r.Context(), account.ID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Mensagem: "doação restaurada com sucesso"})
}

func (s *Server) deleteListing(w http.ResponseWriter, r *http.Request) {
	id, ok := s.listingID(w, r)
	if !ok {
		return
	}
	account := accountFromContext(r.Context())
	if err := s.listings.Delete(r.Context(), account.ID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Mensagem: "doação excluída permanentemente"})
}

// listingID parses the {id} route variable. The route pattern already
// restricts it to digits, so a parse failure only happens on overflow.
func (s *Server) listingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Erro: "id inválido"})
		return 0, false
	}
	return id, true
}
