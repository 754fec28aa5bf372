package api

import (
	"net/http"

	"github.com/centralbjl/directory/pkg/repository"
)

// LookupHandler serves the static filter vocabularies used by registration
// forms and search filters.
type LookupHandler struct {
	repo repository.LookupRepo
}

func NewLookupHandler(repo repository.LookupRepo) *LookupHandler {
	return &LookupHandler{repo: repo}
}

func (h *LookupHandler) Categories(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}

func (h *LookupHandler) Neighborhoods(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListNeighborhoods(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out, http.StatusOK)
}
