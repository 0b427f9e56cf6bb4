package handler

import (
	"net/http"
	"strconv"

	"github.com/mcoot/cricle/internal/api/response"
	"github.com/mcoot/cricle/internal/services/dataset"
)

// maxNamesLimit caps the limit query parameter
const maxNamesLimit = 100

// NamesHandler serves the cricketer name list
type NamesHandler struct {
	dataset *dataset.Dataset
}

// NewNamesHandler creates a new names handler
func NewNamesHandler(d *dataset.Dataset) *NamesHandler {
	return &NamesHandler{dataset: d}
}

// List handles GET /api/v1/names?q=&limit=
// Without q every name is returned in sorted order.
func (h *NamesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = min(n, maxNamesLimit)
	}

	var names []string
	if q == "" {
		names = h.dataset.AllNamesSorted()
		if limit > 0 && len(names) > limit {
			names = names[:limit]
		}
	} else {
		names = h.dataset.Suggest(q, limit)
	}

	if names == nil {
		names = []string{}
	}
	response.JSON(w, http.StatusOK, response.Names{Names: names})
}
