package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"plantmaint/middleware"
	"plantmaint/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeList(w http.ResponseWriter, total int64, p models.ListParams, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": total,
		"page":  p.Page,
		"limit": p.Limit,
		"data":  data,
	})
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

// listParamsChecked parses list params and rejects include_deleted for
// non-admins so soft-deleted rows never leak to regular users.
func listParamsChecked(w http.ResponseWriter, r *http.Request, filterable ...string) (models.ListParams, bool) {
	params := models.ParseListParams(r, filterable...)
	if params.IncludeDeleted && middleware.GetRole(r) != models.RoleAdmin {
		http.Error(w, "include_deleted requires admin role", http.StatusForbidden)
		return params, false
	}
	return params, true
}
