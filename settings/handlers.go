package settings

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/utils"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Snapshot())
}

// UpdateSetting flips one leaf of the settings tree. Unknown (group, key)
// pairs come back as 400 with no state change.
func (h *Handler) UpdateSetting(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Group string `json:"group"`
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Store.Update(body.Group, body.Key, body.Value); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Snapshot())
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"theme":           h.Store.Theme(r.Context()),
		"culturalVariant": h.Store.CulturalVariant(r.Context()),
	})
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Theme           string `json:"theme"`
		CulturalVariant string `json:"culturalVariant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if body.Theme != "" {
		if err := h.Store.SetTheme(r.Context(), body.Theme); err != nil {
			http.Error(w, "Failed to persist theme", http.StatusInternalServerError)
			return
		}
	}
	if body.CulturalVariant != "" {
		if err := h.Store.SetCulturalVariant(r.Context(), body.CulturalVariant); err != nil {
			http.Error(w, "Failed to persist cultural variant", http.StatusInternalServerError)
			return
		}
	}
	utils.SendResponse(w, http.StatusOK, nil, "Preferences saved", nil)
}
