package feedback

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

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	entry, err := h.Store.Submit(body.Text)
	if err != nil {
		http.Error(w, "Feedback text is required", http.StatusBadRequest)
		return
	}
	utils.SendResponse(w, http.StatusCreated, entry, "Feedback received", nil)
}
