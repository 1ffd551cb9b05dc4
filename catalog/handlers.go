package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/structs"
	"gigglesgo/utils"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// GetEvents lists events. ?chip= applies a category chip, ?q= a free-text
// search; the two are the home screen and the events screen respectively.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if q := r.URL.Query().Get("q"); q != "" {
		utils.RespondWithJSON(w, http.StatusOK, Search(q))
		return
	}
	chip := r.URL.Query().Get("chip")
	utils.RespondWithJSON(w, http.StatusOK, FilteredByChip(chip))
}

func (h *Handler) GetChips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"chips":  Chips,
		"active": h.Store.ActiveChip(),
	})
}

func (h *Handler) ToggleChip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	active := h.Store.ToggleChip(ps.ByName("chipid"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"active": active})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	ev, ok := EventByID(id)
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	question, _ := h.Store.Question(id)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"event":      ev,
		"saved":      h.Store.Saved(id),
		"registered": h.Store.Registered(id),
		"question":   question,
	})
}

func (h *Handler) GetSavedEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	events := h.Store.SavedEvents()
	if events == nil {
		events = []structs.Event{}
	}
	utils.RespondWithJSON(w, http.StatusOK, events)
}

func (h *Handler) ToggleSave(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	saved, err := h.Store.ToggleSave(id)
	if errors.Is(err, structs.ErrNotFound) {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"saved": saved})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	if err := h.Store.Register(id); err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	utils.SendResponse(w, http.StatusOK, utils.M{"registered": true}, "Registration successful", nil)
}

func (h *Handler) SubmitQuestion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))

	var body struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	err := h.Store.SubmitQuestion(id, body.Question)
	switch {
	case errors.Is(err, structs.ErrNotFound):
		http.Error(w, "Event not found", http.StatusNotFound)
	case err != nil:
		http.Error(w, "Question text is required", http.StatusBadRequest)
	default:
		utils.SendResponse(w, http.StatusOK, nil, "Question sent to organizer", nil)
	}
}
