package profile

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

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"profile": h.Store.Profile(),
		"editing": h.Store.Editing(),
	})
}

func (h *Handler) BeginEdit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Store.BeginEdit()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"editing": true})
}

func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	h.Store.UpdateDraft(p)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"editing": h.Store.Editing()})
}

func (h *Handler) Commit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !h.Store.Commit() {
		http.Error(w, "No edit in progress", http.StatusConflict)
		return
	}
	utils.SendResponse(w, http.StatusOK, h.Store.Profile(), "Profile updated", nil)
}

func (h *Handler) Discard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Store.Discard()
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Profile())
}

func (h *Handler) AddChild(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	child := h.Store.AddChild()
	utils.RespondWithJSON(w, http.StatusCreated, child)
}

func (h *Handler) UpdateChild(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("childid"))

	var body struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateChild(id, body.Name, body.Age); err != nil {
		http.Error(w, "Child not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Profile())
}

func (h *Handler) RemoveChild(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("childid"))
	if err := h.Store.RemoveChild(id); errors.Is(err, structs.ErrNotFound) {
		http.Error(w, "Child not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Profile())
}
