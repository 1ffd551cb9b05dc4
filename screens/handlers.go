package screens

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/notify"
	"gigglesgo/utils"
)

// signOutDelay is how long the sign-out banner stays before the app jumps
// back to home.
const signOutDelay = 2 * time.Second

type Handler struct {
	Router  *Router
	Banners *notify.Queue
}

func NewHandler(r *Router, banners *notify.Queue) *Handler {
	return &Handler{Router: r, Banners: banners}
}

func (h *Handler) GetScreen(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp := utils.M{"screen": h.Router.Current()}
	if ev, ok := h.Router.Selected(); ok {
		resp["selectedEvent"] = ev
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Screen  Screen `json:"screen"`
		EventID int    `json:"eventId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var err error
	if body.Screen == EventDetails {
		err = h.Router.OpenEvent(body.EventID)
	} else {
		err = h.Router.Navigate(body.Screen)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"screen": h.Router.Current()})
}

func (h *Handler) GoBack(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Router.GoBack()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"screen": h.Router.Current()})
}

// SignOut emits the farewell banner and schedules the return to home.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Banners.Push(notify.BannerGeneral, "Signed out", "Logged out successfully!")
	h.Router.ScheduleHome(signOutDelay)
	utils.SendResponse(w, http.StatusOK, nil, "Signed out", nil)
}
