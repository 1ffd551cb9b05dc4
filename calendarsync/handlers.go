package calendarsync

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/catalog"
	"gigglesgo/notify"
	"gigglesgo/utils"
)

type Handler struct {
	History *History
	Banners *notify.Queue
}

func NewHandler(history *History, banners *notify.Queue) *Handler {
	return &Handler{History: history, Banners: banners}
}

// GetLink returns the provider deep link and records the sync. The apple
// provider has no deep link and points the client at the ICS download.
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	ev, ok := catalog.EventByID(id)
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	provider := Provider(ps.ByName("provider"))
	if provider == Apple {
		h.History.Record(ev.ID, Apple)
		h.Banners.Push(notify.BannerGeneral, "Calendar", "Event added to calendar!")
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"download": "/api/calendar/event/" + ps.ByName("eventid") + "/ics",
			"filename": ICSFilename(ev),
		})
		return
	}

	link, err := LinkFor(provider, ev)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.History.Record(ev.ID, provider)
	h.Banners.Push(notify.BannerGeneral, "Calendar", "Event added to calendar!")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"url": link})
}

// DownloadICS streams the single-event calendar document.
func (h *Handler) DownloadICS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	ev, ok := catalog.EventByID(id)
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	doc, err := ToICS(ev)
	if err != nil {
		http.Error(w, "Failed to build calendar file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ICSFilename(ev)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	records := h.History.Records()
	if records == nil {
		records = []SyncRecord{}
	}
	utils.RespondWithJSON(w, http.StatusOK, records)
}
