package share

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/catalog"
	"gigglesgo/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) ShareEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	ev, ok := catalog.EventByID(id)
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	if err := h.Service.Share(ev); err != nil {
		http.Error(w, "Sharing failed", http.StatusBadGateway)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, PayloadFor(ev))
}

// GetQR serves the share QR as a PNG.
func (h *Handler) GetQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	ev, ok := catalog.EventByID(id)
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	png, err := QRCode(ev)
	if err != nil {
		http.Error(w, "Failed to render QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
