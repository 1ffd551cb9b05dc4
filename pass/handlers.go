package pass

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/catalog"
	"gigglesgo/profile"
	"gigglesgo/utils"
)

type Handler struct {
	Catalog *catalog.Store
	Profile *profile.Store
	Signer  *Signer
}

func NewHandler(cat *catalog.Store, prof *profile.Store, signer *Signer) *Handler {
	return &Handler{Catalog: cat, Profile: prof, Signer: signer}
}

// PrintPass serves the confirmation PDF. Only registered events have a pass.
func (h *Handler) PrintPass(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := utils.ParseInt(ps.ByName("eventid"))
	ev, ok := catalog.EventByID(id)
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	if !h.Catalog.Registered(id) {
		http.Error(w, "Not registered for this event", http.StatusForbidden)
		return
	}

	attendee := h.Profile.Profile().Name
	doc, err := RenderPDF(ev, attendee, h.Signer)
	if err != nil {
		http.Error(w, "Failed to generate pass", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+utils.SlugFilename(ev.Title)+`-pass.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// VerifyPass checks a scanned QR payload.
func (h *Handler) VerifyPass(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload := r.URL.Query().Get("payload")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"valid": h.Signer.Verify(payload)})
}
