package wizard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/structs"
	"gigglesgo/utils"
)

type Handler struct {
	Wizard *Wizard
}

func NewHandler(wz *Wizard) *Handler {
	return &Handler{Wizard: wz}
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"step":   h.Wizard.Step(),
		"data":   h.Wizard.Data(),
		"errors": h.Wizard.Errors(),
		"done":   h.Wizard.Done(),
	})
}

func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"categories":   Categories,
		"priceOptions": PriceOptions,
	})
}

// SetField accepts one field update per call; errors surface later through
// GetState once the debounce window passes.
func (h *Handler) SetField(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	h.Wizard.SetField(body.Field, body.Value)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetDetails(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		AgeRange     *[2]int `json:"ageRange"`
		MaxAttendees *int    `json:"maxAttendees"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if body.AgeRange != nil {
		h.Wizard.SetAgeRange(body.AgeRange[0], body.AgeRange[1])
	}
	if body.MaxAttendees != nil {
		h.Wizard.SetMaxAttendees(*body.MaxAttendees)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddTag(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	h.Wizard.AddTag(body.Tag)
	utils.RespondWithJSON(w, http.StatusOK, h.Wizard.Data().Tags)
}

func (h *Handler) RemoveTag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Wizard.RemoveTag(ps.ByName("tag"))
	utils.RespondWithJSON(w, http.StatusOK, h.Wizard.Data().Tags)
}

// UploadImages takes multipart attachments under the "images" key. Files that
// are not images or would push the count past five are skipped silently.
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart payload", http.StatusBadRequest)
		return
	}

	var refs []structs.ImageRef
	for _, file := range r.MultipartForm.File["images"] {
		ref, err := processImageUpload(file)
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	utils.RespondWithJSON(w, http.StatusOK, h.Wizard.AddImages(refs))
}

func (h *Handler) RemoveImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Wizard.RemoveImage(ps.ByName("name"))
	utils.RespondWithJSON(w, http.StatusOK, h.Wizard.Data().Images)
}

func (h *Handler) NextStep(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if errs := h.Wizard.NextStep(); errs != nil {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": errs})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": h.Wizard.Step()})
}

func (h *Handler) PrevStep(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Wizard.PrevStep()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": h.Wizard.Step()})
}

func (h *Handler) GoToStep(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	target := utils.ParseInt(ps.ByName("step"))
	if errs := h.Wizard.GoToStep(target); errs != nil {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{
			"step":   h.Wizard.Step(),
			"errors": errs,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": h.Wizard.Step()})
}

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Wizard.SaveDraft()
	utils.SendResponse(w, http.StatusOK, nil, "Draft saved", nil)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	err := h.Wizard.Submit(r.Context())
	var verrs structs.ValidationErrors
	switch {
	case errors.Is(err, structs.ErrSubmitInFlight):
		http.Error(w, "Submission already in progress", http.StatusConflict)
	case errors.As(err, &verrs):
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, utils.M{"errors": verrs})
	case err != nil:
		http.Error(w, "Submission failed, please retry", http.StatusBadGateway)
	default:
		utils.SendResponse(w, http.StatusOK, nil, "Event submitted", nil)
	}
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Wizard.Reset()
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"step": h.Wizard.Step()})
}
