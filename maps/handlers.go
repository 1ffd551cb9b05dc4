package maps

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"gigglesgo/utils"
)

type Handler struct {
	Locator Locator
}

func NewHandler(loc Locator) *Handler {
	return &Handler{Locator: loc}
}

// GetMap returns the centered, filtered marker set. Filters compose:
// ?q= free text, ?ageMin=&ageMax= age overlap, ?radius= distance in km.
func (h *Handler) GetMap(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	center := Center(h.Locator)
	events := SearchMap(r.URL.Query().Get("q"))

	if minS, maxS := r.URL.Query().Get("ageMin"), r.URL.Query().Get("ageMax"); minS != "" || maxS != "" {
		min, max := 0, 18
		if v, err := strconv.Atoi(minS); err == nil {
			min = v
		}
		if v, err := strconv.Atoi(maxS); err == nil {
			max = v
		}
		events = FilterByAge(events, min, max)
	}
	if radiusS := r.URL.Query().Get("radius"); radiusS != "" {
		if radius, err := strconv.ParseFloat(radiusS, 64); err == nil {
			events = FilterByDistance(events, center, radius)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"center":  center,
		"markers": Markers(events, center),
	})
}

func (h *Handler) GetPresets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"age":      AgePresets,
		"distance": DistancePresets,
	})
}
