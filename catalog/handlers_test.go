package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigglesgo/structs"
)

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	s, _ := newTestStore(t)
	h := NewHandler(s)

	router := httprouter.New()
	router.GET("/api/events", h.GetEvents)
	router.GET("/api/events/:eventid", h.GetEvent)
	router.GET("/api/saved", h.GetSavedEvents)
	router.POST("/api/events/:eventid/save", h.ToggleSave)
	router.POST("/api/events/:eventid/register", h.Register)
	router.POST("/api/events/:eventid/question", h.SubmitQuestion)
	return router
}

func TestGetEventsHandler(t *testing.T) {
	router := newTestRouter(t)

	t.Run("search query narrows results", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events?q=library", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var events []structs.Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
		require.Len(t, events, 1)
		assert.Equal(t, 3, events[0].ID)
	})

	t.Run("chip filter applies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events?chip=free", nil))

		var events []structs.Event
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
		assert.Len(t, events, 3)
	})
}

func TestGetEventHandler(t *testing.T) {
	router := newTestRouter(t)

	t.Run("known event carries its session state", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Event      structs.Event `json:"event"`
			Saved      bool          `json:"saved"`
			Registered bool          `json:"registered"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Georgetown Children's Festival", body.Event.Title)
		assert.True(t, body.Saved)
		assert.False(t, body.Registered)
	})

	t.Run("unknown event is a 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/events/999", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSaveAndQuestionHandlers(t *testing.T) {
	router := newTestRouter(t)

	t.Run("toggle save reports the new state", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/events/2/save", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Saved bool `json:"saved"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Saved)
	})

	t.Run("blank question is a 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events/1/question", strings.NewReader(`{"question":"  "}`))
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("question on a missing event is a 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/events/999/question", strings.NewReader(`{"question":"hi"}`))
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
