package notify

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"gigglesgo/utils"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type Handler struct {
	Queue *Queue
	Hub   *Hub
	Log   *logrus.Logger
}

func NewHandler(q *Queue, h *Hub, log *logrus.Logger) *Handler {
	return &Handler{Queue: q, Hub: h, Log: log}
}

// GetBanners returns the currently visible banners, oldest first.
func (h *Handler) GetBanners(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Queue.Visible())
}

// DismissBanner closes a banner; closing an already-removed banner is a no-op
// and still answers 200.
func (h *Handler) DismissBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Queue.Dismiss(ps.ByName("bannerid"))
	utils.SendResponse(w, http.StatusOK, nil, "Banner dismissed", nil)
}

// Stream upgrades to a websocket and pushes banner events as they happen.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.WithError(err).Warn("banner stream upgrade failed")
		return
	}

	client := &Client{Conn: conn, Send: make(chan []byte, 64)}
	h.Hub.Register(client)

	// writer pump
	go func() {
		for data := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				break
			}
		}
		conn.Close()
	}()

	// reader pump: clients never send banner data, but reading is how we
	// notice the connection going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.Hub.Unregister(client)
				return
			}
		}
	}()
}
