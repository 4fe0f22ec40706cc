package ws

import (
	"net/http"

	"github.com/coder/websocket"
)

// AcceptHandler upgrades HTTP requests into hub sessions. The client
// identifies itself with a userId query parameter; connections without one
// are refused before the upgrade.
type AcceptHandler struct {
	Hub *Hub
}

func (h AcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.Hub.Logger.Error("websocket accept failed", "err", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "session ended")

	session := newSession(h.Hub, conn, userID)
	session.logger.Debug("session accepted")
	session.Run(ctx)

	conn.Close(websocket.StatusNormalClosure, "")
}
