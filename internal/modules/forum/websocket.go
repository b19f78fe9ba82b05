package forum

import (
	"log"
	"net/http"

	"garagehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Live upgrades GET /forum/threads/:id/live to a websocket and streams every
// post created in the thread until the client disconnects.
func (h *Handler) Live(c *gin.Context) {
	threadID, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := h.svc.GetThread(c.Request.Context(), threadID); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Thread not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get thread")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed thread_id=%d error=%q", threadID, err.Error())
		return
	}

	h.hub.Subscribe(threadID, conn)
	defer h.hub.Unsubscribe(threadID, conn)

	// Drain control frames; exit when the peer goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
