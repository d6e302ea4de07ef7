package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/atahmasb/trivia-api/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleQuestionFeed godoc
// @Summary      WebSocket feed of question changes
// @Description  Receive question_created and question_deleted events for a category (0 or omitted: all)
// @Tags         websocket
// @Param        category query int false "Category ID"
// @Router       /ws/questions [get]
func (h *WSHandler) HandleQuestionFeed(c *gin.Context) {
	categoryID := ws.AllCategories
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			abortWithStatus(c, http.StatusBadRequest)
			return
		}
		categoryID = uint(id)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(categoryID, conn)
	defer h.hub.RemoveConnection(categoryID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
