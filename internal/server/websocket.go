package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Wasserpuncher/loglens/internal/aggregator"
	"github.com/Wasserpuncher/loglens/internal/output"
	"github.com/Wasserpuncher/loglens/internal/reader"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWebSocket upgrades to WebSocket and runs a streaming analysis
// session. Each client text message is a chunk of newline-delimited log
// lines; after folding a chunk into the session accumulator the server
// pushes the running JSON report. Session state is discarded on
// disconnect.
func (s *Server) handleWebSocket(c *gin.Context) {
	topN, ok := topParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "top must be a positive integer"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	agg := aggregator.New()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("websocket read failed: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		// reader.Lines cannot fail on an in-memory chunk.
		_ = reader.Lines(strings.NewReader(string(data)), agg.Add)

		if err := conn.WriteJSON(output.NewReport(agg.Stats(), topN)); err != nil {
			log.Printf("websocket write failed: %v", err)
			return
		}
	}
}
