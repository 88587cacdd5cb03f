package server

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
)

// keepAlivePeriod keeps intermediaries from timing out an idle SSE stream.
const keepAlivePeriod = 15 * time.Second

// -----------------------------------------------------------------------------
// Server-Sent Events
// -----------------------------------------------------------------------------

// streamImportStatus pushes the import status to the client as SSE events.
// The current snapshot goes out immediately, then one event per change.
func (s *WebServer) streamImportStatus(c *gin.Context) {
	statusCh := s.Tracker.Subscribe()
	defer s.Tracker.Unsubscribe(statusCh)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	keepAlive := time.NewTicker(keepAlivePeriod)
	defer keepAlive.Stop()

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case status, ok := <-statusCh:
			if !ok {
				return false
			}
			c.SSEvent("status", status)
			return true

		case <-keepAlive.C:
			c.SSEvent("ping", "keep-alive")
			return true

		case <-clientGone:
			return false
		}
	})

	s.Logger.Debug("SSE client disconnected")
}
