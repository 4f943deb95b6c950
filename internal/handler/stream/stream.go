// Package stream serves live collection snapshots over Server-Sent
// Events. Each event body is the full current result set for the topic,
// so a client replaces its state rather than applying diffs.
package stream

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gother/internal/model/auth"
	"gother/internal/pkg/access"
	"gother/internal/pkg/ctxutil"
	"gother/internal/watch"
)

// topicPermissions maps staff-only topics to the admin feature that
// unlocks them. Topics absent from the map are public.
var topicPermissions = map[string]auth.Permission{
	watch.TopicOrders: auth.PermOrders,
	watch.TopicUsers:  auth.PermUsers,
}

// Handler serves the SSE endpoints
type Handler struct {
	hub      *watch.Hub
	queriers map[string]watch.Querier
	resolver *access.Resolver
}

// NewHandler creates the stream handler
func NewHandler(hub *watch.Hub, queriers map[string]watch.Querier, resolver *access.Resolver) *Handler {
	return &Handler{
		hub:      hub,
		queriers: queriers,
		resolver: resolver,
	}
}

// Stream subscribes the client to one topic
// @Summary      Live snapshots
// @Description  Streams full collection snapshots over SSE
// @Tags         stream
// @Produce      text/event-stream
// @Param        topic  path  string  true  "products, categories, banners, settings, orders or users"
// @Success      200
// @Failure      403  {object}  map[string]interface{}
// @Router       /api/v1/stream/{topic} [get]
func (h *Handler) Stream(c *gin.Context) {
	topic := c.Param("topic")
	querier, ok := h.queriers[topic]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    40405,
			"message": "unknown topic",
		})
		return
	}

	if perm, gated := topicPermissions[topic]; gated {
		session, ok := ctxutil.GetSession(c.Request.Context())
		if !ok || !h.resolver.HasAccess(session.Profile, perm) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    40302,
				"message": "permission denied",
			})
			return
		}
	}

	events, cancel := h.hub.Subscribe(topic)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	// initial snapshot so the client has state before the first change
	if data, err := querier(c.Request.Context()); err == nil {
		writeEvent(c.Writer, topic, data)
		c.Writer.Flush()
	} else {
		log.Warn().Err(err).Str("topic", topic).Msg("initial snapshot failed")
	}

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			writeEvent(w, event.Topic, event.Data)
			return true
		}
	})
}

func writeEvent(w io.Writer, topic string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Str("topic", topic).Msg("failed to encode snapshot")
		return
	}
	io.WriteString(w, "event: "+topic+"\ndata: ")
	w.Write(payload)
	io.WriteString(w, "\n\n")
}
