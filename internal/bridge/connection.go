package bridge

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/cuoral/internal/launcher"
	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/navigation"
)

// connection is one renderer and the overlay it drives
type connection struct {
	conn    *websocket.Conn
	remote  string
	overlay *launcher.Overlay
	metrics *Metrics

	// Replies queued while handling the current message
	outbox []any
	done   chan struct{}
}

func newConnection(conn *websocket.Conn, remote string, cfg Config, metrics *Metrics) *connection {
	c := &connection{
		conn:    conn,
		remote:  remote,
		metrics: metrics,
		done:    make(chan struct{}),
	}

	c.overlay = launcher.NewOverlay(cfg.Options, launcher.OpenerFunc(c.openExternal))
	if cfg.Gate != nil {
		c.overlay.SetGate(cfg.Gate)
	}
	return c
}

// openExternal is the overlay's external opener: the renderer does the
// actual opening, so the request is queued as a message.
func (c *connection) openExternal(url string) error {
	c.outbox = append(c.outbox, OpenExternalMessage{Type: TypeOpenExternal, URL: url})
	return nil
}

func (c *connection) run() {
	defer func() {
		close(c.done)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.keepalive()

	if err := c.write(snapshot(c.overlay)); err != nil {
		return
	}

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Bridge connection closed unexpectedly",
					zap.String("remote_addr", c.remote),
					zap.Error(err),
				)
			}
			return
		}

		logging.LogBridgeMessage(c.remote, "received", data)

		c.handle(data)
		if err := c.flush(); err != nil {
			return
		}
	}
}

// handle applies one client message to the overlay and queues the replies
func (c *connection) handle(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.metrics.Messages.WithLabelValues("invalid").Inc()
		c.outbox = append(c.outbox, ErrorMessage{Type: TypeError, Message: fmt.Sprintf("invalid message: %v", err)})
		return
	}

	switch msg.Type {
	case TypeTapLauncher:
		wasOpen := c.overlay.Session() != nil
		if s := c.overlay.TapLauncher(); s != nil && !wasOpen {
			c.metrics.SessionsOpened.Inc()
		}

	case TypeTapBackground:
		c.overlay.TapBackground()

	case TypeTapContent:
		c.overlay.TapContent()

	case TypeClose:
		c.overlay.Close()

	case TypeLoadStarted, TypeLoadFinished, TypeLoadFailed, TypeHTTPError:
		ev, ok := msg.event()
		if !ok {
			c.metrics.Messages.WithLabelValues("invalid").Inc()
			c.outbox = append(c.outbox, ErrorMessage{Type: TypeError, Message: "not a surface event: " + msg.Type})
			return
		}
		if !c.overlay.Deliver(msg.SessionID, ev) {
			c.metrics.StaleEvents.Inc()
		}

	case TypeNavigate:
		c.navigate(msg)

	case TypeIdentify:
		if msg.Identity == nil {
			c.outbox = append(c.outbox, ErrorMessage{Type: TypeError, Message: "identify requires an identity"})
			break
		}
		c.overlay.SetIdentity(*msg.Identity)

	default:
		c.metrics.Messages.WithLabelValues("unknown").Inc()
		c.outbox = append(c.outbox, ErrorMessage{Type: TypeError, Message: "unknown message type: " + msg.Type})
		return
	}

	c.metrics.Messages.WithLabelValues(msg.Type).Inc()
	c.outbox = append(c.outbox, snapshot(c.overlay))
}

func (c *connection) navigate(msg ClientMessage) {
	reply := NavigationMessage{
		Type:      TypeNavigation,
		SessionID: msg.SessionID,
		URL:       msg.URL,
		Decision:  DecisionIgnored,
	}

	if c.overlay.IsLive(msg.SessionID) {
		// The opener may queue open_external; the reply goes first
		pending := c.outbox
		c.outbox = nil
		reply.Allow = c.overlay.RequestNavigation(msg.SessionID, msg.URL)
		if reply.Allow {
			reply.Decision = navigation.StayInside.String()
		} else {
			reply.Decision = navigation.DelegateExternally.String()
		}
		c.outbox = append(append(pending, reply), c.outbox...)
	} else {
		c.outbox = append(c.outbox, reply)
	}

	c.metrics.Navigations.WithLabelValues(reply.Decision).Inc()
}

func (c *connection) flush() error {
	queued := c.outbox
	c.outbox = nil
	for _, msg := range queued {
		if err := c.write(msg); err != nil {
			return err
		}
	}
	return nil
}

func (c *connection) write(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal %T: %w", msg, err)
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logging.Debug("Bridge write failed",
			zap.String("remote_addr", c.remote),
			zap.Error(err),
		)
		return err
	}

	logging.LogBridgeMessage(c.remote, "sent", data)
	return nil
}

// keepalive pings the peer until the connection ends. WriteControl may
// run concurrently with the read loop's writes.
func (c *connection) keepalive() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
