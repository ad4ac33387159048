package live

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/domain/wheel"
	"nuzlocke-tracker/internal/handler/httperr"
	"nuzlocke-tracker/internal/handler/middleware"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 54 * time.Second
	maxFrameSize = 4096

	// EventChatSend is the one frame type clients may send.
	EventChatSend = "chat_send"
)

var errUnauthenticated = errs.New("user not authenticated")

// Reconciler keeps a user's living box consistent while they are connected.
type Reconciler interface {
	Subscribe(owner uuid.UUID) (func(), error)
}

type CooldownTick struct {
	Remaining        string `json:"remaining"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

type connected struct {
	SessionID string `json:"session_id"`
	GroupID   string `json:"group_id"`
}

type ChatSend struct {
	Body string `json:"body"`
}

type ErrorNotice struct {
	Message string `json:"message"`
}

type Handler struct {
	hub      *Hub
	wheel    commands.WheelCommands
	chatCmds commands.ChatCommands
	reactor  Reconciler
	tick     time.Duration
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, wheelCmds commands.WheelCommands, chatCmds commands.ChatCommands, reactor Reconciler, cfg config.Config) *Handler {
	allowed := make(map[string]struct{}, len(cfg.CORS.AllowOrigins))
	for _, o := range cfg.CORS.AllowOrigins {
		allowed[o] = struct{}{}
	}

	return &Handler{
		hub:      hub,
		wheel:    wheelCmds,
		chatCmds: chatCmds,
		reactor:  reactor,
		tick:     cfg.Wheel.TickInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// @Summary Live session
// @Description Websocket pushing cooldown ticks, spin outcomes, living box removals and group chat.
// @Description Clients post chat lines with {"type":"chat_send","data":{"body":"..."}}.
// @Tags live
// @Security BearerAuth
// @Param groupId path string true "Group ID"
// @Param access_token query string false "Token, for clients that cannot set headers"
// @Success 101 "Switching Protocols"
// @Failure 403 {object} map[string]string
// @Router /groups/{groupId}/live [get]
func (h *Handler) Serve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid group id", nil)
		return
	}

	// membership is checked before the upgrade so refusals are plain HTTP errors
	if _, err = h.wheel.Status(c.Request.Context(), groupID, userID); err != nil {
		status, msg := http.StatusInternalServerError, "Internal server error"
		if errs.Is(err, errs.ErrNotGroupMember) {
			status, msg = http.StatusForbidden, "You are not a member of this group"
		}
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	release, err := h.reactor.Subscribe(userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Live updates unavailable", nil)
		return
	}
	defer release()

	sessionID, err := gonanoid.New()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already answered the client
		h.hub.logger.Warn("websocket upgrade failed", "user_id", userID, "error", err.Error())
		return
	}

	cl := &client{
		id:          sessionID,
		userID:      userID,
		groupID:     groupID,
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
		connectedAt: time.Now(),
	}
	// no writer runs yet, so the greeting can go out directly
	if hello, err := encode(EventConnected, connected{SessionID: sessionID, GroupID: groupID.String()}); err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteMessage(websocket.TextMessage, hello)
	}
	h.hub.register(cl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writePump(ctx, cl)
	}()

	h.readPump(cl)

	cancel()
	h.hub.unregister(cl)
	<-done
	_ = conn.Close()
}

// readPump handles client frames until the connection drops.
func (h *Handler) readPump(cl *client) {
	cl.conn.SetReadLimit(maxFrameSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.hub.logger.Debug("live session read error", "session_id", cl.id, "error", err.Error())
			}
			return
		}
		h.handleFrame(cl, data)
	}
}

// handleFrame stores chat lines; the hub echoes them to the whole group,
// sender included. Other frame types are ignored.
func (h *Handler) handleFrame(cl *client, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type != EventChatSend {
		return
	}

	var in ChatSend
	if err := json.Unmarshal(msg.Data, &in); err != nil {
		h.reply(cl, "Invalid message")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	if _, err := h.chatCmds.SendMessage(ctx, cl.groupID, cl.userID, in.Body); err != nil {
		if errs.Is(err, chat.ErrInvalidBody) {
			h.reply(cl, "Message must be 1-1000 characters")
			return
		}
		h.hub.logger.Warn("failed to send chat message", "session_id", cl.id, "error", err.Error())
		h.reply(cl, "Message could not be sent")
	}
}

// reply queues an error notice for cl alone; readPump runs before unregister,
// so cl.send is still open.
func (h *Handler) reply(cl *client, message string) {
	if data, err := encode(EventError, ErrorNotice{Message: message}); err == nil {
		h.hub.deliver(cl, EventError, data)
	}
}

// writePump is the connection's only writer.
func (h *Handler) writePump(ctx context.Context, cl *client) {
	tick := time.NewTicker(h.tick)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		tick.Stop()
		ping.Stop()
	}()

	h.sendCooldown(ctx, cl)
	for {
		select {
		case msg, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				_ = cl.conn.Close()
				return
			}
		case <-tick.C:
			if !h.sendCooldown(ctx, cl) {
				return
			}
		case <-ping.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = cl.conn.Close()
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) sendCooldown(ctx context.Context, cl *client) bool {
	remaining, err := h.wheel.Remaining(ctx, cl.userID)
	if err != nil {
		if ctx.Err() == nil {
			h.hub.logger.Warn("failed to read cooldown", "user_id", cl.userID, "error", err.Error())
		}
		return true
	}

	msg, err := encode(EventCooldown, CooldownTick{
		Remaining:        wheel.FormatRemaining(remaining),
		RemainingSeconds: int64(remaining.Seconds()),
	})
	if err != nil {
		return true
	}
	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		_ = cl.conn.Close()
		return false
	}
	return true
}
