package service

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendQueueSize  = 256
)

// Client 代表一條 WebSocket 連線，userID 為 0 表示匿名觀眾
type Client struct {
	conn   *websocket.Conn
	userID uint
	send   chan *Event
	done   chan struct{}
}

func newClient(conn *websocket.Conn, userID uint) *Client {
	return &Client{
		conn:   conn,
		userID: userID,
		send:   make(chan *Event, sendQueueSize),
		done:   make(chan struct{}),
	}
}

// trySend 把事件放入發送佇列，佇列已滿時回傳 false 而不阻塞
func (c *Client) trySend(event *Event) bool {
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

// HandleConnection 接手一條升級完成的 WebSocket 連線，
// 直到連線中斷才返回。中斷視同離開房間
func (h *Hub) HandleConnection(conn *websocket.Conn, userID uint, rooms *RoomService) {
	client := newClient(conn, userID)

	go h.writePump(client)

	defer func() {
		h.Disconnect(client)
		close(client.done)
		conn.Close()
	}()

	h.readPump(client, rooms)
}

// readPump 持續讀取客戶端訊息並依類型分派
func (h *Hub) readPump(client *Client, rooms *RoomService) {
	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket unexpected close", zap.Error(err))
			}
			return
		}

		var env ClientEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			client.trySend(newEvent(EventError, 0, client.userID, ErrorPayload{Message: "無法解析訊息"}))
			continue
		}

		h.dispatch(client, &env, rooms)
	}
}

// dispatch 依訊息類型處理客戶端的請求
func (h *Hub) dispatch(client *Client, env *ClientEnvelope, rooms *RoomService) {
	switch env.Type {
	case EventJoinRoom:
		if env.RoomID == 0 {
			client.trySend(newEvent(EventError, 0, client.userID, ErrorPayload{Message: "缺少房間 ID"}))
			return
		}
		h.Join(client, env.RoomID)

	case EventLeaveRoom:
		h.Leave(client)

	case EventChatMessage:
		roomID, ok := h.RoomOf(client)
		if !ok {
			client.trySend(newEvent(EventError, 0, client.userID, ErrorPayload{Message: "請先加入房間"}))
			return
		}
		if client.userID == 0 {
			client.trySend(newEvent(EventError, roomID, 0, ErrorPayload{Message: "匿名觀眾無法發言"}))
			return
		}
		var payload ChatPayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			client.trySend(newEvent(EventError, roomID, client.userID, ErrorPayload{Message: "無法解析訊息內容"}))
			return
		}
		// 訊息經過完整的回合狀態機，成功時由 RoomService 廣播
		if _, _, err := rooms.SendMessage(roomID, client.userID, payload.Content); err != nil {
			client.trySend(newEvent(EventError, roomID, client.userID, ErrorPayload{Message: err.Error()}))
		}

	case EventLiveVote, EventTyping, EventModeratorAction, EventStreamUpdate:
		roomID, ok := h.RoomOf(client)
		if !ok {
			client.trySend(newEvent(EventError, 0, client.userID, ErrorPayload{Message: "請先加入房間"}))
			return
		}
		// 原樣轉發給房間其他成員，附上伺服器時間與發送者
		relay := newEvent(env.Type, roomID, client.userID, json.RawMessage(env.Payload))
		h.Broadcast(roomID, relay, client)

	default:
		client.trySend(newEvent(EventError, 0, client.userID, ErrorPayload{Message: "未知的訊息類型"}))
	}
}

// writePump 把佇列中的事件寫到連線，並定期發送心跳
func (h *Hub) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-client.done:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			client.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
