package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// membership 記錄一條連線目前附著的房間與連線鍵
type membership struct {
	roomID uint
	key    string
}

// Hub 維護 roomID -> 連線鍵 -> 連線 的成員表與反向索引，
// 成員資料只存在於記憶體中，程序重啟後客戶端必須重新加入
type Hub struct {
	mu      sync.RWMutex
	rooms   map[uint]map[string]*Client
	members map[*Client]membership
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:   make(map[uint]map[string]*Client),
		members: make(map[*Client]membership),
		logger:  logger,
	}
}

// Join 把連線加入指定房間，一條連線同時只屬於一個房間，
// 若已在其他房間會先離開。加入者會收到 room_joined，
// 其他成員會收到 user_joined 與更新後的人數
func (h *Hub) Join(c *Client, roomID uint) {
	h.mu.Lock()

	var departed *departure
	if m, ok := h.members[c]; ok {
		departed = h.detachLocked(c, m)
	}

	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[string]*Client)
		h.rooms[roomID] = room
	}

	key := connectionKey(c)
	// 同一用戶的新連線取代舊連線的名額，被取代的連線
	// 從成員表移除，它之後的中斷不會再影響房間
	var displaced *Client
	if prev, ok := room[key]; ok && prev != c {
		delete(h.members, prev)
		displaced = prev
	}
	room[key] = c
	h.members[c] = membership{roomID: roomID, key: key}

	count := len(room)
	others := make([]*Client, 0, count-1)
	for _, member := range room {
		if member != c {
			others = append(others, member)
		}
	}
	h.mu.Unlock()

	h.notifyLeft(departed)

	if displaced != nil {
		displaced.trySend(newEvent(EventError, roomID, displaced.userID,
			ErrorPayload{Message: "此連線已被同一帳號的新連線取代"}))
	}

	c.trySend(newEvent(EventRoomJoined, roomID, c.userID, RoomJoinedPayload{Members: count}))
	joined := newEvent(EventUserJoined, roomID, c.userID, MemberPayload{Members: count})
	for _, member := range others {
		member.trySend(joined)
	}

	h.logger.Debug("connection joined room",
		zap.Uint("room_id", roomID), zap.Uint("user_id", c.userID), zap.Int("members", count))
}

// Leave 把連線從目前的房間移除，剩下的成員會收到 user_left
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	var departed *departure
	if m, ok := h.members[c]; ok {
		departed = h.detachLocked(c, m)
	}
	h.mu.Unlock()

	h.notifyLeft(departed)
}

// Disconnect 等同於 Leave，用於連線中斷時的清理
func (h *Hub) Disconnect(c *Client) {
	h.Leave(c)
}

// Broadcast 把事件發送給房間內的所有成員，可排除指定連線。
// 傳送是盡力而為：寫入佇列已滿的連線會被跳過，不會重試，
// 也不會影響其他成員
func (h *Hub) Broadcast(roomID uint, event *Event, exclude *Client) {
	h.mu.RLock()
	room := h.rooms[roomID]
	recipients := make([]*Client, 0, len(room))
	for _, member := range room {
		if member != exclude {
			recipients = append(recipients, member)
		}
	}
	h.mu.RUnlock()

	for _, member := range recipients {
		if !member.trySend(event) {
			h.logger.Warn("dropping event for slow connection",
				zap.Uint("room_id", roomID), zap.String("event", string(event.Type)))
		}
	}
}

// Members 回傳指定房間目前的連線數
func (h *Hub) Members(roomID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// RoomOf 回傳連線目前所在的房間
func (h *Hub) RoomOf(c *Client) (uint, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.members[c]
	return m.roomID, ok
}

// departure 暫存離開通知所需的資料，讓通知可以在鎖外送出
type departure struct {
	roomID     uint
	userID     uint
	recipients []*Client
}

// detachLocked 把連線從成員表移除，房間空了就整個丟棄。
// 呼叫方必須持有 h.mu 寫鎖
func (h *Hub) detachLocked(c *Client, m membership) *departure {
	room, ok := h.rooms[m.roomID]
	if !ok {
		delete(h.members, c)
		return nil
	}

	delete(room, m.key)
	delete(h.members, c)

	if len(room) == 0 {
		delete(h.rooms, m.roomID)
		return nil
	}

	recipients := make([]*Client, 0, len(room))
	for _, member := range room {
		recipients = append(recipients, member)
	}
	return &departure{roomID: m.roomID, userID: c.userID, recipients: recipients}
}

func (h *Hub) notifyLeft(d *departure) {
	if d == nil {
		return
	}
	left := newEvent(EventUserLeft, d.roomID, d.userID, MemberPayload{Members: len(d.recipients)})
	for _, member := range d.recipients {
		member.trySend(left)
	}
}

// connectionKey 以用戶 ID 作為連線鍵，匿名觀眾則產生訪客鍵
func connectionKey(c *Client) string {
	if c.userID != 0 {
		return fmt.Sprintf("u:%d", c.userID)
	}
	return "g:" + uuid.NewString()
}
