package service

import (
	"encoding/json"
	"time"

	"debate_arena/internal/models"
)

// EventType 定義在房間內流動的事件種類
type EventType string

const (
	// 伺服器發出
	EventRoomJoined  EventType = "room_joined" // 只發給加入者本人
	EventUserJoined  EventType = "user_joined"
	EventUserLeft    EventType = "user_left"
	EventChatMessage EventType = "chat_message"
	EventTurnUpdate  EventType = "turn_update"
	EventPhaseUpdate EventType = "phase_update"
	EventError       EventType = "error" // 只發給出錯的連線本人

	// 客戶端發入，原樣轉發給房間其他成員
	EventLiveVote        EventType = "live_vote"
	EventTyping          EventType = "typing"
	EventModeratorAction EventType = "moderator_action"
	EventStreamUpdate    EventType = "stream_update"

	// 客戶端發入的控制訊息
	EventJoinRoom  EventType = "join_room"
	EventLeaveRoom EventType = "leave_room"
)

// Event 是廣播給房間成員的訊息封包
type Event struct {
	Type      EventType   `json:"type"`
	RoomID    uint        `json:"room_id,omitempty"`
	UserID    uint        `json:"user_id,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func newEvent(t EventType, roomID, userID uint, payload interface{}) *Event {
	return &Event{
		Type:      t,
		RoomID:    roomID,
		UserID:    userID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// ClientEnvelope 是客戶端經由 WebSocket 送入的訊息外層結構，
// Payload 依照 Type 再各自解碼
type ClientEnvelope struct {
	Type    EventType       `json:"type"`
	RoomID  uint            `json:"room_id,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ChatPayload 是 chat_message 的內層結構
type ChatPayload struct {
	Content string `json:"content"`
}

// RoomJoinedPayload 通知加入者目前的成員數
type RoomJoinedPayload struct {
	Members int `json:"members"`
}

// MemberPayload 通知房間內其他人成員變動後的人數
type MemberPayload struct {
	Members int `json:"members"`
}

// MessagePayload 是 chat_message 廣播的內層結構
type MessagePayload struct {
	MessageID uint                 `json:"message_id"`
	Content   string               `json:"content"`
	Status    models.MessageStatus `json:"status"`
}

// TurnPayload 通知目前輪到誰與雙方的發言次數
type TurnPayload struct {
	CurrentTurn uint `json:"current_turn"`
	TurnCount1  int  `json:"turn_count1"`
	TurnCount2  int  `json:"turn_count2"`
}

// PhasePayload 通知階段或狀態的變化
type PhasePayload struct {
	Phase            models.DebatePhase `json:"phase"`
	Status           models.RoomStatus  `json:"status"`
	TurnCount1       int                `json:"turn_count1"`
	TurnCount2       int                `json:"turn_count2"`
	VotesToContinue1 *bool              `json:"votes_to_continue1"`
	VotesToContinue2 *bool              `json:"votes_to_continue2"`
}

// ErrorPayload 把被拒絕的操作原因回傳給連線本人
type ErrorPayload struct {
	Message string `json:"message"`
}
