package service

import "debate_arena/internal/models"

// RedactedContent 是私人訊息對外顯示的固定佔位文字
const RedactedContent = "（此訊息已由發言者設為私人）"

// RedactMessage 依觀看者決定是否遮蔽訊息內容。
// 遮蔽只在讀取時計算，永遠不會寫回儲存的內容，
// 所以隱私設定的變更對之後的每一次讀取立即生效。
// 發言者永遠看得到自己的訊息，viewerID 為 0 表示匿名觀眾
func RedactMessage(msg models.DebateMessage, room *models.DebateRoom, viewerID uint) models.DebateMessage {
	if msg.UserID == viewerID {
		return msg
	}

	switch msg.UserID {
	case room.Participant1ID:
		if room.Participant1Privacy == models.PrivacyPrivate {
			msg.Content = RedactedContent
		}
	case room.Participant2ID:
		if room.Participant2Privacy == models.PrivacyPrivate {
			msg.Content = RedactedContent
		}
	}
	return msg
}
