package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debate_arena/internal/models"
)

func privateRoom() *models.DebateRoom {
	return &models.DebateRoom{
		Participant1ID:      1,
		Participant2ID:      2,
		Participant1Privacy: models.PrivacyPrivate,
		Participant2Privacy: models.PrivacyPublic,
	}
}

func TestRedactMessage_Symmetry(t *testing.T) {
	room := privateRoom()
	msg := models.DebateMessage{RoomID: 5, UserID: 1, Content: "祕密論點"}

	// 作者以外的所有觀看者都只看到佔位文字
	assert.Equal(t, RedactedContent, RedactMessage(msg, room, 2).Content)
	assert.Equal(t, RedactedContent, RedactMessage(msg, room, 99).Content)
	assert.Equal(t, RedactedContent, RedactMessage(msg, room, 0).Content) // 匿名觀眾

	// 作者永遠看得到自己的訊息
	assert.Equal(t, "祕密論點", RedactMessage(msg, room, 1).Content)
}

func TestRedactMessage_PublicAuthor(t *testing.T) {
	room := privateRoom()
	msg := models.DebateMessage{RoomID: 5, UserID: 2, Content: "公開論點"}

	// 參與者 2 是 public，任何人都看得到
	assert.Equal(t, "公開論點", RedactMessage(msg, room, 1).Content)
	assert.Equal(t, "公開論點", RedactMessage(msg, room, 0).Content)
}

func TestRedactMessage_NeverMutatesStoredContent(t *testing.T) {
	room := privateRoom()
	msg := models.DebateMessage{RoomID: 5, UserID: 1, Content: "原始內容"}

	_ = RedactMessage(msg, room, 2)
	assert.Equal(t, "原始內容", msg.Content)
}

func TestGetMessages_AppliesRedaction(t *testing.T) {
	rooms := newFakeRoomRepo()
	msgs := newFakeMessageRepo()
	svc := newTestRoomService(rooms, msgs, newFakeVoteRepo(), allowFilter{})
	seeded := seedRoom(rooms)

	_, _, err := svc.SendMessage(seeded.ID, 1, "正方第一句")
	require.NoError(t, err)
	_, _, err = svc.SendMessage(seeded.ID, 2, "反方第一句")
	require.NoError(t, err)

	// 參與者 1 把自己設為 private，立即影響之後的讀取
	require.NoError(t, svc.SetPrivacy(seeded.ID, 1, models.PrivacyPrivate))

	viewed, err := svc.GetMessages(seeded.ID, 2)
	require.NoError(t, err)
	require.Len(t, viewed, 2)
	assert.Equal(t, RedactedContent, viewed[0].Content)
	assert.Equal(t, "反方第一句", viewed[1].Content)

	// 作者本人不受影響
	own, err := svc.GetMessages(seeded.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "正方第一句", own[0].Content)

	// 改回 public 後對所有人可見
	require.NoError(t, svc.SetPrivacy(seeded.ID, 1, models.PrivacyPublic))
	viewed, err = svc.GetMessages(seeded.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "正方第一句", viewed[0].Content)
}

func TestSetPrivacy_NotAParticipant(t *testing.T) {
	rooms := newFakeRoomRepo()
	svc := newTestRoomService(rooms, newFakeMessageRepo(), newFakeVoteRepo(), allowFilter{})
	seeded := seedRoom(rooms)

	err := svc.SetPrivacy(seeded.ID, 99, models.PrivacyPrivate)
	assert.ErrorIs(t, err, ErrNotParticipant)

	// 隱私欄位不變
	reloaded, _ := rooms.FindByID(seeded.ID)
	assert.Equal(t, models.PrivacyPublic, reloaded.Participant1Privacy)
	assert.Equal(t, models.PrivacyPublic, reloaded.Participant2Privacy)
}

func TestSetPrivacy_OnlyOwnSlot(t *testing.T) {
	rooms := newFakeRoomRepo()
	svc := newTestRoomService(rooms, newFakeMessageRepo(), newFakeVoteRepo(), allowFilter{})
	seeded := seedRoom(rooms)

	require.NoError(t, svc.SetPrivacy(seeded.ID, 2, models.PrivacyPrivate))

	reloaded, _ := rooms.FindByID(seeded.ID)
	assert.Equal(t, models.PrivacyPublic, reloaded.Participant1Privacy)
	assert.Equal(t, models.PrivacyPrivate, reloaded.Participant2Privacy)
}
