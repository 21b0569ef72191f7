package service

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"debate_arena/internal/models"
	"debate_arena/internal/repository"
)

// RoomService 是辯論房間引擎：每個進入的操作都會
// 讀取房間狀態、套用狀態機轉移、保存結果，最後廣播事件。
// 同一個房間的操作以房間鎖序列化，驗證失敗不會留下任何部分寫入
type RoomService struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
	voteRepo    repository.VoteRepository
	hub         *Hub
	filter      ContentFilter
	locks       *roomLocks
	turnLimit   int
	logger      *zap.Logger
}

func NewRoomService(
	roomRepo repository.RoomRepository,
	messageRepo repository.MessageRepository,
	voteRepo repository.VoteRepository,
	hub *Hub,
	filter ContentFilter,
	turnLimit int,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		voteRepo:    voteRepo,
		hub:         hub,
		filter:      filter,
		locks:       newRoomLocks(),
		turnLimit:   turnLimit,
		logger:      logger,
	}
}

func (s *RoomService) GetRoom(roomID uint) (*models.DebateRoom, error) {
	return s.loadRoom(roomID)
}

// ListRoomsByParticipant 回傳用戶參與過的所有辯論
func (s *RoomService) ListRoomsByParticipant(userID uint) ([]models.DebateRoom, error) {
	return s.roomRepo.FindByParticipant(userID)
}

// SendMessage 處理一則發言：
// 結構化階段中只有輪到的參與者能發言，且每人最多 turnLimit 次；
// 雙方都達到上限時進入投票階段；投票與自由階段不限制輪次。
// 內容先經過過濾器，不允許的內容在任何寫入之前就被拒絕
func (s *RoomService) SendMessage(roomID, userID uint, content string) (*models.DebateMessage, *models.DebateRoom, error) {
	lock := s.locks.lock(roomID)
	defer lock.Unlock()

	room, err := s.loadRoom(roomID)
	if err != nil {
		return nil, nil, err
	}

	if room.Status == models.RoomStatusEnded {
		return nil, nil, ErrDebateEnded
	}
	if !room.IsParticipant(userID) {
		return nil, nil, ErrNotParticipant
	}

	if room.Phase == models.PhaseStructured {
		if room.CurrentTurn != userID {
			return nil, nil, ErrWrongTurn
		}
		if s.turnCountOf(room, userID) >= s.turnLimit {
			return nil, nil, ErrTurnLimitExceeded
		}
	}

	verdict, err := s.filter.Check(content)
	if err != nil {
		return nil, nil, err
	}
	if !verdict.Allowed {
		return nil, nil, ErrContentRejected
	}

	status := models.MessageStatusApproved
	if verdict.ShouldFlag {
		status = models.MessageStatusFlagged
	}

	message := &models.DebateMessage{
		RoomID:  roomID,
		UserID:  userID,
		Content: content,
		Status:  status,
	}

	phaseChanged := false
	wasStructured := room.Phase == models.PhaseStructured
	if wasStructured {
		s.incrementTurn(room, userID)
		room.CurrentTurn = room.OtherParticipant(userID)

		// 雙方都用完發言次數，進入投票階段，此後輪次不再有意義
		if room.TurnCount1 >= s.turnLimit && room.TurnCount2 >= s.turnLimit {
			room.Phase = models.PhaseVoting
			phaseChanged = true
		}

		// 訊息與回合狀態在同一交易中保存，任一失敗都不留下部分寫入
		if err := s.roomRepo.UpdateWithMessage(room, message); err != nil {
			return nil, nil, err
		}
	} else if err := s.messageRepo.Create(message); err != nil {
		return nil, nil, err
	}

	// 保存都成功之後才廣播
	s.hub.Broadcast(roomID, newEvent(EventChatMessage, roomID, userID, MessagePayload{
		MessageID: message.ID,
		Content:   content,
		Status:    status,
	}), nil)
	if wasStructured {
		s.broadcastTurn(room)
	}
	if phaseChanged {
		s.broadcastPhase(room)
	}

	return message, room, nil
}

// GetMessages 回傳房間的訊息紀錄，逐則套用隱私遮蔽。
// viewerID 為 0 表示匿名觀眾
func (s *RoomService) GetMessages(roomID, viewerID uint) ([]models.DebateMessage, error) {
	room, err := s.loadRoom(roomID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByRoomID(roomID)
	if err != nil {
		return nil, err
	}

	redacted := make([]models.DebateMessage, 0, len(messages))
	for _, msg := range messages {
		redacted = append(redacted, RedactMessage(msg, room, viewerID))
	}
	return redacted, nil
}

// SetPrivacy 更新呼叫者自己的隱私槽位，對之後的每一次讀取立即生效
func (s *RoomService) SetPrivacy(roomID, userID uint, privacy models.Privacy) error {
	lock := s.locks.lock(roomID)
	defer lock.Unlock()

	room, err := s.loadRoom(roomID)
	if err != nil {
		return err
	}

	switch userID {
	case room.Participant1ID:
		room.Participant1Privacy = privacy
	case room.Participant2ID:
		room.Participant2Privacy = privacy
	default:
		return ErrNotParticipant
	}

	return s.roomRepo.Update(room)
}

// EndRoom 由參與者提前結束辯論，ended 是終態
func (s *RoomService) EndRoom(roomID, userID uint) error {
	lock := s.locks.lock(roomID)
	defer lock.Unlock()

	room, err := s.loadRoom(roomID)
	if err != nil {
		return err
	}

	if !room.IsParticipant(userID) {
		return ErrNotParticipant
	}
	if room.Status == models.RoomStatusEnded {
		return ErrDebateEnded
	}

	now := time.Now()
	room.Status = models.RoomStatusEnded
	room.EndedAt = &now

	if err := s.roomRepo.Update(room); err != nil {
		return err
	}

	s.broadcastPhase(room)
	s.logger.Info("debate ended early", zap.Uint("room_id", roomID), zap.Uint("by", userID))

	// 結束是終態，鎖表不再保留此房間的項目
	s.locks.release(roomID, lock)
	return nil
}

func (s *RoomService) loadRoom(roomID uint) (*models.DebateRoom, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) turnCountOf(room *models.DebateRoom, userID uint) int {
	if userID == room.Participant1ID {
		return room.TurnCount1
	}
	return room.TurnCount2
}

func (s *RoomService) incrementTurn(room *models.DebateRoom, userID uint) {
	if userID == room.Participant1ID {
		room.TurnCount1++
	} else {
		room.TurnCount2++
	}
}

func (s *RoomService) broadcastTurn(room *models.DebateRoom) {
	s.hub.Broadcast(room.ID, newEvent(EventTurnUpdate, room.ID, 0, TurnPayload{
		CurrentTurn: room.CurrentTurn,
		TurnCount1:  room.TurnCount1,
		TurnCount2:  room.TurnCount2,
	}), nil)
}

func (s *RoomService) broadcastPhase(room *models.DebateRoom) {
	s.hub.Broadcast(room.ID, newEvent(EventPhaseUpdate, room.ID, 0, PhasePayload{
		Phase:            room.Phase,
		Status:           room.Status,
		TurnCount1:       room.TurnCount1,
		TurnCount2:       room.TurnCount2,
		VotesToContinue1: room.VotesToContinue1,
		VotesToContinue2: room.VotesToContinue2,
	}), nil)
}
