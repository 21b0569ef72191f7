package service

import (
	"errors"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"debate_arena/internal/models"
)

// 測試用的記憶體 repository，行為比照資料庫：
// 讀取回傳副本，查無資料回傳 gorm.ErrRecordNotFound

type fakeRoomRepo struct {
	mu         sync.Mutex
	rooms      map[uint]*models.DebateRoom
	nextID     uint
	msgs       *fakeMessageRepo
	failUpdate bool
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uint]*models.DebateRoom)}
}

func (r *fakeRoomRepo) Create(room *models.DebateRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	room.ID = r.nextID
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) FindByID(id uint) (*models.DebateRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *room
	return &cp, nil
}

func (r *fakeRoomRepo) Update(room *models.DebateRoom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

// UpdateWithMessage 比照資料庫交易：失敗時訊息與房間都不寫入
func (r *fakeRoomRepo) UpdateWithMessage(room *models.DebateRoom, message *models.DebateMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate {
		return errors.New("db down")
	}
	if err := r.msgs.Create(message); err != nil {
		return err
	}
	cp := *room
	r.rooms[room.ID] = &cp
	return nil
}

func (r *fakeRoomRepo) FindByParticipant(userID uint) ([]models.DebateRoom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.DebateRoom
	for _, room := range r.rooms {
		if room.IsParticipant(userID) {
			out = append(out, *room)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []models.DebateMessage
	nextID   uint
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(message *models.DebateMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	message.ID = r.nextID
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) FindByRoomID(roomID uint) ([]models.DebateMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.DebateMessage
	for _, msg := range r.messages {
		if msg.RoomID == roomID {
			out = append(out, msg)
		}
	}
	return out, nil
}

type fakeVoteRepo struct {
	mu     sync.Mutex
	votes  map[[2]uint]models.DebateVote
	nextID uint
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[[2]uint]models.DebateVote)}
}

func (r *fakeVoteRepo) Create(vote *models.DebateVote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	vote.ID = r.nextID
	r.votes[[2]uint{vote.RoomID, vote.VoterID}] = *vote
	return nil
}

func (r *fakeVoteRepo) FindByRoomAndVoter(roomID, voterID uint) (*models.DebateVote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vote, ok := r.votes[[2]uint{roomID, voterID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := vote
	return &cp, nil
}

func (r *fakeVoteRepo) FindByRoomID(roomID uint) ([]models.DebateVote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.DebateVote
	for _, vote := range r.votes {
		if vote.RoomID == roomID {
			out = append(out, vote)
		}
	}
	return out, nil
}

type fakeOpinionRepo struct {
	mu       sync.Mutex
	opinions map[uint]*models.Opinion
	nextID   uint
}

func newFakeOpinionRepo() *fakeOpinionRepo {
	return &fakeOpinionRepo{opinions: make(map[uint]*models.Opinion)}
}

func (r *fakeOpinionRepo) add(topicID, userID uint, stance string, open bool) *models.Opinion {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	op := &models.Opinion{TopicID: topicID, UserID: userID, Stance: stance, DebateOpen: open}
	op.ID = r.nextID
	r.opinions[op.ID] = op
	return op
}

func (r *fakeOpinionRepo) Upsert(opinion *models.Opinion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, op := range r.opinions {
		if op.TopicID == opinion.TopicID && op.UserID == opinion.UserID {
			opinion.ID = op.ID
			cp := *opinion
			r.opinions[op.ID] = &cp
			return nil
		}
	}
	r.nextID++
	opinion.ID = r.nextID
	cp := *opinion
	r.opinions[opinion.ID] = &cp
	return nil
}

func (r *fakeOpinionRepo) FindByID(id uint) (*models.Opinion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	op, ok := r.opinions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *op
	return &cp, nil
}

func (r *fakeOpinionRepo) FindByTopicAndUser(topicID, userID uint) (*models.Opinion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, op := range r.opinions {
		if op.TopicID == topicID && op.UserID == userID {
			cp := *op
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOpinionRepo) FindByTopicID(topicID uint) ([]models.Opinion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Opinion
	for _, op := range r.opinions {
		if op.TopicID == topicID {
			out = append(out, *op)
		}
	}
	return out, nil
}

func (r *fakeOpinionRepo) FindDebatable(topicID uint, excludeUserID uint, stance string) ([]models.Opinion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Opinion
	for _, op := range r.opinions {
		if op.TopicID == topicID && op.UserID != excludeUserID && op.Stance != stance && op.DebateOpen {
			out = append(out, *op)
		}
	}
	return out, nil
}

// 測試用的內容過濾器

type allowFilter struct{}

func (allowFilter) Check(string) (FilterResult, error) {
	return FilterResult{Allowed: true}, nil
}

type flagFilter struct{}

func (flagFilter) Check(string) (FilterResult, error) {
	return FilterResult{Allowed: true, ShouldFlag: true}, nil
}

type blockFilter struct{}

func (blockFilter) Check(string) (FilterResult, error) {
	return FilterResult{Allowed: false}, nil
}

// newTestRoomService 組出一個用記憶體 repository 的 RoomService
func newTestRoomService(rooms *fakeRoomRepo, msgs *fakeMessageRepo, votes *fakeVoteRepo, filter ContentFilter) *RoomService {
	logger := zap.NewNop()
	rooms.msgs = msgs
	return NewRoomService(rooms, msgs, votes, NewHub(logger), filter, 3, logger)
}

// seedRoom 建立一個參與者為 1 與 2、由 1 先發言的結構化階段房間
func seedRoom(repo *fakeRoomRepo) *models.DebateRoom {
	room := &models.DebateRoom{
		TopicID:             10,
		Participant1ID:      1,
		Participant2ID:      2,
		Participant1Stance:  "for",
		Participant2Stance:  "against",
		Participant1Privacy: models.PrivacyPublic,
		Participant2Privacy: models.PrivacyPublic,
		Phase:               models.PhaseStructured,
		CurrentTurn:         1,
		Status:              models.RoomStatusActive,
	}
	repo.Create(room)
	return room
}
