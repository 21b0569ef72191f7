package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/models"
	"debate_arena/internal/service"
)

// DebateHandler 處理辯論房間相關的請求
type DebateHandler struct {
	matcherService *service.MatcherService
	roomService    *service.RoomService
}

func NewDebateHandler(matcherService *service.MatcherService, roomService *service.RoomService) *DebateHandler {
	return &DebateHandler{
		matcherService: matcherService,
		roomService:    roomService,
	}
}

// MatchDebate 隨機配對一位立場不同的對手並建立房間
func (h *DebateHandler) MatchDebate(c *gin.Context) {
	var input struct {
		TopicID uint `json:"topic_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	room, err := h.matcherService.MatchDebate(input.TopicID, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// StartDirectDebate 直接挑戰某則意見的作者
func (h *DebateHandler) StartDirectDebate(c *gin.Context) {
	var input struct {
		OpinionID uint `json:"opinion_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	room, err := h.matcherService.StartDebateWithOpponent(input.OpinionID, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListMyDebates 回傳呼叫者參與過的所有辯論
func (h *DebateHandler) ListMyDebates(c *gin.Context) {
	userID, _ := c.Get("userID")

	rooms, err := h.roomService.ListRoomsByParticipant(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom 回傳房間目前的狀態
func (h *DebateHandler) GetRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// SendMessage 處理一則發言，回傳訊息與更新後的房間
func (h *DebateHandler) SendMessage(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	message, room, err := h.roomService.SendMessage(roomID, userID.(uint), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message, "room": room})
}

// GetMessages 回傳套用隱私遮蔽後的訊息紀錄，觀看者為呼叫者本人
func (h *DebateHandler) GetMessages(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	userID, _ := c.Get("userID")

	messages, err := h.roomService.GetMessages(roomID, userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SubmitVote 在投票階段提交對對手的評分與是否繼續的選擇
func (h *DebateHandler) SubmitVote(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	var input struct {
		VotedForUserID   uint  `json:"voted_for_user_id" binding:"required"`
		LogicalReasoning int   `json:"logical_reasoning" binding:"required"`
		Politeness       int   `json:"politeness" binding:"required"`
		OpennessToChange int   `json:"openness_to_change" binding:"required"`
		Continue         *bool `json:"continue" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	ratings := service.Ratings{
		LogicalReasoning: input.LogicalReasoning,
		Politeness:       input.Politeness,
		OpennessToChange: input.OpennessToChange,
	}

	vote, room, err := h.roomService.SubmitVote(roomID, userID.(uint), input.VotedForUserID, ratings, *input.Continue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vote": vote, "room": room})
}

// GetVotes 回傳房間的所有評分紀錄
func (h *DebateHandler) GetVotes(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	votes, err := h.roomService.GetVotes(roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, votes)
}

// SetPrivacy 更新呼叫者自己的訊息隱私設定
func (h *DebateHandler) SetPrivacy(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	var input struct {
		Privacy models.Privacy `json:"privacy" binding:"required,oneof=public private"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	if err := h.roomService.SetPrivacy(roomID, userID.(uint), input.Privacy); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "隱私設定已更新"})
}

// EndRoom 由參與者提前結束辯論
func (h *DebateHandler) EndRoom(c *gin.Context) {
	roomID, ok := parseRoomID(c)
	if !ok {
		return
	}

	userID, _ := c.Get("userID")

	if err := h.roomService.EndRoom(roomID, userID.(uint)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "辯論已結束"})
}

func parseRoomID(c *gin.Context) (uint, bool) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的房間 ID"})
		return 0, false
	}
	return uint(roomID), true
}
