package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/service"
)

// TopicHandler 處理主題與意見相關的請求
type TopicHandler struct {
	topicService *service.TopicService
}

func NewTopicHandler(topicService *service.TopicService) *TopicHandler {
	return &TopicHandler{topicService: topicService}
}

// CreateTopic 處理建立新主題的請求
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	topic, err := h.topicService.CreateTopic(input.Title, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}

// ListTopics 回傳所有主題
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.topicService.ListTopics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

// GetTopic 回傳單一主題
func (h *TopicHandler) GetTopic(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的主題 ID"})
		return
	}

	topic, err := h.topicService.GetTopic(uint(topicID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

// UpsertOpinion 建立或更新呼叫者對主題的意見
func (h *TopicHandler) UpsertOpinion(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的主題 ID"})
		return
	}

	var input struct {
		Stance     string `json:"stance" binding:"required"`
		Content    string `json:"content"`
		DebateOpen *bool  `json:"debate_open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	opinion, err := h.topicService.UpsertOpinion(uint(topicID), userID.(uint),
		input.Stance, input.Content, *input.DebateOpen)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, opinion)
}

// ListOpinions 回傳主題下的所有意見
func (h *TopicHandler) ListOpinions(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的主題 ID"})
		return
	}

	opinions, err := h.topicService.ListOpinions(uint(topicID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, opinions)
}
