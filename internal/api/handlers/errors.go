package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"debate_arena/internal/service"
)

// statusForError 把服務層的錯誤種類對應到 HTTP 狀態碼，
// 讓客戶端能分辨「還沒輪到你」「辯論已結束」「已投過票」等情況
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrOpinionNotFound),
		errors.Is(err, service.ErrTopicNotFound),
		errors.Is(err, service.ErrNoOpponentsAvailable):
		return http.StatusNotFound

	case errors.Is(err, service.ErrNotParticipant):
		return http.StatusForbidden

	case errors.Is(err, service.ErrWrongTurn),
		errors.Is(err, service.ErrTurnLimitExceeded),
		errors.Is(err, service.ErrDebateEnded),
		errors.Is(err, service.ErrNotVotingPhase),
		errors.Is(err, service.ErrDuplicateVote),
		errors.Is(err, service.ErrSameStance),
		errors.Is(err, service.ErrSelfDebate),
		errors.Is(err, service.ErrDebateNotOpen),
		errors.Is(err, service.ErrNoOpinionOnTopic):
		return http.StatusConflict

	case errors.Is(err, service.ErrInvalidOpponent),
		errors.Is(err, service.ErrInvalidRating):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrContentRejected):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "伺服器發生錯誤"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
