package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"debate_arena/internal/service"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"房間不存在", service.ErrRoomNotFound, http.StatusNotFound},
		{"沒有可配對的對手", service.ErrNoOpponentsAvailable, http.StatusNotFound},
		{"非參與者", service.ErrNotParticipant, http.StatusForbidden},
		{"還沒輪到", service.ErrWrongTurn, http.StatusConflict},
		{"發言次數上限", service.ErrTurnLimitExceeded, http.StatusConflict},
		{"辯論已結束", service.ErrDebateEnded, http.StatusConflict},
		{"不在投票階段", service.ErrNotVotingPhase, http.StatusConflict},
		{"重複投票", service.ErrDuplicateVote, http.StatusConflict},
		{"相同立場", service.ErrSameStance, http.StatusConflict},
		{"自我配對", service.ErrSelfDebate, http.StatusConflict},
		{"評分對象錯誤", service.ErrInvalidOpponent, http.StatusBadRequest},
		{"評分超出範圍", service.ErrInvalidRating, http.StatusBadRequest},
		{"內容被拒絕", service.ErrContentRejected, http.StatusUnprocessableEntity},
		{"未知錯誤", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, statusForError(tc.err))
		})
	}
}
