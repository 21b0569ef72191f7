package service

import "errors"

// 驗證錯誤一律在任何寫入之前偵測並回傳，
// 讓呼叫端能分辨「還沒輪到你」與「辯論已結束」等不同情況
var (
	// 查無資源
	ErrRoomNotFound    = errors.New("辯論房間不存在")
	ErrOpinionNotFound = errors.New("意見不存在")
	ErrTopicNotFound   = errors.New("主題不存在")

	// 權限
	ErrNotParticipant = errors.New("用戶不是此辯論的參與者")

	// 狀態機違規
	ErrWrongTurn         = errors.New("尚未輪到您發言")
	ErrTurnLimitExceeded = errors.New("已達到發言次數上限")
	ErrDebateEnded       = errors.New("辯論已結束")
	ErrNotVotingPhase    = errors.New("目前不在投票階段")
	ErrDuplicateVote     = errors.New("您已經投過票了")
	ErrInvalidOpponent   = errors.New("評分對象必須是您的辯論對手")
	ErrInvalidRating     = errors.New("評分必須介於 1 到 5 之間")

	// 配對
	ErrNoOpinionOnTopic     = errors.New("您尚未對此主題發表意見")
	ErrDebateNotOpen        = errors.New("該意見未開放辯論")
	ErrNoOpponentsAvailable = errors.New("目前沒有可配對的對手")
	ErrSameStance           = errors.New("無法與相同立場的用戶辯論")
	ErrSelfDebate           = errors.New("無法與自己辯論")

	// 內容過濾
	ErrContentRejected = errors.New("訊息內容不被允許")
)
