package service

import "strings"

// FilterResult 是內容過濾器的判定結果
type FilterResult struct {
	Allowed    bool // false 表示訊息直接被拒絕，不會保存
	ShouldFlag bool // true 表示保存時標記為 flagged
}

// ContentFilter 是外部內容審核服務的介面
type ContentFilter interface {
	Check(content string) (FilterResult, error)
}

// WordListFilter 是以詞彙表比對的內建過濾器實作
type WordListFilter struct {
	blocked []string
	flagged []string
}

func NewWordListFilter(blocked, flagged []string) *WordListFilter {
	return &WordListFilter{blocked: blocked, flagged: flagged}
}

func (f *WordListFilter) Check(content string) (FilterResult, error) {
	lowered := strings.ToLower(content)
	for _, w := range f.blocked {
		if w != "" && strings.Contains(lowered, strings.ToLower(w)) {
			return FilterResult{Allowed: false}, nil
		}
	}
	for _, w := range f.flagged {
		if w != "" && strings.Contains(lowered, strings.ToLower(w)) {
			return FilterResult{Allowed: true, ShouldFlag: true}, nil
		}
	}
	return FilterResult{Allowed: true}, nil
}
