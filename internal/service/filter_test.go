package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordListFilter(t *testing.T) {
	filter := NewWordListFilter([]string{"禁詞"}, []string{"敏感"})

	t.Run("正常內容", func(t *testing.T) {
		result, err := filter.Check("一般的論點")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.False(t, result.ShouldFlag)
	})

	t.Run("包含禁詞直接拒絕", func(t *testing.T) {
		result, err := filter.Check("這句話有禁詞在裡面")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
	})

	t.Run("包含敏感詞標記但允許", func(t *testing.T) {
		result, err := filter.Check("這句話有敏感內容")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.True(t, result.ShouldFlag)
	})

	t.Run("英文不分大小寫", func(t *testing.T) {
		f := NewWordListFilter([]string{"spam"}, nil)
		result, err := f.Check("This is SPAM content")
		require.NoError(t, err)
		assert.False(t, result.Allowed)
	})
}
