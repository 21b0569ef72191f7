package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	// 測試目錄下沒有設定檔，Load 應使用預設值
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 3, cfg.Debate.TurnLimit)
	assert.Equal(t, 240, cfg.JWT.ExpireHours)
	assert.NotEmpty(t, cfg.JWT.Secret)
}
