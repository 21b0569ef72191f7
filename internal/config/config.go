package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Debate DebateConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type JWTConfig struct {
	Secret      string
	ExpireHours int
}

// DebateConfig 定義辯論規則的參數
type DebateConfig struct {
	TurnLimit    int      // 結構化階段中每位參與者的發言上限
	BlockedWords []string // 內容過濾器直接拒絕的詞
	FlaggedWords []string // 內容過濾器標記但仍保存的詞
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	// 找不到設定檔時使用預設值，其他錯誤仍然回報
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.user", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.name", "debate_arena")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("jwt.secret", "change_me_in_production")
	viper.SetDefault("jwt.expirehours", 240)
	viper.SetDefault("debate.turnlimit", 3)
	viper.SetDefault("debate.blockedwords", []string{})
	viper.SetDefault("debate.flaggedwords", []string{})
}
