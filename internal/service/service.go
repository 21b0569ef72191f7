package service

import (
	"go.uber.org/zap"

	"debate_arena/internal/config"
	"debate_arena/internal/repository"
)

type Services struct {
	User    *UserService
	Topic   *TopicService
	Matcher *MatcherService
	Room    *RoomService
	Hub     *Hub
}

func NewServices(repos *repository.Repositories, cfg config.DebateConfig, logger *zap.Logger) *Services {
	hub := NewHub(logger)
	filter := NewWordListFilter(cfg.BlockedWords, cfg.FlaggedWords)

	return &Services{
		User:    NewUserService(repos.User),
		Topic:   NewTopicService(repos.Topic, repos.Opinion),
		Matcher: NewMatcherService(repos.Room, repos.Opinion, logger),
		Room:    NewRoomService(repos.Room, repos.Message, repos.Vote, hub, filter, cfg.TurnLimit, logger),
		Hub:     hub,
	}
}
