package repository

import "debate_arena/internal/storage"

type Repositories struct {
	User    UserRepository
	Topic   TopicRepository
	Opinion OpinionRepository
	Room    RoomRepository
	Message MessageRepository
	Vote    VoteRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Topic:   NewTopicRepository(db),
		Opinion: NewOpinionRepository(db),
		Room:    NewRoomRepository(db),
		Message: NewMessageRepository(db),
		Vote:    NewVoteRepository(db),
	}
}
