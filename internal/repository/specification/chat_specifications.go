package specification

import (
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByChatSessionID struct {
	ChatSessionID string
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

type ByCollectionName struct {
	CollectionName string
}

func (s ByCollectionName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("collection_name = ?", s.CollectionName)
}
