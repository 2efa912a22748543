package domain

import (
	"context"
	"strings"
	"time"
)

// PostingType тип публикации: предложение или поиск навыка.
type PostingType string

const (
	PostingTypeOffer PostingType = "OFFER"
	PostingTypeSeek  PostingType = "SEEK"
)

// ParsePostingType разбирает тип публикации без учета регистра.
func ParsePostingType(value string) (PostingType, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(PostingTypeOffer):
		return PostingTypeOffer, true
	case string(PostingTypeSeek):
		return PostingTypeSeek, true
	default:
		return "", false
	}
}

// Posting представляет публикацию пользователя.
type Posting struct {
	ID          int64
	Type        PostingType
	Description string
	IsActive    bool
	CreatedAt   time.Time
	ModifiedAt  time.Time
	AuthorID    int64
	SkillID     int64
	SkillName   string
}

// PostingInput содержит изменяемые поля публикации.
type PostingInput struct {
	Type        PostingType
	Description string
	SkillID     int64
}

// PostingRepository определяет контракт для работы с хранилищем публикаций.
type PostingRepository interface {
	Create(ctx context.Context, posting *Posting) error
	GetByID(ctx context.Context, postingID int64) (*Posting, error)
	Update(ctx context.Context, posting *Posting) (*Posting, error)
	SetActive(ctx context.Context, postingID int64, isActive bool) (*Posting, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Posting, error)
}
