package domain

import (
	"context"
	"time"

	// Зона проверяется по встроенной базе IANA, а не по системной.
	_ "time/tzdata"
)

const (
	DefaultTimezone   = "Europe/Madrid"
	MaxProfileBio     = 200
	MaxTimezoneLength = 100
	MaxProfileSkills  = 20
)

// Profile публичная карточка пользователя: о себе, часовой пояс, доступность и навыки.
type Profile struct {
	UserID       int64
	Bio          string
	Timezone     string
	Availability string
	Skills       []*Skill
	UpdatedAt    time.Time
}

// DefaultProfile возвращается для пользователя, который еще не заполнял профиль.
func DefaultProfile(userID int64) *Profile {
	return &Profile{
		UserID:   userID,
		Timezone: DefaultTimezone,
		Skills:   []*Skill{},
	}
}

// ProfileInput полная замена профиля. Навыки задаются именами.
type ProfileInput struct {
	Bio          string
	Timezone     string
	Availability string
	Skills       []string
}

// ProfileRepository определяет контракт для работы с хранилищем профилей.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
}

// ProfileUseCase определяет бизнес-логику профилей.
type ProfileUseCase interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, input ProfileInput) (*Profile, error)
}
