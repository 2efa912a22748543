package domain

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Skill представляет навык из каталога.
type Skill struct {
	ID       int64
	Name     string
	IsActive bool
}

// SkillRepository определяет контракт для работы с каталогом навыков.
type SkillRepository interface {
	GetByID(ctx context.Context, skillID int64) (*Skill, error)
	GetByName(ctx context.Context, name string) (*Skill, error)
	CreateIfNotExists(ctx context.Context, name string) (*Skill, error)
	ListActive(ctx context.Context) ([]*Skill, error)
	SetActive(ctx context.Context, skillID int64, isActive bool) (*Skill, error)
	Delete(ctx context.Context, skillID int64) error
}

// SkillCache кэширует список активных навыков. nil-кэш допустим.
type SkillCache interface {
	GetActiveSkills(ctx context.Context) ([]*Skill, bool)
	SetActiveSkills(ctx context.Context, skills []*Skill)
	InvalidateActiveSkills(ctx context.Context)
}

// NormalizeSkillName схлопывает пробелы и приводит имя к канонической капитализации:
// "python" и "PYTHON" дают "Python".
func NormalizeSkillName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	// Caser хранит состояние, поэтому создается на каждый вызов.
	return cases.Title(language.Und).String(strings.Join(fields, " "))
}
