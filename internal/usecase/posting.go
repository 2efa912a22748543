package usecase

import (
	"context"
	"strings"

	"skillswap-service/internal/domain"
	"skillswap-service/internal/telemetry"
)

// PostingUseCase реализует публикации и поиск по ним.
type PostingUseCase struct {
	postingRepo domain.PostingRepository
	userRepo    domain.UserRepository
	skillRepo   domain.SkillRepository
}

// NewPostingUseCase создает новый экземпляр PostingUseCase.
func NewPostingUseCase(
	postingRepo domain.PostingRepository,
	userRepo domain.UserRepository,
	skillRepo domain.SkillRepository,
) domain.PostingUseCase {
	return &PostingUseCase{
		postingRepo: postingRepo,
		userRepo:    userRepo,
		skillRepo:   skillRepo,
	}
}

// activeSkill возвращает навык, пригодный для новой или измененной публикации.
func (uc *PostingUseCase) activeSkill(ctx context.Context, skillID int64) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if !skill.IsActive {
		return nil, domain.ErrSkillNotFound
	}
	return skill, nil
}

// CreatePosting публикует предложение или запрос навыка от имени автора.
func (uc *PostingUseCase) CreatePosting(ctx context.Context, authorID int64, input domain.PostingInput) (*domain.Posting, error) {
	if err := domain.ValidatePosting(input); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	skill, err := uc.activeSkill(ctx, input.SkillID)
	if err != nil {
		return nil, err
	}

	posting := &domain.Posting{
		Type:        input.Type,
		Description: strings.TrimSpace(input.Description),
		AuthorID:    authorID,
		SkillID:     skill.ID,
		SkillName:   skill.Name,
	}
	if err := uc.postingRepo.Create(ctx, posting); err != nil {
		return nil, err
	}

	return posting, nil
}

// GetPosting возвращает публикацию по ID.
func (uc *PostingUseCase) GetPosting(ctx context.Context, postingID int64) (*domain.Posting, error) {
	return uc.postingRepo.GetByID(ctx, postingID)
}

// ownPosting загружает публикацию и проверяет, что действие выполняет автор.
func (uc *PostingUseCase) ownPosting(ctx context.Context, actorID, postingID int64) (*domain.Posting, error) {
	posting, err := uc.postingRepo.GetByID(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if posting.AuthorID != actorID {
		return nil, domain.ErrNotPostingAuthor
	}
	return posting, nil
}

// UpdatePosting меняет тип, описание и навык. Доступно только автору.
func (uc *PostingUseCase) UpdatePosting(ctx context.Context, actorID, postingID int64, input domain.PostingInput) (*domain.Posting, error) {
	if err := domain.ValidatePosting(input); err != nil {
		return nil, err
	}

	posting, err := uc.ownPosting(ctx, actorID, postingID)
	if err != nil {
		return nil, err
	}

	if input.SkillID != posting.SkillID {
		if _, err := uc.activeSkill(ctx, input.SkillID); err != nil {
			return nil, err
		}
	}

	posting.Type = input.Type
	posting.Description = strings.TrimSpace(input.Description)
	posting.SkillID = input.SkillID

	return uc.postingRepo.Update(ctx, posting)
}

// ClosePosting снимает публикацию с показа. Доступно только автору.
func (uc *PostingUseCase) ClosePosting(ctx context.Context, actorID, postingID int64) (*domain.Posting, error) {
	if _, err := uc.ownPosting(ctx, actorID, postingID); err != nil {
		return nil, err
	}

	return uc.postingRepo.SetActive(ctx, postingID, false)
}

// Search разбирает строку запроса и выполняет поиск публикаций.
// active, если задан, оставляет только открытые или только закрытые публикации.
func (uc *PostingUseCase) Search(ctx context.Context, rawQuery string, active *bool) (_ []*domain.Posting, err error) {
	ctx, span := telemetry.StartSpan(ctx, "posting.search")
	defer func() { telemetry.EndSpan(span, err) }()

	filter := domain.ParseSearchQuery(rawQuery)
	filter.Active = active
	return uc.postingRepo.Search(ctx, filter)
}
