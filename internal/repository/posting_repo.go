package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
)

// PostingRepository реализует хранилище публикаций в PostgreSQL.
type PostingRepository struct {
	queries *database.Queries
}

// NewPostingRepository создает новый экземпляр PostingRepository.
func NewPostingRepository(queries *database.Queries) domain.PostingRepository {
	return &PostingRepository{
		queries: queries,
	}
}

// translatePostingWriteErr переводит нарушения ограничений в доменные ошибки.
func translatePostingWriteErr(err error, op string) error {
	if pgErr, ok := isForeignKeyViolation(err); ok {
		if strings.Contains(pgErr.ConstraintName, "author_id") {
			return domain.ErrUserNotFound
		}
		return domain.ErrSkillNotFound
	}
	if _, ok := isCheckViolation(err); ok {
		return domain.ErrInvalidPostingType
	}
	return fmt.Errorf("failed to %s posting: %w", op, err)
}

// Create сохраняет публикацию и заполняет служебные поля.
func (r *PostingRepository) Create(ctx context.Context, posting *domain.Posting) error {
	dbPosting, err := r.queries.CreatePosting(ctx, database.CreatePostingParams{
		Type:        string(posting.Type),
		Description: posting.Description,
		AuthorID:    posting.AuthorID,
		SkillID:     posting.SkillID,
	})
	if err != nil {
		return translatePostingWriteErr(err, "create")
	}

	posting.ID = dbPosting.ID
	posting.IsActive = dbPosting.IsActive
	posting.CreatedAt = dbPosting.CreatedAt
	posting.ModifiedAt = dbPosting.ModifiedAt
	return nil
}

// GetByID возвращает публикацию вместе с названием навыка.
func (r *PostingRepository) GetByID(ctx context.Context, postingID int64) (*domain.Posting, error) {
	row, err := r.queries.GetPostingByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostingNotFound
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}

	return &domain.Posting{
		ID:          row.ID,
		Type:        domain.PostingType(row.Type),
		Description: row.Description,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		ModifiedAt:  row.ModifiedAt,
		AuthorID:    row.AuthorID,
		SkillID:     row.SkillID,
		SkillName:   row.SkillName,
	}, nil
}

// Update перезаписывает тип, описание и навык публикации.
func (r *PostingRepository) Update(ctx context.Context, posting *domain.Posting) (*domain.Posting, error) {
	affected, err := r.queries.UpdatePosting(ctx, database.UpdatePostingParams{
		ID:          posting.ID,
		Type:        string(posting.Type),
		Description: posting.Description,
		SkillID:     posting.SkillID,
	})
	if err != nil {
		return nil, translatePostingWriteErr(err, "update")
	}
	if affected == 0 {
		return nil, domain.ErrPostingNotFound
	}

	return r.GetByID(ctx, posting.ID)
}

// SetActive открывает или закрывает публикацию.
func (r *PostingRepository) SetActive(ctx context.Context, postingID int64, isActive bool) (*domain.Posting, error) {
	affected, err := r.queries.SetPostingActive(ctx, database.SetPostingActiveParams{
		ID:       postingID,
		IsActive: isActive,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update posting status: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrPostingNotFound
	}

	return r.GetByID(ctx, postingID)
}

// Search выполняет один параметризованный запрос: все термины должны встретиться
// в названии навыка или описании (ILIKE), тип и активность фильтруются точным совпадением.
func (r *PostingRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Posting, error) {
	params := database.SearchPostingsParams{}
	if filter.Type != nil {
		params.Type = sql.NullString{String: string(*filter.Type), Valid: true}
	}
	if filter.Active != nil {
		params.Active = sql.NullBool{Bool: *filter.Active, Valid: true}
	}
	for _, term := range filter.Terms {
		params.Terms = append(params.Terms, domain.EscapeLikeTerm(term))
	}

	rows, err := r.queries.SearchPostings(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to search postings: %w", err)
	}

	postings := make([]*domain.Posting, 0, len(rows))
	for _, row := range rows {
		postings = append(postings, &domain.Posting{
			ID:          row.ID,
			Type:        domain.PostingType(row.Type),
			Description: row.Description,
			IsActive:    row.IsActive,
			CreatedAt:   row.CreatedAt,
			ModifiedAt:  row.ModifiedAt,
			AuthorID:    row.AuthorID,
			SkillID:     row.SkillID,
			SkillName:   row.SkillName,
		})
	}

	return postings, nil
}
