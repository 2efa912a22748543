package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillswap-service/internal/database"
	"skillswap-service/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func toDomainUser(u database.User) *domain.User {
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Alias:        u.Alias,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

// Create сохраняет пользователя и заполняет ID, активность и время создания.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	dbUser, err := r.queries.CreateUser(ctx, database.CreateUserParams{
		Username:     user.Username,
		Alias:        user.Alias,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
	})
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	*user = *toDomainUser(dbUser)
	return nil
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	dbUser, err := r.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// List возвращает всех пользователей по алфавиту.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	dbUsers, err := r.queries.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for _, u := range dbUsers {
		users = append(users, toDomainUser(u))
	}

	return users, nil
}

// UpdateActiveStatus обновляет статус активности пользователя.
func (r *UserRepository) UpdateActiveStatus(ctx context.Context, userID int64, isActive bool) (*domain.User, error) {
	dbUser, err := r.queries.UpdateUserActiveStatus(ctx, database.UpdateUserActiveStatusParams{
		ID:       userID,
		IsActive: isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return toDomainUser(dbUser), nil
}

// Delete удаляет пользователя. Участники соглашений защищены ограничением RESTRICT.
func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	affected, err := r.queries.DeleteUser(ctx, userID)
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			return domain.ErrUserHasAgreements
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
