package usecase

import (
	"context"
	"fmt"
	"strings"

	"skillswap-service/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserUseCase реализует бизнес-логику для работы с пользователями.
type UserUseCase struct {
	userRepo domain.UserRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// CreateUser регистрирует пользователя, сохраняя только bcrypt-хэш пароля.
func (uc *UserUseCase) CreateUser(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	if err := domain.ValidateNewUser(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(input.Username),
		Alias:        strings.TrimSpace(input.Alias),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(hash),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser возвращает пользователя по ID.
func (uc *UserUseCase) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUserID
	}
	return uc.userRepo.GetByID(ctx, userID)
}

// ListUsers возвращает всех пользователей.
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.List(ctx)
}

// SetUserActive устанавливает флаг активности пользователя.
func (uc *UserUseCase) SetUserActive(ctx context.Context, userID int64, isActive bool) (*domain.User, error) {
	// Проверяем, что пользователь существует
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.userRepo.UpdateActiveStatus(ctx, userID, isActive)
}

// DeleteUser удаляет пользователя, если он не участвует ни в одном соглашении.
func (uc *UserUseCase) DeleteUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return domain.ErrInvalidUserID
	}
	return uc.userRepo.Delete(ctx, userID)
}
