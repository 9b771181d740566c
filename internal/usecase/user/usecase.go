package user

import (
	"context"

	"go.uber.org/zap"

	domain "users-api/internal/domain/user"
	"users-api/pkg/logger"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	Create(ctx context.Context, u *domain.User) error // Insert a new user row
	List(ctx context.Context) ([]domain.User, error)  // Read every user row
}

// Usecase implements the user operations on top of a Repository.
type Usecase struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new instance of Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log}
}

// CreateUser inserts a user and reports the outcome as a Result.
// A repository error is never returned to the caller; its text is carried
// in the Result message instead.
func (uc *Usecase) CreateUser(ctx context.Context, in CreateUserRequest) Result {
	log := logger.WithContext(ctx, uc.log)
	log.Debug("creating user")

	if err := uc.repo.Create(ctx, &domain.User{Name: in.Name, Email: in.Email}); err != nil {
		log.Error("failed to create user", zap.Error(err))
		return Result{
			Success: false,
			Message: MsgCreateFailedPrefix + err.Error(),
		}
	}

	return Result{Success: true, Message: MsgUserCreated}
}

// ListUsers returns every user row in database order.
//
// On a repository error the failure is logged and an empty, degraded
// response is returned. The list operation has no error path.
func (uc *Usecase) ListUsers(ctx context.Context) *ListUsersResponse {
	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		logger.WithContext(ctx, uc.log).Error("error fetching users", zap.Error(err))
		return &ListUsersResponse{Users: []User{}, Degraded: true}
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:    du.ID,
			Name:  du.Name,
			Email: du.Email,
		}
	}

	return &ListUsersResponse{Users: users}
}
