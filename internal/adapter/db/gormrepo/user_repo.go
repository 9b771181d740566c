package gormrepo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"users-api/internal/domain/user"
	"users-api/pkg/logger"
)

// Both statements are issued verbatim. gorm rewrites the ? placeholders to
// the dialect's bind syntax and passes the values as driver parameters.
const (
	listUsersSQL  = "SELECT id, name, email FROM users"
	insertUserSQL = "INSERT INTO users (name, email) VALUES (?, ?)"
)

// UserRepo implements the user Repository on any gorm dialector.
type UserRepo struct {
	db  *gorm.DB    // Shared connection pool
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepo creates a new instance of UserRepo.
func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// The service does not migrate it; tests use it to create the table.
type UserSchema struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null"`
	Email string `gorm:"not null"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// Create inserts a new user. The driver error is returned unwrapped so its
// text reaches the caller unchanged.
func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	if u == nil {
		return errors.New("user cannot be nil")
	}

	res := r.db.WithContext(ctx).Exec(insertUserSQL, u.Name, u.Email)
	if res.Error != nil {
		logger.WithContext(ctx, r.log).Error("failed to insert user", zap.Error(res.Error))
		return res.Error
	}

	logger.WithContext(ctx, r.log).Debug("user inserted", zap.Int64("rows", res.RowsAffected))
	return nil
}

// List returns every row of the users table in database order.
func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Raw(listUsersSQL).Scan(&models).Error; err != nil {
		return nil, err
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = user.User{
			ID:    model.ID,
			Name:  model.Name,
			Email: model.Email,
		}
	}

	return users, nil
}
