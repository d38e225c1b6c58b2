package user

import (
	"context"
)

// Repository 用户仓储接口
type Repository interface {
	// Create 创建用户(邮箱重复返回ErrEmailDuplicate)
	Create(ctx context.Context, u *User) error

	// FindByID 根据ID查找用户
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 根据邮箱查找用户
	FindByEmail(ctx context.Context, email string) (*User, error)
}
