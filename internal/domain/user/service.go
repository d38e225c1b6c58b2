package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Service 用户领域服务
// 设计说明:
// 1. 密码加密、验证等不属于单个实体的业务逻辑放在Service
// 2. Service依赖Repository接口,不依赖具体实现
type Service interface {
	// Register 用户注册
	Register(ctx context.Context, firstName, lastName, email, password, phone, address string) (*User, error)

	// Login 用户登录
	Login(ctx context.Context, email, password string) (*User, error)

	// ValidatePassword 验证明文密码与哈希值是否匹配
	ValidatePassword(hashedPassword, plainPassword string) error

	// EnsureAdmin 确保管理员账号存在(幂等,已存在则跳过)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 业务规则:
// 1. 姓名不能为空,邮箱格式合法
// 2. 密码强度校验(8-20位,包含字母和数字)
// 3. 密码bcrypt加密存储,邮箱唯一性由数据库UNIQUE索引兜底
func (s *service) Register(ctx context.Context, firstName, lastName, email, password, phone, address string) (*User, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidName
	}

	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser(firstName, lastName, email, string(hashedPassword), phone, address)

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login 用户登录
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.ValidatePassword(u.Password, password); err != nil {
		return nil, err
	}

	return u, nil
}

// ValidatePassword 验证密码
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// EnsureAdmin 确保管理员账号存在
// 用于启动时按配置初始化管理员,邮箱已占用时不做任何修改
func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !apperrors.IsNotFound(err) {
		return err
	}

	if err := validatePasswordStrength(password); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return apperrors.Wrap(err, "密码加密失败")
	}

	u := NewUser("Admin", "System", email, string(hashedPassword), "", "")
	u.Role = RoleAdmin

	return s.repo.Create(ctx, u)
}

// isValidEmail 邮箱格式校验
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength 密码强度校验(8-20位,包含字母和数字)
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.New(apperrors.ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return apperrors.New(apperrors.ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")
	}

	return nil
}
