package user

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleUser  Role = "User"  // 普通用户
	RoleAdmin Role = "Admin" // 管理员
)

// IsValid 判断是否为合法角色
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User 用户实体(聚合根)
// 设计说明:
// 1. Password保存bcrypt哈希值,任何路径都不落明文
// 2. 领域实体不依赖GORM tag,持久化映射在infrastructure层完成
type User struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Password  string // bcrypt哈希值
	Phone     string
	Address   string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewUser(firstName, lastName, email, hashedPassword, phone, address string) *User {
	now := time.Now()
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashedPassword,
		Phone:     phone,
		Address:   address,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName 姓名拼接(用于订单投影展示)
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
