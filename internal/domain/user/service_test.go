package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存用户仓储
type fakeRepo struct {
	users  map[uint]*User
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[uint]*User), nextID: 1}
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, ErrUserNotFound
}

func (r *fakeRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

// TestRegisterAndLogin 注册登录往返:密码加密存储,明文可验证
func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, "三", "张", "zhangsan@example.com", "password123", "13800000000", "北京市")
	require.NoError(t, err)

	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleUser, u.Role, "新用户角色应为User")
	assert.NotEqual(t, "password123", u.Password, "不应存明文密码")

	t.Run("正确密码登录", func(t *testing.T) {
		got, err := svc.Login(ctx, "zhangsan@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("错误密码登录", func(t *testing.T) {
		_, err := svc.Login(ctx, "zhangsan@example.com", "wrongpass123")
		assert.Error(t, err)
	})

	t.Run("不存在的邮箱", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "password123")
		assert.Error(t, err)
	})
}

// TestRegister_Validation 注册参数校验
func TestRegister_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	cases := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
	}{
		{"姓名为空", "", "张", "a@example.com", "password123"},
		{"邮箱格式错误", "三", "张", "not-an-email", "password123"},
		{"密码过短", "三", "张", "a@example.com", "abc1"},
		{"密码无数字", "三", "张", "a@example.com", "passwordonly"},
		{"密码无字母", "三", "张", "a@example.com", "12345678"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.firstName, tc.lastName, tc.email, tc.password, "", "")
			assert.Error(t, err)
		})
	}
}

// TestEnsureAdmin 管理员初始化幂等
func TestEnsureAdmin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "admin12345"))

	admin, err := repo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, admin.Role)

	t.Run("重复调用不报错不重建", func(t *testing.T) {
		require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "otherpass123"))

		got, err := svc.Login(ctx, "admin@example.com", "admin12345")
		require.NoError(t, err, "原密码应仍然有效")
		assert.Equal(t, admin.ID, got.ID)
	})
}

// TestRegister_EmailDuplicate 邮箱重复注册
func TestRegister_EmailDuplicate(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "三", "张", "dup@example.com", "password123", "", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "四", "李", "dup@example.com", "password456", "", "")
	assert.ErrorIs(t, err, ErrEmailDuplicate)
}
