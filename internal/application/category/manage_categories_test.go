package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/category"
)

// fakeCategoryRepo 内存分类仓储(重名检查与仓储约定一致:不区分大小写)
type fakeCategoryRepo struct {
	categories map[uint]*category.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint]*category.Category), nextID: 1}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, c *category.Category) error {
	c.ID = r.nextID
	r.nextID++
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*category.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByIDs(ctx context.Context, ids []uint) ([]*category.Category, error) {
	var out []*category.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, c *category.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	clone := *c
	r.categories[c.ID] = &clone
	return nil
}

func (r *fakeCategoryRepo) Deactivate(ctx context.Context, id uint) error {
	c, ok := r.categories[id]
	if !ok {
		return category.ErrCategoryNotFound
	}
	c.IsActive = false
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*category.Category, error) {
	var out []*category.Category
	for _, c := range r.categories {
		if c.IsActive {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

// TestCreateCategory 分类创建与重名检查
func TestCreateCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCreateCategoryUseCase(repo)
	ctx := context.Background()

	got, err := uc.Execute(ctx, CreateCategoryRequest{Name: "计算机", Description: "编程类"})
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.True(t, got.IsActive)

	t.Run("名称为空", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryRequest{Name: ""})
		assert.ErrorIs(t, err, category.ErrInvalidName)
	})

	t.Run("重名拒绝", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryRequest{Name: "计算机"})
		assert.ErrorIs(t, err, category.ErrNameDuplicate)
	})

	t.Run("英文名重名不区分大小写", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryRequest{Name: "Science"})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, CreateCategoryRequest{Name: "SCIENCE"})
		assert.ErrorIs(t, err, category.ErrNameDuplicate)
	})

	t.Run("与已停用分类重名同样拒绝", func(t *testing.T) {
		created, err := uc.Execute(ctx, CreateCategoryRequest{Name: "历史"})
		require.NoError(t, err)
		require.NoError(t, repo.Deactivate(ctx, created.ID))

		_, err = uc.Execute(ctx, CreateCategoryRequest{Name: "历史"})
		assert.ErrorIs(t, err, category.ErrNameDuplicate)
	})

	t.Run("可指定创建即停用", func(t *testing.T) {
		inactive := false
		created, err := uc.Execute(ctx, CreateCategoryRequest{Name: "待上线", IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, created.IsActive)
	})
}

// TestUpdateCategory 分类更新
func TestUpdateCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	createUC := NewCreateCategoryUseCase(repo)
	updateUC := NewUpdateCategoryUseCase(repo)
	ctx := context.Background()

	first, err := createUC.Execute(ctx, CreateCategoryRequest{Name: "计算机"})
	require.NoError(t, err)
	second, err := createUC.Execute(ctx, CreateCategoryRequest{Name: "文学"})
	require.NoError(t, err)

	t.Run("改名为他人名称拒绝", func(t *testing.T) {
		err := updateUC.Execute(ctx, UpdateCategoryRequest{ID: second.ID, Name: "计算机"})
		assert.ErrorIs(t, err, category.ErrNameDuplicate)
	})

	t.Run("改回自己的名称允许", func(t *testing.T) {
		err := updateUC.Execute(ctx, UpdateCategoryRequest{ID: first.ID, Name: "计算机", Description: "新描述"})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "新描述", got.Description)
	})

	t.Run("不存在的分类返回404错误", func(t *testing.T) {
		err := updateUC.Execute(ctx, UpdateCategoryRequest{ID: 999, Name: "新名称"})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

// TestDeleteCategory 分类软删除后列表不可见
func TestDeleteCategory(t *testing.T) {
	repo := newFakeCategoryRepo()
	createUC := NewCreateCategoryUseCase(repo)
	deleteUC := NewDeleteCategoryUseCase(repo)
	listUC := NewListCategoriesUseCase(repo)
	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateCategoryRequest{Name: "计算机"})
	require.NoError(t, err)

	require.NoError(t, deleteUC.Execute(ctx, created.ID))

	list, err := listUC.Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive, "软删除保留行")
}
