package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（生产环境应使用版本化迁移脚本）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 外键只在OrderItem→Order上建级联约束:订单删除是系统里唯一的物理删除
// 图书/分类/用户都是软删除,引用列只建普通索引,完整性由应用层校验保证
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&BookModel{},
		&OrderModel{},
		&OrderItemModel{},
		&FavoriteModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. infrastructure层的数据模型，包含GORM tag；领域实体不依赖GORM
// 2. Password存bcrypt哈希，不存明文
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	FirstName string    `gorm:"size:50;not null;comment:名"`
	LastName  string    `gorm:"size:50;not null;comment:姓"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt哈希）"`
	Phone     string    `gorm:"size:20;comment:电话"`
	Address   string    `gorm:"size:500;comment:地址"`
	Role      string    `gorm:"size:10;not null;default:User;comment:角色(User/Admin)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
// Name有唯一索引(utf8mb4默认排序规则不区分大小写,与重名校验口径一致)
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	Description string    `gorm:"type:text;comment:分类描述"`
	ImageURL    string    `gorm:"size:500;comment:分类图片URL"`
	IsActive    bool      `gorm:"index;not null;default:true;comment:启用标记(软删除)"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 软删除用IsActive标记而非DeletedAt:按ID直查需要能返回已下架图书
// 3. CategoryID只存外键,分类删除是软删除,不会出现悬挂引用
type BookModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string    `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Description string    `gorm:"type:text;comment:图书描述"`
	Price       int64     `gorm:"not null;comment:价格(分)"`
	ImageURL    string    `gorm:"size:500;comment:封面图片URL"`
	Stock       int       `gorm:"not null;default:0;comment:库存数量"`
	IsActive    bool      `gorm:"index;not null;default:true;comment:上架标记(软删除)"`
	CategoryID  uint      `gorm:"index;not null;comment:分类ID"`
	CreatedAt   time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// OrderModel GORM订单模型
// 与OrderItemModel是一对多关系,明细随订单级联删除
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	UserID          uint             `gorm:"index;not null;comment:买家用户ID"`
	Total           int64            `gorm:"not null;comment:订单总金额(分)"`
	Status          string           `gorm:"index;size:20;not null;default:Pending;comment:订单状态"`
	ShippingAddress string           `gorm:"size:500;comment:收货地址"`
	OrderDate       time.Time        `gorm:"index;comment:下单时间"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	UpdatedAt       time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// UnitPrice/TotalPrice是下单时的价格快照,创建后不再修改
type OrderItemModel struct {
	ID         uint  `gorm:"primaryKey"`
	OrderID    uint  `gorm:"index;not null;comment:订单ID"`
	BookID     uint  `gorm:"index;not null;comment:图书ID"`
	Quantity   int   `gorm:"not null;comment:购买数量"`
	UnitPrice  int64 `gorm:"not null;comment:下单时单价(分)"`
	TotalPrice int64 `gorm:"not null;comment:行小计(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// FavoriteModel GORM收藏模型
// (UserID, BookID)复合唯一索引防止重复收藏
type FavoriteModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:用户ID"`
	BookID    uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:图书ID"`
	CreatedAt time.Time `gorm:"comment:收藏时间"`
}

// TableName 指定表名
func (FavoriteModel) TableName() string {
	return "favorites"
}
