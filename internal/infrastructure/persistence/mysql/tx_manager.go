package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法,fn返回error时自动ROLLBACK,返回nil时自动COMMIT
// 2. 事务DB通过context传递,仓储方法经getDB取用,天然参与同一事务
// 3. §4.1/§4.3的"读取-校验-多行写入"序列都必须包在一次Transaction调用里
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn内的所有仓储操作都在同一数据库事务中执行
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
