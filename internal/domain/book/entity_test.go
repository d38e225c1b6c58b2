package book

import (
	"testing"
)

// TestDecrStock 库存扣减规则
func TestDecrStock(t *testing.T) {
	t.Run("正常扣减", func(t *testing.T) {
		b := NewBook("《Go语言实战》", "威廉", "", 4550, "", 10, 1)
		if err := b.DecrStock(3); err != nil {
			t.Fatalf("DecrStock(3) error = %v", err)
		}
		if b.Stock != 7 {
			t.Errorf("Stock = %d; want 7", b.Stock)
		}
	})

	t.Run("扣到零允许", func(t *testing.T) {
		b := NewBook("《Go语言实战》", "威廉", "", 4550, "", 2, 1)
		if err := b.DecrStock(2); err != nil {
			t.Fatalf("DecrStock(2) error = %v", err)
		}
		if b.Stock != 0 {
			t.Errorf("Stock = %d; want 0", b.Stock)
		}
	})

	t.Run("超出库存拒绝且库存不变", func(t *testing.T) {
		b := NewBook("《Go语言实战》", "威廉", "", 4550, "", 2, 1)
		if err := b.DecrStock(3); err == nil {
			t.Fatal("DecrStock(3) 应返回库存不足错误")
		}
		if b.Stock != 2 {
			t.Errorf("Stock = %d; want 2", b.Stock)
		}
	})

	t.Run("非正数量拒绝", func(t *testing.T) {
		b := NewBook("《Go语言实战》", "威廉", "", 4550, "", 2, 1)
		if err := b.DecrStock(0); err != ErrInvalidQuantity {
			t.Errorf("DecrStock(0) error = %v; want ErrInvalidQuantity", err)
		}
	})
}
