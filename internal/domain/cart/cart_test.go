package cart

import (
	"testing"
)

func snapshot(bookID uint, price int64) CartItem {
	return CartItem{
		BookID: bookID,
		Title:  "测试图书",
		Author: "测试作者",
		Price:  price,
	}
}

// TestAddItem_MergesSameBook 同一图书多次加入应合并为一行
func TestAddItem_MergesSameBook(t *testing.T) {
	c := New()
	c.AddItem(snapshot(1, 4550), 2)
	c.AddItem(snapshot(1, 4550), 3)

	if len(c.Items) != 1 {
		t.Fatalf("行数 = %d; want 1", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Errorf("Quantity = %d; want 5", c.Items[0].Quantity)
	}
	if got := c.GetTotalPrice(); got != 22750 {
		t.Errorf("GetTotalPrice() = %d; want 22750", got)
	}
}

// TestAddItem_DefaultQuantity 数量<=0时按1件处理
func TestAddItem_DefaultQuantity(t *testing.T) {
	c := New()
	c.AddItem(snapshot(1, 1000), 0)

	if got := c.GetTotalQuantity(); got != 1 {
		t.Errorf("GetTotalQuantity() = %d; want 1", got)
	}
}

// TestUpdateQuantity_ZeroRemovesLine 数量改为0等价于删除整行
func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(snapshot(1, 4550), 2)
	c.AddItem(snapshot(2, 1200), 1)

	c.UpdateQuantity(1, 0)

	if len(c.Items) != 1 {
		t.Fatalf("行数 = %d; want 1", len(c.Items))
	}
	if c.Items[0].BookID != 2 {
		t.Errorf("剩余行BookID = %d; want 2", c.Items[0].BookID)
	}
}

// TestUpdateQuantity_SetsQuantity 正数数量直接覆盖
func TestUpdateQuantity_SetsQuantity(t *testing.T) {
	c := New()
	c.AddItem(snapshot(1, 4550), 2)

	c.UpdateQuantity(1, 7)

	if c.Items[0].Quantity != 7 {
		t.Errorf("Quantity = %d; want 7", c.Items[0].Quantity)
	}
	if got := c.GetTotalPrice(); got != 4550*7 {
		t.Errorf("GetTotalPrice() = %d; want %d", got, int64(4550*7))
	}
}

// TestRemoveItem 移除指定图书,其他行保留
func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem(snapshot(1, 4550), 2)
	c.AddItem(snapshot(2, 1200), 1)
	c.AddItem(snapshot(3, 800), 4)

	c.RemoveItem(2)

	if len(c.Items) != 2 {
		t.Fatalf("行数 = %d; want 2", len(c.Items))
	}
	for _, item := range c.Items {
		if item.BookID == 2 {
			t.Error("BookID=2的行应已被移除")
		}
	}
}

// TestClear 清空后总额与总件数归零
func TestClear(t *testing.T) {
	c := New()
	c.AddItem(snapshot(1, 4550), 2)
	c.AddItem(snapshot(2, 1200), 3)

	c.Clear()

	if !c.IsEmpty() {
		t.Error("Clear()后购物车应为空")
	}
	if got := c.GetTotalPrice(); got != 0 {
		t.Errorf("GetTotalPrice() = %d; want 0", got)
	}
	if got := c.GetTotalQuantity(); got != 0 {
		t.Errorf("GetTotalQuantity() = %d; want 0", got)
	}
}
