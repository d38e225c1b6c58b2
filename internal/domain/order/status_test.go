package order

import (
	"testing"
)

// TestParseStatus_Valid 五种合法状态都能解析
func TestParseStatus_Valid(t *testing.T) {
	for _, raw := range []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"} {
		s, err := ParseStatus(raw)
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v; want nil", raw, err)
		}
		if s.String() != raw {
			t.Errorf("ParseStatus(%q) = %q", raw, s)
		}
	}
}

// TestParseStatus_Invalid 非法状态返回错误
func TestParseStatus_Invalid(t *testing.T) {
	for _, raw := range []string{"", "pending", "Done", "SHIPPED", "Unknown"} {
		if _, err := ParseStatus(raw); err == nil {
			t.Errorf("ParseStatus(%q)应返回错误", raw)
		}
	}
}

// TestSetStatus_NoTransitionGraph 状态之间不限制流转方向
func TestSetStatus_NoTransitionGraph(t *testing.T) {
	o := NewOrder(1, "", []OrderItem{NewOrderItem(1, 1, 100)})

	// 终态之后仍可回跳
	for _, target := range []Status{StatusDelivered, StatusPending, StatusCancelled, StatusShipped} {
		if err := o.SetStatus(target); err != nil {
			t.Fatalf("SetStatus(%s) error = %v; want nil", target, err)
		}
		if o.Status != target {
			t.Fatalf("Status = %s; want %s", o.Status, target)
		}
	}

	if err := o.SetStatus(Status("Bogus")); err == nil {
		t.Error("SetStatus(Bogus)应返回错误")
	}
	if o.Status != StatusShipped {
		t.Errorf("非法状态不应改变存量状态, Status = %s", o.Status)
	}
}

// TestNewOrder_Totals 行小计与订单总额在创建时计算
func TestNewOrder_Totals(t *testing.T) {
	items := []OrderItem{
		NewOrderItem(1, 2, 4550),
		NewOrderItem(2, 3, 1200),
	}
	o := NewOrder(7, "测试地址", items)

	if o.Items[0].TotalPrice != 9100 {
		t.Errorf("Items[0].TotalPrice = %d; want 9100", o.Items[0].TotalPrice)
	}
	if o.Total != 9100+3600 {
		t.Errorf("Total = %d; want %d", o.Total, int64(9100+3600))
	}
	if o.Status != StatusPending {
		t.Errorf("初始Status = %s; want Pending", o.Status)
	}
}
