package editor

import "testing"

func TestCellSubscribeRunsImmediately(t *testing.T) {
	c := NewCell(42)
	var got int
	c.Subscribe(func(v int) { got = v })
	if got != 42 {
		t.Errorf("subscriber saw %d, want initial 42", got)
	}
}

func TestCellSetNotifiesInOrder(t *testing.T) {
	c := NewCell("")
	var order []string
	c.Subscribe(func(v string) { order = append(order, "a:"+v) })
	c.Subscribe(func(v string) { order = append(order, "b:"+v) })

	order = nil
	c.Set("x")

	if len(order) != 2 || order[0] != "a:x" || order[1] != "b:x" {
		t.Errorf("notification order = %v", order)
	}
	if c.Get() != "x" {
		t.Errorf("Get() = %q, want %q", c.Get(), "x")
	}
}
