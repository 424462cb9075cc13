package sparse

import "testing"

func TestMatrixAddAndValue(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	if M.Add(2, 3, 4711) {
		t.Errorf("first value must not conflict")
	}
	M.Add(0, 9, 1)
	M.Add(9, 0, 2)
	M.Add(2, 1, 3)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected 4711 at (2,3), have %d", v)
	}
	if v := M.Value(5, 5); v != M.NullValue() {
		t.Errorf("expected null-value at (5,5), have %d", v)
	}
	if M.ValueCount() != 4 {
		t.Errorf("expected 4 values, have %d", M.ValueCount())
	}
	var order [][2]int
	M.Each(func(i, j int, a, b int32) {
		order = append(order, [2]int{i, j})
	})
	expected := [][2]int{{0, 9}, {2, 1}, {2, 3}, {9, 0}}
	for k := range expected {
		if order[k] != expected[k] {
			t.Fatalf("entries out of order: %v", order)
		}
	}
}

func TestMatrixConflict(t *testing.T) {
	M := NewIntMatrix(3, 3, -1)
	M.Add(1, 1, 7)
	if M.Add(1, 1, 7) {
		t.Errorf("adding the same value twice is not a conflict")
	}
	if !M.Add(1, 1, 8) {
		t.Errorf("expected conflict for second value")
	}
	a, b := M.Values(1, 1)
	if a != 7 || b != 8 {
		t.Errorf("expected (7,8), have (%d,%d)", a, b)
	}
	if !M.Add(1, 1, 7) {
		t.Errorf("entry with two values stays in conflict")
	}
}

func TestMatrixRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for index out of range")
		}
	}()
	NewIntMatrix(2, 2, -1).Add(2, 0, 1)
}
