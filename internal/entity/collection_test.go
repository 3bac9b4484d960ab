package entity

import (
	"slices"
	"testing"
)

func collect(c *Collection[int]) []int {
	var out []int
	c.Each(func(_ int, v int) { out = append(out, v) })
	return out
}

func TestPushBackAt(t *testing.T) {
	c := New[int](0)
	for i := range 10 {
		c.PushBack(i * 10)
	}
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", c.Len())
	}
	for i := range 10 {
		if got := c.At(i); got != i*10 {
			t.Errorf("At(%d) = %d, expected %d", i, got, i*10)
		}
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	c := New[int](1)
	c.PushBack(1)

	defer func() {
		if recover() == nil {
			t.Error("At(1) on a one-element collection should panic")
		}
	}()
	c.At(1)
}

func TestErasePreservesOrder(t *testing.T) {
	tests := []struct {
		name     string
		erase    int
		expected []int
	}{
		{"first", 0, []int{2, 3, 4}},
		{"middle", 2, []int{1, 2, 4}},
		{"last", 3, []int{1, 2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New[int](4)
			for _, v := range []int{1, 2, 3, 4} {
				c.PushBack(v)
			}
			c.Erase(tc.erase)
			if got := collect(c); !slices.Equal(got, tc.expected) {
				t.Errorf("after Erase(%d) = %v, expected %v", tc.erase, got, tc.expected)
			}
		})
	}
}

func TestEraseDropsReference(t *testing.T) {
	c := New[*int](2)
	a, b := 1, 2
	c.PushBack(&a)
	c.PushBack(&b)
	c.Erase(0)

	// The vacated tail slot must not keep the old pointer alive
	if tail := c.items[:2][1]; tail != nil {
		t.Error("Erase should zero the vacated slot")
	}
}

func TestSweepVisitsEachElementOnce(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		remove   func(int) bool
		expected []int
	}{
		{"none", []int{1, 2, 3}, func(int) bool { return false }, []int{1, 2, 3}},
		{"all", []int{1, 2, 3}, func(int) bool { return true }, nil},
		{"adjacent", []int{1, 2, 2, 3}, func(v int) bool { return v == 2 }, []int{1, 3}},
		{"evens", []int{1, 2, 3, 4, 5, 6}, func(v int) bool { return v%2 == 0 }, []int{1, 3, 5}},
		{"head and tail", []int{9, 1, 9}, func(v int) bool { return v == 9 }, []int{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New[int](len(tc.values))
			for _, v := range tc.values {
				c.PushBack(v)
			}

			var visited []int
			c.Sweep(func(v int) bool {
				visited = append(visited, v)
				return tc.remove(v)
			})

			if !slices.Equal(visited, tc.values) {
				t.Errorf("visited %v, expected every element once: %v", visited, tc.values)
			}
			if got := collect(c); !slices.Equal(got, tc.expected) {
				t.Errorf("survivors = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSweepSkipsAppended(t *testing.T) {
	c := New[int](2)
	c.PushBack(1)
	c.PushBack(2)

	visits := 0
	c.Sweep(func(v int) bool {
		visits++
		c.PushBack(v + 100)
		return v == 1
	})

	if visits != 2 {
		t.Errorf("Sweep visited %d elements, expected 2", visits)
	}
	if got := collect(c); !slices.Equal(got, []int{2, 101, 102}) {
		t.Errorf("after Sweep = %v, expected [2 101 102]", got)
	}
}

func TestClear(t *testing.T) {
	c := New[int](3)
	c.PushBack(1)
	c.PushBack(2)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", c.Len())
	}
}
