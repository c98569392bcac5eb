package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestLRUGetSet(t *testing.T) {
	c := New[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache should miss")
	}

	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}

	// "b" is now the least recently used entry.
	c.Set("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) should miss after eviction")
	}
	for key, want := range map[string]int{"a": 1, "c": 3} {
		if v, ok := c.Get(key); !ok || v != want {
			t.Errorf("Get(%s) = %d, %v, want %d, true", key, v, ok, want)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRUSetExisting(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10)
	c.Set("c", 3)

	if v, ok := c.Get("a"); !ok || v != 10 {
		t.Errorf("Get(a) = %d, %v, want 10, true", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("updating a should have made b the eviction candidate")
	}
}

func TestLRUGetOrCreate(t *testing.T) {
	c := New[int, string](4)
	calls := 0
	create := func() string {
		calls++
		return "value"
	}

	for range 3 {
		if got := c.GetOrCreate(7, create); got != "value" {
			t.Errorf("GetOrCreate() = %q, want value", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Len != 1 || s.Capacity != 4 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestLRUClear(t *testing.T) {
	c := New[int, int](0)
	if c.Stats().Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d, want %d", c.Stats().Capacity, DefaultCapacity)
	}
	for i := range 10 {
		c.Set(i, i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set(1, 1)
	if v, ok := c.Get(1); !ok || v != 1 {
		t.Errorf("Get(1) after Clear = %d, %v", v, ok)
	}
}

func TestLRUEvictionCount(t *testing.T) {
	c := New[int, int](8)
	for i := range 20 {
		c.Set(i, i)
	}
	if s := c.Stats(); s.Len != 8 || s.Evictions != 12 {
		t.Errorf("Stats() = %+v, want Len 8, Evictions 12", s)
	}
	for i := 12; i < 20; i++ {
		if _, ok := c.Get(i); !ok {
			t.Errorf("Get(%d) missed, want the 8 newest entries kept", i)
		}
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := New[string, int](64)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				key := fmt.Sprintf("k%d", (g*31+i)%100)
				c.GetOrCreate(key, func() int { return i })
			}
		}()
	}
	wg.Wait()

	if c.Len() > 64 {
		t.Errorf("Len() = %d, want at most 64", c.Len())
	}
}
