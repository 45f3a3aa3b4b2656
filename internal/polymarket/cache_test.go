package polymarket

import (
	"errors"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(t.TempDir(), time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}

	if err := c.Set("k", []byte(`[{"side":"BUY"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(data) != `[{"side":"BUY"}]` {
		t.Errorf("data = %s", data)
	}
}

func TestCacheGetOrFetch(t *testing.T) {
	c := NewCache(t.TempDir(), time.Minute)

	calls := 0
	fetch := func() ([]byte, error) {
		calls++
		return []byte("payload"), nil
	}

	for i := 0; i < 3; i++ {
		data, err := c.GetOrFetch("k", fetch)
		if err != nil {
			t.Fatalf("GetOrFetch: %v", err)
		}
		if string(data) != "payload" {
			t.Errorf("data = %s", data)
		}
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want 1", calls)
	}
}

func TestCacheGetOrFetchPropagatesError(t *testing.T) {
	c := NewCache(t.TempDir(), time.Minute)

	wantErr := errors.New("upstream down")
	if _, err := c.GetOrFetch("k", func() ([]byte, error) { return nil, wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	// a failed fetch must not poison the cache
	if _, ok := c.Get("k"); ok {
		t.Error("expected miss after failed fetch")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(t.TempDir(), 1*time.Nanosecond)

	if err := c.Set("k", []byte("stale")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Error("expected expired entry to miss")
	}
}
