package store

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/merev/scoreboard-api/internal/database"
)

// exerciseStore runs the contract every Store must satisfy.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load(missing) err = %v, want ErrNotFound", err)
	}

	if err := s.Save(ctx, KeyTruco, []byte(`{"scoreUs":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(ctx, KeyTruco, []byte(`{"scoreUs":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	var got struct {
		ScoreUs int `json:"scoreUs"`
	}
	if !LoadJSON(ctx, s, KeyTruco, &got) || got.ScoreUs != 2 {
		t.Fatalf("LoadJSON = %+v", got)
	}

	if err := s.Delete(ctx, KeyTruco); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if LoadJSON(ctx, s, KeyTruco, &got) {
		t.Fatalf("deleted key still loads")
	}
	if err := s.Delete(ctx, KeyTruco); err != nil {
		t.Fatalf("deleting an absent key should not fail: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client, "scoreboard:")
	exerciseStore(t, s)

	if err := s.Save(context.Background(), KeyCacheta, []byte(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("scoreboard:" + KeyCacheta) {
		t.Errorf("expected key to carry prefix")
	}
	if ttl := mr.TTL("scoreboard:" + KeyCacheta); ttl != 0 {
		t.Errorf("snapshots must not expire, ttl = %v", ttl)
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := database.NewPool(dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	exerciseStore(t, NewPostgresStore(db))
}

func TestLoadJSONCorruptSnapshot(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Save(context.Background(), KeyFodinha, []byte(`{not json`))

	var v map[string]any
	if LoadJSON(context.Background(), s, KeyFodinha, &v) {
		t.Errorf("corrupt snapshot should be treated as absent")
	}
}

func TestClear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, k := range Keys {
		_ = s.Save(ctx, k, []byte(`{}`))
	}
	_ = s.Save(ctx, "other", []byte(`{}`))

	Clear(ctx, s)

	for _, k := range Keys {
		if _, err := s.Load(ctx, k); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s survived Clear", k)
		}
	}
	if _, err := s.Load(ctx, "other"); err != nil {
		t.Errorf("unrelated key removed: %v", err)
	}
}

type failingStore struct {
	*MemoryStore
	mu    sync.Mutex
	calls int
}

func (f *failingStore) Save(context.Context, string, []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("disk full")
}

func TestWriterCoalescesAndFlushes(t *testing.T) {
	s := NewMemoryStore()
	w := NewWriter(s, time.Second)

	for i := 0; i < 50; i++ {
		w.Save(KeyCacheta, map[string]int{"round": i})
	}
	w.Save(KeyTruco, map[string]int{"scoreUs": 3})
	w.Close()

	var got map[string]int
	if !LoadJSON(context.Background(), s, KeyCacheta, &got) || got["round"] != 49 {
		t.Errorf("latest cacheta snapshot = %v", got)
	}
	if !LoadJSON(context.Background(), s, KeyTruco, &got) || got["scoreUs"] != 3 {
		t.Errorf("truco snapshot = %v", got)
	}
}

func TestWriterDeleteSupersedesSave(t *testing.T) {
	s := NewMemoryStore()
	_ = s.Save(context.Background(), KeyFodinha, []byte(`{}`))
	w := NewWriter(s, time.Second)

	w.Save(KeyFodinha, map[string]int{"cardsInRound": 3})
	w.Delete(KeyFodinha)
	w.Flush()
	w.Close()

	if _, err := s.Load(context.Background(), KeyFodinha); !errors.Is(err, ErrNotFound) {
		t.Errorf("key should be deleted, err = %v", err)
	}
}

func TestWriterSwallowsFailures(t *testing.T) {
	s := &failingStore{MemoryStore: NewMemoryStore()}
	w := NewWriter(s, time.Second)

	w.Save(KeyTruco, map[string]int{"scoreUs": 1})
	w.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls != 1 {
		t.Errorf("save attempts = %d, want 1", s.calls)
	}
}

func TestWriterDropsAfterClose(t *testing.T) {
	s := NewMemoryStore()
	w := NewWriter(s, time.Second)
	w.Close()
	w.Close()

	w.Save(KeyTruco, map[string]int{})
	w.Flush()

	if _, err := s.Load(context.Background(), KeyTruco); !errors.Is(err, ErrNotFound) {
		t.Errorf("write after close should be dropped")
	}
}
