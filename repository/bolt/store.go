package bolt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/taskquest/backend/domain"
	"github.com/taskquest/backend/repository"
)

// Record keys. They mirror the storage keys the web client used, so an
// exported snapshot stays recognizable.
const (
	userKey  = "taskManagerUser"
	tasksKey = "taskManagerTasks"
)

// Store wraps BoltDB to persist the two aggregate snapshots under a single
// bucket.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

var _ repository.SnapshotStore = (*Store)(nil)

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "snapshots"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

func (s *Store) LoadUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.load(ctx, userKey, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) SaveUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.NewError(domain.ErrCodeValidation, "user snapshot cannot be nil")
	}
	return s.save(ctx, userKey, user)
}

func (s *Store) LoadTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := s.load(ctx, tasksKey, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) SaveTasks(ctx context.Context, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return s.save(ctx, tasksKey, tasks)
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Stats exposes Bolt statistics for startup and monitoring logs.
func (s *Store) Stats() bolt.Stats {
	if s == nil || s.db == nil {
		return bolt.Stats{}
	}
	return s.db.Stats()
}

func (s *Store) load(ctx context.Context, key string, dest interface{}) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(s.bucket).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return err
	}

	if raw == nil {
		return domain.ErrRecordNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "corrupt snapshot record", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, value interface{}) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), payload)
	})
}
