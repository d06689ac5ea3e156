// Package boltdb implements the todo record store on top of a single BoltDB
// file. Each record lives under its raw 16-byte identifier in one bucket;
// every mutating call runs in its own write transaction, and Bolt fsyncs on
// commit, so a successful return means the data is on disk.
package boltdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/fastygo/todoapp/domain"
	"github.com/fastygo/todoapp/repository"
)

var todosBucket = []byte("todos")

// TodoStore is a BoltDB-backed repository.TodoRepository.
type TodoStore struct {
	db *bolt.DB
}

var _ repository.TodoRepository = (*TodoStore)(nil)

// Open initializes the database file and ensures the todos bucket exists.
// Failure here is a bootstrap error; callers are expected to abort.
func Open(path string) (*TodoStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open todo database: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(todosBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create todos bucket: %w", err)
	}
	return &TodoStore{db: db}, nil
}

func (s *TodoStore) Insert(ctx context.Context, todo *domain.Todo) error {
	return s.put(todo)
}

// Update is the same operation as Insert: an overwrite of whatever is
// stored under the identifier.
func (s *TodoStore) Update(ctx context.Context, todo *domain.Todo) error {
	return s.put(todo)
}

func (s *TodoStore) put(todo *domain.Todo) error {
	value, err := encodeTodo(todo)
	if err != nil {
		return fmt.Errorf("failed to serialize todo: %w", err)
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(todosBucket).Put(todo.ID[:], value)
	}); err != nil {
		return fmt.Errorf("failed to write todo: %w", err)
	}
	return nil
}

func (s *TodoStore) Get(ctx context.Context, id uuid.UUID) (*domain.Todo, bool, error) {
	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(todosBucket).Get(id[:]); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, false, fmt.Errorf("failed to read todo: %w", err)
	}
	if raw == nil {
		return nil, false, nil
	}
	todo, err := decodeTodo(raw)
	if err != nil {
		return nil, false, fmt.Errorf("failed to deserialize todo: %w", err)
	}
	return todo, true, nil
}

// GetAll decodes every stored record and sorts newest first. The ordering
// is part of the contract, so it is an explicit sort rather than bucket
// iteration order (which is keyed by identifier bytes).
func (s *TodoStore) GetAll(ctx context.Context) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(todosBucket).ForEach(func(k, v []byte) error {
			todo, err := decodeTodo(v)
			if err != nil {
				return fmt.Errorf("failed to deserialize todo %x: %w", k, err)
			}
			todos = append(todos, *todo)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})
	return todos, nil
}

func (s *TodoStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var existed bool
	if err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(todosBucket)
		existed = b.Get(id[:]) != nil
		if !existed {
			return nil
		}
		return b.Delete(id[:])
	}); err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}
	return existed, nil
}

// Clear drops and recreates the bucket in a single committed transaction.
func (s *TodoStore) Clear(ctx context.Context) error {
	if err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(todosBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(todosBucket)
		return err
	}); err != nil {
		return fmt.Errorf("failed to clear todos: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *TodoStore) Count() (int, error) {
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(todosBucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the underlying database file.
func (s *TodoStore) Close() error {
	return s.db.Close()
}
