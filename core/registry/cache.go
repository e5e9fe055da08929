package registry

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"gameframe/core/database"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

var (
	// ErrRegistryUnreadable means a registry table or index column cannot be read.
	ErrRegistryUnreadable = errors.New("registry unreadable")

	// ErrPartialDelete means a delete batch matched fewer rows than requested.
	// The transaction is rolled back when it is returned.
	ErrPartialDelete = errors.New("registry delete matched fewer rows than requested")
)

// Index holds every row of one type, keyed by an integer column.
type Index[T Row] struct {
	// Field is the column the index is keyed by.
	Field string

	rows  []T
	byKey map[int][]int
}

func newIndex[T Row](field string, rows []T) *Index[T] {
	ix := &Index[T]{
		Field: field,
		rows:  rows,
		byKey: make(map[int][]int, len(rows)),
	}
	for i, row := range rows {
		if key, ok := row.IndexKey(field); ok {
			ix.byKey[key] = append(ix.byKey[key], i)
		}
	}
	return ix
}

// All yields every row in insertion order. The sequence can be ranged over
// any number of times.
func (ix *Index[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range ix.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Get returns the rows whose index column equals key, in insertion order.
func (ix *Index[T]) Get(key int) []T {
	positions := ix.byKey[key]
	out := make([]T, 0, len(positions))
	for _, pos := range positions {
		out = append(out, ix.rows[pos])
	}
	return out
}

// Len returns the number of rows.
func (ix *Index[T]) Len() int {
	return len(ix.rows)
}

// Cache holds the loaded registry indices of one command invocation.
type Cache struct {
	db     *gorm.DB
	logger *zap.Logger

	mu      sync.RWMutex
	indices map[string]any
	sf      singleflight.Group
}

// New creates a cache over the registry database.
func New(db *gorm.DB, logger *zap.Logger) *Cache {
	return &Cache{
		db:      db,
		logger:  logger,
		indices: make(map[string]any),
	}
}

// DB returns the underlying registry connection.
func (c *Cache) DB() *gorm.DB {
	return c.db
}

func indexName(table, field string) string {
	return table + "." + field
}

// Loaded reports whether the index of T keyed by field is in memory.
func Loaded[T Row](c *Cache, field string) bool {
	var zero T
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.indices[indexName(zero.TableName(), field)]
	return ok
}

// Load returns the index of T keyed by field, reading the table on first use.
func Load[T Row](ctx context.Context, c *Cache, field string) (*Index[T], error) {
	var zero T
	name := indexName(zero.TableName(), field)

	// Fast path: already loaded
	c.mu.RLock()
	cached, exists := c.indices[name]
	c.mu.RUnlock()
	if exists {
		return cached.(*Index[T]), nil
	}

	result, err, _ := c.sf.Do(name, func() (interface{}, error) {
		c.mu.RLock()
		cached, exists := c.indices[name]
		c.mu.RUnlock()
		if exists {
			return cached, nil
		}

		if err := verify(c.db, zero, field); err != nil {
			return nil, err
		}

		var rows []T
		if err := c.db.WithContext(ctx).Order(zero.PrimaryKey()).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("%w: loading %s: %v", ErrRegistryUnreadable, zero.TableName(), err)
		}

		ix := newIndex(field, rows)
		c.mu.Lock()
		c.indices[name] = ix
		c.mu.Unlock()

		c.logger.Debug("Loaded registry index",
			zap.String("index", name),
			zap.Int("rows", len(rows)),
		)
		return ix, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Index[T]), nil
}

// Unload drops the index of T keyed by field. Unloading an index that is not
// loaded is a no-op.
func Unload[T Row](c *Cache, field string) {
	var zero T
	c.mu.Lock()
	delete(c.indices, indexName(zero.TableName(), field))
	c.mu.Unlock()
}

// Delete removes the rows of T with the given internal ids in one transaction.
// Either every row is removed or none is. Loaded indices of T are dropped
// afterwards so the next Load observes the deletion.
func Delete[T Row](ctx context.Context, c *Cache, ids []int) error {
	var zero T
	ids = unique(ids)
	if len(ids) == 0 {
		return nil
	}

	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(zero.PrimaryKey()+" IN ?", ids).Delete(new(T))
		if res.Error != nil {
			return fmt.Errorf("failed to delete from %s: %w", zero.TableName(), res.Error)
		}
		if res.RowsAffected != int64(len(ids)) {
			return fmt.Errorf("%w: %s deleted %d of %d", ErrPartialDelete, zero.TableName(), res.RowsAffected, len(ids))
		}
		return nil
	})
	if err != nil {
		return err
	}

	prefix := zero.TableName() + "."
	c.mu.Lock()
	for name := range c.indices {
		if strings.HasPrefix(name, prefix) {
			delete(c.indices, name)
		}
	}
	c.mu.Unlock()

	c.logger.Info("Deleted registry rows",
		zap.String("table", zero.TableName()),
		zap.Int("count", len(ids)),
	)
	return nil
}

// Migrate creates or updates every registry table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// verify checks that the table of row exists with every column it reads.
func verify(db *gorm.DB, row Row, field string) error {
	required := append(row.Columns(), field)
	missing, err := database.MissingColumns(db, row.TableName(), required...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegistryUnreadable, err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s lacks columns %v", ErrRegistryUnreadable, row.TableName(), missing)
	}
	return nil
}

func unique(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
