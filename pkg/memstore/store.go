package memstore

import (
	"errors"
	"sync"
)

// --- 进程内存储 ---
// 每个实体仓库持有一个Store实例：一段有序的内存记录序列，
// 由读写锁守护。唯一性检查和写入在同一临界区内完成，
// 避免两个并发创建同时通过检查后各自追加重复记录。

var (
	// ErrNotFound 表示目标记录不存在。
	ErrNotFound = errors.New("memstore: record not found")
	// ErrConflict 表示写入违反了唯一性约束。
	ErrConflict = errors.New("memstore: record conflict")
)

// Record 是可以被Store管理的记录约束。
type Record interface {
	RecordID() string
}

// Store 是一个按插入顺序保存记录的并发安全容器。
type Store[T Record] struct {
	mu    sync.RWMutex
	items []T
}

// New 用种子数据创建一个新的Store。种子会被复制，调用方保留的切片不会被共享。
func New[T Record](seed []T) *Store[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Store[T]{items: items}
}

// Count 返回当前记录数。
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Snapshot 返回所有记录的一份按序拷贝，供查询管线使用。
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}

// Get 按ID查找记录。
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert 在检查通过后追加一条记录。
// check在写锁内对当前全部记录求值，返回非nil错误时写入被拒绝。
func (s *Store[T]) Insert(item T, check func(items []T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if check != nil {
		if err := check(s.items); err != nil {
			return err
		}
	}
	s.items = append(s.items, item)
	return nil
}

// Update 原地替换目标记录。
// check在写锁内对当前全部记录求值（由调用方负责跳过目标自身）；
// apply把旧记录映射为新记录。
func (s *Store[T]) Update(id string, check func(items []T) error, apply func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	index := s.indexOf(id)
	if index == -1 {
		return zero, ErrNotFound
	}
	if check != nil {
		if err := check(s.items); err != nil {
			return zero, err
		}
	}
	updated := apply(s.items[index])
	s.items[index] = updated
	return updated, nil
}

// Delete 移除并返回目标记录。
// guard在写锁内对目标记录求值，返回非nil错误时删除被拒绝。
func (s *Store[T]) Delete(id string, guard func(T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	index := s.indexOf(id)
	if index == -1 {
		return zero, ErrNotFound
	}
	target := s.items[index]
	if guard != nil {
		if err := guard(target); err != nil {
			return zero, err
		}
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return target, nil
}

// indexOf 必须在持有锁的情况下调用。
func (s *Store[T]) indexOf(id string) int {
	for i, item := range s.items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}
