package character

import (
	"strings"

	"github.com/deaduchiha/api-nikode/pkg/memstore"
)

// Repository 是角色目录的内存仓库。
// 名字唯一性（不区分大小写）在存储的写锁内检查，
// 两个并发创建不可能同时通过检查。
type Repository struct {
	store *memstore.Store[Character]
}

// NewRepository 用种子数据创建仓库。
func NewRepository() *Repository {
	return &Repository{store: memstore.New(Seed())}
}

// All 返回全部角色的按序拷贝。
func (r *Repository) All() []Character {
	return r.store.Snapshot()
}

// Get 按ID查找角色。
func (r *Repository) Get(id string) (Character, bool) {
	return r.store.Get(id)
}

// Exists 报告指定ID的角色是否存在。
func (r *Repository) Exists(id string) bool {
	_, ok := r.store.Get(id)
	return ok
}

// Count 返回当前角色数。
func (r *Repository) Count() int {
	return r.store.Count()
}

// Insert 追加一个新角色；名字与现有角色冲突时返回memstore.ErrConflict。
func (r *Repository) Insert(ch Character) error {
	return r.store.Insert(ch, func(items []Character) error {
		for _, existing := range items {
			if strings.EqualFold(existing.Name, ch.Name) {
				return memstore.ErrConflict
			}
		}
		return nil
	})
}

// Update 原地更新目标角色。
// newName非空时会对所有其他角色重新检查名字唯一性。
func (r *Repository) Update(id string, newName string, apply func(Character) Character) (Character, error) {
	check := func(items []Character) error {
		if newName == "" {
			return nil
		}
		for _, existing := range items {
			if existing.ID != id && strings.EqualFold(existing.Name, newName) {
				return memstore.ErrConflict
			}
		}
		return nil
	}
	return r.store.Update(id, check, apply)
}

// Delete 移除并返回目标角色。
func (r *Repository) Delete(id string) (Character, error) {
	return r.store.Delete(id, nil)
}
