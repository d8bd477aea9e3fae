package comment

import (
	"errors"

	"github.com/deaduchiha/api-nikode/pkg/memstore"
)

// ErrDuplicatePair 表示同一个用户对同一个角色已经评论过。
var ErrDuplicatePair = errors.New("comment: user has already commented on this character")

// Repository 是评论的内存仓库。
type Repository struct {
	store *memstore.Store[Comment]
}

// NewRepository 用种子数据创建仓库。
func NewRepository() *Repository {
	return &Repository{store: memstore.New(Seed())}
}

// All 返回全部评论的按序拷贝。
func (r *Repository) All() []Comment {
	return r.store.Snapshot()
}

// Count 返回当前评论数。
func (r *Repository) Count() int {
	return r.store.Count()
}

// Insert 追加一条新评论；(characterId, userId)组合重复时拒绝。
func (r *Repository) Insert(cm Comment) error {
	return r.store.Insert(cm, func(items []Comment) error {
		for _, existing := range items {
			if existing.CharacterID == cm.CharacterID && existing.UserID == cm.UserID {
				return ErrDuplicatePair
			}
		}
		return nil
	})
}
