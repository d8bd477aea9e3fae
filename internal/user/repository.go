package user

import (
	"errors"
	"strings"

	"github.com/deaduchiha/api-nikode/pkg/memstore"
)

// 区分两种唯一性冲突，处理器要据此返回不同的提示信息。
// 管理员保护是删除操作的运营性约束：admin用户永远不能被删除。
var (
	ErrEmailTaken     = errors.New("user: email already exists")
	ErrUsernameTaken  = errors.New("user: username already exists")
	ErrAdminProtected = errors.New("user: cannot delete admin users")
)

// Repository 是用户目录的内存仓库。
type Repository struct {
	store *memstore.Store[User]
}

// NewRepository 用种子数据创建仓库。
func NewRepository() *Repository {
	return &Repository{store: memstore.New(Seed())}
}

// All 返回全部用户的按序拷贝。
func (r *Repository) All() []User {
	return r.store.Snapshot()
}

// Get 按ID查找用户。
func (r *Repository) Get(id string) (User, bool) {
	return r.store.Get(id)
}

// Exists 报告指定ID的用户是否存在。
func (r *Repository) Exists(id string) bool {
	_, ok := r.store.Get(id)
	return ok
}

// Count 返回当前用户数。
func (r *Repository) Count() int {
	return r.store.Count()
}

// Insert 追加一个新用户。
// 检查顺序与原始行为一致：先邮箱，后用户名，均不区分大小写。
func (r *Repository) Insert(u User) error {
	return r.store.Insert(u, func(items []User) error {
		for _, existing := range items {
			if strings.EqualFold(existing.Email, u.Email) {
				return ErrEmailTaken
			}
		}
		for _, existing := range items {
			if strings.EqualFold(existing.Username, u.Username) {
				return ErrUsernameTaken
			}
		}
		return nil
	})
}

// Update 原地更新目标用户，只对被修改的字段重查唯一性。
func (r *Repository) Update(id string, newEmail, newUsername string, apply func(User) User) (User, error) {
	check := func(items []User) error {
		if newEmail != "" {
			for _, existing := range items {
				if existing.ID != id && strings.EqualFold(existing.Email, newEmail) {
					return ErrEmailTaken
				}
			}
		}
		if newUsername != "" {
			for _, existing := range items {
				if existing.ID != id && strings.EqualFold(existing.Username, newUsername) {
					return ErrUsernameTaken
				}
			}
		}
		return nil
	}
	return r.store.Update(id, check, apply)
}

// Delete 移除并返回目标用户；目标是admin时拒绝。
func (r *Repository) Delete(id string) (User, error) {
	return r.store.Delete(id, func(target User) error {
		if target.Role == "admin" {
			return ErrAdminProtected
		}
		return nil
	})
}
