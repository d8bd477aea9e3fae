package user

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deaduchiha/api-nikode/pkg/query"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

var comparators = map[string]query.Comparator[User]{
	"username":  query.ByString(func(u User) string { return u.Username }),
	"email":     query.ByString(func(u User) string { return u.Email }),
	"role":      query.ByString(func(u User) string { return u.Role }),
	"createdAt": query.ByString(func(u User) string { return u.CreatedAt }),
}

// Service 封装用户模块的业务逻辑。
type Service struct {
	repo *Repository
}

// NewService 创建用户服务。
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List 执行 过滤 -> 稳定排序 -> 分页 管线。
func (s *Service) List(q ListQuery) ([]User, response.Pagination) {
	items := s.repo.All()

	var searchPred, rolePred, activePred func(User) bool
	if q.Q != "" {
		term := strings.ToLower(q.Q)
		searchPred = func(u User) bool {
			return strings.Contains(strings.ToLower(u.Username), term) ||
				strings.Contains(strings.ToLower(u.Email), term)
		}
	}
	if q.Role != "" {
		rolePred = func(u User) bool { return u.Role == q.Role }
	}
	if active, set := q.ActiveFilter(); set {
		activePred = func(u User) bool { return u.IsActive == active }
	}

	filtered := query.Filter(items, searchPred, rolePred, activePred)
	query.SortStable(filtered, comparators[q.SortBy], query.Direction(q.SortOrder))
	return query.Paginate(filtered, q.Page, q.Limit)
}

// Get 按ID查找用户。
func (s *Service) Get(id string) (User, bool) {
	return s.repo.Get(id)
}

// Exists 判断用户是否存在。
func (s *Service) Exists(id string) bool {
	_, ok := s.repo.Get(id)
	return ok
}

// Create 应用缺省值，生成ID和时间戳并入库。
func (s *Service) Create(req CreateRequest) (User, error) {
	role := req.Role
	if role == "" {
		role = "user"
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	now := nowISO()
	u := User{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Username:  req.Username,
		Email:     req.Email,
		Avatar:    req.Avatar,
		Role:      role,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Update 把提供的字段合并到现有记录上，并刷新更新时间戳。
func (s *Service) Update(id string, req UpdateRequest) (User, error) {
	newEmail, newUsername := "", ""
	if req.Email != nil {
		newEmail = *req.Email
	}
	if req.Username != nil {
		newUsername = *req.Username
	}
	return s.repo.Update(id, newEmail, newUsername, func(u User) User {
		if req.Username != nil {
			u.Username = *req.Username
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Avatar != nil {
			u.Avatar = *req.Avatar
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		u.UpdatedAt = nowISO()
		return u
	})
}

// Delete 移除并返回目标用户；admin用户受保护。
func (s *Service) Delete(id string) (User, error) {
	return s.repo.Delete(id)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
