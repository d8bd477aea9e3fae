package comment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deaduchiha/api-nikode/pkg/query"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

// 创建评论前要检查的两类悬空引用。
var (
	ErrCharacterNotFound = errors.New("comment: character not found")
	ErrUserNotFound      = errors.New("comment: user not found")
)

// RefStore 是评论服务对其他实体存储的最小依赖：只需要存在性检查。
type RefStore interface {
	Exists(id string) bool
}

var comparators = map[string]query.Comparator[Comment]{
	"createdAt": query.ByString(func(c Comment) string { return c.CreatedAt }),
	"rating": query.ByInt(func(c Comment) int {
		if c.Rating == nil {
			return 0
		}
		return *c.Rating
	}),
}

// Service 封装评论模块的业务逻辑。
type Service struct {
	repo       *Repository
	characters RefStore
	users      RefStore
}

// NewService 创建评论服务。
func NewService(repo *Repository, characters RefStore, users RefStore) *Service {
	return &Service{repo: repo, characters: characters, users: users}
}

// List 执行 过滤 -> 稳定排序 -> 分页 管线。
func (s *Service) List(q ListQuery) ([]Comment, response.Pagination) {
	items := s.repo.All()

	var characterPred, userPred, searchPred, ratingPred func(Comment) bool
	if q.CharacterID != "" {
		characterPred = func(c Comment) bool { return c.CharacterID == q.CharacterID }
	}
	if q.UserID != "" {
		userPred = func(c Comment) bool { return c.UserID == q.UserID }
	}
	if q.Q != "" {
		term := strings.ToLower(q.Q)
		searchPred = func(c Comment) bool {
			return strings.Contains(strings.ToLower(c.Content), term)
		}
	}
	if q.Rating != nil {
		ratingPred = func(c Comment) bool {
			return c.Rating != nil && *c.Rating == *q.Rating
		}
	}

	filtered := query.Filter(items, characterPred, userPred, searchPred, ratingPred)
	query.SortStable(filtered, comparators[q.SortBy], query.Direction(q.SortOrder))
	return query.Paginate(filtered, q.Page, q.Limit)
}

// Create 检查两个引用都存在后入库。
// 任何存储变更都发生在所有检查之后，失败的请求不会留下半成品。
func (s *Service) Create(req CreateRequest) (Comment, error) {
	if !s.characters.Exists(req.CharacterID) {
		return Comment{}, ErrCharacterNotFound
	}
	if !s.users.Exists(req.UserID) {
		return Comment{}, ErrUserNotFound
	}

	now := time.Now().UTC().Format(time.RFC3339)
	cm := Comment{
		ID:          uuid.Must(uuid.NewV7()).String(),
		CharacterID: req.CharacterID,
		UserID:      req.UserID,
		Content:     req.Content,
		Rating:      req.Rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(cm); err != nil {
		return Comment{}, err
	}
	return cm, nil
}
