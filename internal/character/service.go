package character

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deaduchiha/api-nikode/pkg/query"
	"github.com/deaduchiha/api-nikode/pkg/response"
)

// comparators 是角色列表允许的排序字段配置。
// 字段集合是封闭枚举，绑定层已经拒绝了不在其中的值。
var comparators = map[string]query.Comparator[Character]{
	"name":         query.ByString(func(c Character) string { return c.Name }),
	"power":        query.ByInt(func(c Character) int { return c.Power }),
	"intelligence": query.ByInt(func(c Character) int { return c.Intelligence }),
	"speed":        query.ByInt(func(c Character) int { return c.Speed }),
	"strength":     query.ByInt(func(c Character) int { return c.Strength }),
	"createdAt":    query.ByString(func(c Character) string { return c.CreatedAt }),
}

// Service 封装角色模块的业务逻辑。
type Service struct {
	repo *Repository
}

// NewService 创建角色服务。
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// List 执行 过滤 -> 稳定排序 -> 分页 管线。
func (s *Service) List(q ListQuery) ([]Character, response.Pagination) {
	items := s.repo.All()

	var searchPred, animePred, minPred, maxPred func(Character) bool
	if q.Q != "" {
		term := strings.ToLower(q.Q)
		searchPred = func(c Character) bool {
			return strings.Contains(strings.ToLower(c.Name), term) ||
				strings.Contains(strings.ToLower(c.Anime), term) ||
				strings.Contains(strings.ToLower(c.Description), term)
		}
	}
	if q.Anime != "" {
		animePred = func(c Character) bool {
			return strings.EqualFold(c.Anime, q.Anime)
		}
	}
	if q.MinPower != nil {
		minPred = func(c Character) bool { return c.Power >= *q.MinPower }
	}
	if q.MaxPower != nil {
		maxPred = func(c Character) bool { return c.Power <= *q.MaxPower }
	}

	filtered := query.Filter(items, searchPred, animePred, minPred, maxPred)
	query.SortStable(filtered, comparators[q.SortBy], query.Direction(q.SortOrder))
	return query.Paginate(filtered, q.Page, q.Limit)
}

// Get 按ID查找角色。
func (s *Service) Get(id string) (Character, bool) {
	return s.repo.Get(id)
}

// Exists 判断角色是否存在。
func (s *Service) Exists(id string) bool {
	_, ok := s.repo.Get(id)
	return ok
}

// Create 校验通过后生成ID和时间戳并入库。
// 名字冲突（不区分大小写）返回memstore.ErrConflict。
func (s *Service) Create(req CreateRequest) (Character, error) {
	now := nowISO()
	ch := Character{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Name:         req.Name,
		Anime:        req.Anime,
		Power:        *req.Power,
		Intelligence: *req.Intelligence,
		Speed:        *req.Speed,
		Strength:     *req.Strength,
		Image:        req.Image,
		Description:  req.Description,
		Abilities:    req.Abilities,
		Personality:  req.Personality,
		Birthday:     req.Birthday,
		Height:       req.Height,
		Weight:       req.Weight,
		HairColor:    req.HairColor,
		EyeColor:     req.EyeColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ch); err != nil {
		return Character{}, err
	}
	return ch, nil
}

// Update 把提供的字段合并到现有记录上，并刷新更新时间戳。
// 只有名字被修改时才重新检查名字唯一性。
func (s *Service) Update(id string, req UpdateRequest) (Character, error) {
	newName := ""
	if req.Name != nil {
		newName = *req.Name
	}
	return s.repo.Update(id, newName, func(ch Character) Character {
		if req.Name != nil {
			ch.Name = *req.Name
		}
		if req.Anime != nil {
			ch.Anime = *req.Anime
		}
		if req.Power != nil {
			ch.Power = *req.Power
		}
		if req.Intelligence != nil {
			ch.Intelligence = *req.Intelligence
		}
		if req.Speed != nil {
			ch.Speed = *req.Speed
		}
		if req.Strength != nil {
			ch.Strength = *req.Strength
		}
		if req.Image != nil {
			ch.Image = *req.Image
		}
		if req.Description != nil {
			ch.Description = *req.Description
		}
		if req.Abilities != nil {
			ch.Abilities = *req.Abilities
		}
		if req.Personality != nil {
			ch.Personality = *req.Personality
		}
		if req.Birthday != nil {
			ch.Birthday = *req.Birthday
		}
		if req.Height != nil {
			ch.Height = *req.Height
		}
		if req.Weight != nil {
			ch.Weight = *req.Weight
		}
		if req.HairColor != nil {
			ch.HairColor = *req.HairColor
		}
		if req.EyeColor != nil {
			ch.EyeColor = *req.EyeColor
		}
		ch.UpdatedAt = nowISO()
		return ch
	})
}

// Delete 移除并返回目标角色。
func (s *Service) Delete(id string) (Character, error) {
	return s.repo.Delete(id)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
