package search

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/deaduchiha/api-nikode/internal/auth"
	"github.com/deaduchiha/api-nikode/internal/character"
	"github.com/deaduchiha/api-nikode/internal/comment"
	"github.com/deaduchiha/api-nikode/internal/user"
	"github.com/deaduchiha/api-nikode/pkg/query"
)

// fields 是相关性打分的输入：一个条目可被搜索的全部文本字段。
// 不适用的字段留空即可，打分器会跳过。
type fields struct {
	Name        string
	Username    string
	Content     string
	Description string
	Anime       string
}

// result 是排序和分面统计所需的内部命中表示，响应前才展平。
type result struct {
	entityType string
	score      int
	createdAt  string
	updatedAt  string
	entity     interface{}
}

// Service 对三个实体存储做朴素的线性扫描搜索。
type Service struct {
	characters *character.Repository
	users      *user.Repository
	comments   *comment.Repository
}

// NewService 创建搜索服务。
func NewService(characters *character.Repository, users *user.Repository, comments *comment.Repository) *Service {
	return &Service{characters: characters, users: users, comments: comments}
}

// Search 执行跨实体搜索。
// 用户类结果只对moderator及以上角色可见；角色和评论不受限制。
func (s *Service) Search(q Query, role auth.Role) ResultSet {
	term := strings.ToLower(q.Q)
	var results []result

	if q.Type == "all" || q.Type == "characters" {
		for _, ch := range s.characters.All() {
			if containsFold(ch.Name, term) || containsFold(ch.Anime, term) || containsFold(ch.Description, term) {
				results = append(results, result{
					entityType: "character",
					score:      relevance(fields{Name: ch.Name, Description: ch.Description, Anime: ch.Anime}, term),
					createdAt:  ch.CreatedAt,
					updatedAt:  ch.UpdatedAt,
					entity:     ch,
				})
			}
		}
	}

	if (q.Type == "all" || q.Type == "users") && role.Satisfies(auth.RoleModerator) {
		for _, u := range s.users.All() {
			if containsFold(u.Username, term) || containsFold(u.Email, term) {
				results = append(results, result{
					entityType: "user",
					score:      relevance(fields{Username: u.Username}, term),
					createdAt:  u.CreatedAt,
					updatedAt:  u.UpdatedAt,
					entity:     u,
				})
			}
		}
	}

	if q.Type == "all" || q.Type == "comments" {
		for _, cm := range s.comments.All() {
			if containsFold(cm.Content, term) {
				results = append(results, result{
					entityType: "comment",
					score:      relevance(fields{Content: cm.Content}, term),
					createdAt:  cm.CreatedAt,
					updatedAt:  cm.UpdatedAt,
					entity:     cm,
				})
			}
		}
	}

	sortResults(results, q.SortBy, query.Direction(q.SortOrder))

	var counts TypeCounts
	for _, r := range results {
		switch r.entityType {
		case "character":
			counts.Character++
		case "user":
			counts.User++
		case "comment":
			counts.Comment++
		}
	}

	page, _ := query.Paginate(results, q.Page, q.Limit)
	flattened := make([]map[string]interface{}, 0, len(page))
	for _, r := range page {
		flattened = append(flattened, flatten(r))
	}

	return ResultSet{
		Query:        q.Q,
		TotalResults: len(results),
		Results:      flattened,
		Facets:       Facets{Types: counts},
	}
}

// sortResults 按relevance降序或按时间戳字段的区域字符串序排序。
func sortResults(results []result, sortBy string, dir query.Direction) {
	switch sortBy {
	case "relevance":
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].score > results[j].score
		})
	case "createdAt":
		query.SortStable(results, func(a, b result) int {
			return query.CompareStrings(a.createdAt, b.createdAt)
		}, dir)
	case "updatedAt":
		query.SortStable(results, func(a, b result) int {
			return query.CompareStrings(a.updatedAt, b.updatedAt)
		}, dir)
	}
}

// relevance 按固定权重累计得分，最后截断到10。
// 打分独立于是否命中：只要任一字段包含搜索词，条目就会被收录。
func relevance(f fields, term string) int {
	score := 0
	if f.Name != "" && strings.ToLower(f.Name) == term {
		score += 10
	}
	if f.Username != "" && strings.ToLower(f.Username) == term {
		score += 10
	}
	if f.Content != "" && containsFold(f.Content, term) {
		score += 5
	}
	if f.Name != "" && containsFold(f.Name, term) {
		score += 3
	}
	if f.Username != "" && containsFold(f.Username, term) {
		score += 3
	}
	if f.Description != "" && containsFold(f.Description, term) {
		score += 2
	}
	if f.Anime != "" && containsFold(f.Anime, term) {
		score += 2
	}
	if score > 10 {
		score = 10
	}
	return score
}

// containsFold 判断s的小写形式是否包含term（term必须已是小写）。
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

// flatten 把实体序列化为通用映射，并附加type和relevanceScore。
func flatten(r result) map[string]interface{} {
	m := make(map[string]interface{})
	raw, err := json.Marshal(r.entity)
	if err == nil {
		_ = json.Unmarshal(raw, &m)
	}
	m["type"] = r.entityType
	m["relevanceScore"] = r.score
	return m
}
