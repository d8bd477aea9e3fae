package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/deaduchiha/api-nikode/pkg/response"
)

// --- 通用查询管线 ---
// 所有列表型端点共享同一套 过滤 -> 排序 -> 分页 的实现。
// 各实体模块只需要提供自己的过滤谓词和排序比较器配置。

// PageParams 是所有列表查询共用的分页参数。
// 绑定失败（类型错误、越界）由gin的validator统一拒绝。
type PageParams struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// Direction 表示排序方向。
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Comparator 是一个实体排序比较器，返回值约定同 strings.Compare。
type Comparator[T any] func(a, b T) int

// collator 提供与前端localeCompare一致的、区域感知的字符串排序。
var collator = collate.New(language.English)

// CompareStrings 按区域规则比较两个字符串。
func CompareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

// ByString 构造一个基于字符串字段的区域感知比较器。
func ByString[T any](key func(T) string) Comparator[T] {
	return func(a, b T) int {
		return CompareStrings(key(a), key(b))
	}
}

// ByInt 构造一个基于数值字段的比较器。
func ByInt[T any](key func(T) int) Comparator[T] {
	return func(a, b T) int {
		return key(a) - key(b)
	}
}

// Filter 返回满足所有谓词的条目，谓词之间是AND关系。
// nil谓词表示该过滤条件未激活，会被跳过。
func Filter[T any](items []T, preds ...func(T) bool) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		keep := true
		for _, pred := range preds {
			if pred != nil && !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortStable 按给定比较器对条目做稳定的原地排序。
// 稳定性是对外契约：相等条目保持原有相对顺序。
func SortStable[T any](items []T, cmp Comparator[T], dir Direction) {
	sort.SliceStable(items, func(i, j int) bool {
		if dir == Desc {
			return cmp(items[i], items[j]) > 0
		}
		return cmp(items[i], items[j]) < 0
	})
}

// Paginate 对已过滤、已排序的条目切出一页，并返回分页元数据。
// 越界的页码得到空切片而不是错误。
func Paginate[T any](items []T, page, limit int) ([]T, response.Pagination) {
	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], response.NewPagination(page, limit, len(items))
}
