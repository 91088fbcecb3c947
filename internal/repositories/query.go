package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/share_registry/internal/models"
)

// ErrRecordNotFound 表示记录未找到，重用 gorm 的错误
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrDuplicateRecord 表示唯一约束冲突
var ErrDuplicateRecord = errors.New("记录已存在")

// applyListQuery 处理排序与分页
// allowedSortByFields 为白名单，防止 SQL 注入；未命中时使用 defaultSort
func applyListQuery(tx *gorm.DB, q models.ListQuery, allowedSortByFields map[string]string, defaultSort string) *gorm.DB {
	dbSortBy, isValidField := allowedSortByFields[q.SortBy]
	if q.SortBy == "" || !isValidField {
		dbSortBy = defaultSort
	}
	sortOrder := "desc"
	if strings.ToLower(q.SortOrder) == "asc" {
		sortOrder = "asc"
	}
	return tx.Order(dbSortBy + " " + sortOrder).Offset(q.Offset()).Limit(q.Limit)
}

// likeTerm 构造 LIKE 匹配串
func likeTerm(search string) string {
	return "%" + strings.TrimSpace(search) + "%"
}

// isUniqueViolation 判断数据库唯一约束错误 (SQLite / PostgreSQL)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// orderByIDs 按 ids 的顺序重排查询结果，缺失的 id 被跳过
func orderByIDs[T any](rows []T, ids models.IDList, idOf func(T) int64) []T {
	byID := make(map[int64]T, len(rows))
	for _, row := range rows {
		byID[idOf(row)] = row
	}
	ordered := make([]T, 0, len(rows))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered
}
