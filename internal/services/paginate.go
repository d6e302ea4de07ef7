package services

import (
	"math"

	"gorm.io/gorm"
)

const QuestionsPerPage = 10

// PageBounds converts a 1-based page number into an offset and limit. Pages
// below 1, and pages whose offset would not fit in an int, have no rows.
func PageBounds(page int) (offset, limit int, ok bool) {
	if page < 1 || page > math.MaxInt/QuestionsPerPage {
		return 0, 0, false
	}
	return (page - 1) * QuestionsPerPage, QuestionsPerPage, true
}

// Paginate is a gorm scope selecting one page. Callers must order the query.
func Paginate(page int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset, limit, ok := PageBounds(page)
		if !ok {
			return db.Where("1 = 0")
		}
		return db.Offset(offset).Limit(limit)
	}
}
