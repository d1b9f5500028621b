package repository

import "gorm.io/gorm"

const defaultPageSize = 20

// applyPagination turns page/pageSize into limit/offset. A non-positive
// pageSize leaves the query unpaged; a non-positive page means the first.
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}

// normalizePage clamps paging inputs for repositories that paginate in
// memory.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
