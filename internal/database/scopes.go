package database

import (
	"gorm.io/gorm"

	"github.com/communityworks/volunteer-platform/internal/constants"
	"github.com/communityworks/volunteer-platform/internal/utils"
)

// Paginate applies offset pagination to a query. A non-positive limit
// falls back to the catalog default page size.
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		limit := params.Limit
		if limit <= 0 {
			limit = constants.DefaultPageSize
		}
		return db.Offset(params.Offset).Limit(limit)
	}
}
