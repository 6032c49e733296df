package service

import (
	"strings"

	"gorm.io/gorm"
)

// SearchFilter holds the optional criteria recognized by recipe search.
// Zero or nil fields impose no constraint, so the empty filter matches
// every recipe.
type SearchFilter struct {
	Ingredients string   `form:"ingredients"`
	MaxTime     *int     `form:"time"`
	MaxCalories *float64 `form:"calories"`
	Cuisine     string   `form:"cuisine"`
	Difficulty  string   `form:"difficulty"`
	Diet        string   `form:"diet"`
}

// Apply compiles the filter into query conditions on db. Provided fields
// combine with AND; the comma-separated ingredient terms combine with OR,
// each matched as a case-insensitive substring.
func (f SearchFilter) Apply(db *gorm.DB) *gorm.DB {
	query := db

	if f.Ingredients != "" {
		col := "LOWER(ingredients)"
		if db.Dialector.Name() == "postgres" {
			col = "LOWER(ingredients::text)"
		}
		var conds []string
		var args []interface{}
		for _, term := range strings.Split(f.Ingredients, ",") {
			term = strings.TrimSpace(term)
			if term == "" {
				continue
			}
			conds = append(conds, col+" LIKE ?")
			args = append(args, "%"+strings.ToLower(term)+"%")
		}
		if len(conds) > 0 {
			query = query.Where(strings.Join(conds, " OR "), args...)
		}
	}

	if f.MaxTime != nil {
		query = query.Where("cooking_time <= ?", *f.MaxTime)
	}
	if f.MaxCalories != nil {
		query = query.Where("calories <= ?", *f.MaxCalories)
	}
	if f.Cuisine != "" {
		query = query.Where("LOWER(cuisine) LIKE ?", "%"+strings.ToLower(f.Cuisine)+"%")
	}
	if f.Difficulty != "" {
		query = query.Where("difficulty = ?", f.Difficulty)
	}
	if f.Diet != "" {
		query = query.Where("LOWER(diet) LIKE ?", "%"+strings.ToLower(f.Diet)+"%")
	}

	return query
}
