package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// ValidDifficulty reports whether d is one of the recognized difficulty levels.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a published recipe. AverageRating is derived from the rating
// rows and is only ever written by the rating transaction.
type Recipe struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Title            string           `gorm:"size:255;not null" json:"title"`
	Description      string           `gorm:"type:text;not null" json:"description"`
	Image            string           `gorm:"size:255" json:"image"`
	Ingredients      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	PreparationSteps JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"preparation_steps"`
	CookingTime      int              `gorm:"not null" json:"cooking_time"`
	Calories         float64          `gorm:"type:float" json:"calories"`
	Difficulty       string           `gorm:"size:20;not null" json:"difficulty"`
	Cuisine          string           `gorm:"size:100" json:"cuisine"`
	Diet             string           `gorm:"size:100" json:"diet"`
	AuthorID         uuid.UUID        `gorm:"type:uuid;not null;index" json:"author_id"`
	Ratings          []RecipeRating   `gorm:"foreignKey:RecipeID" json:"ratings"`
	AverageRating    float64          `json:"average_rating"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeRating is one user's rating of one recipe. The composite unique
// index is the store-level guard against duplicate submissions; the
// autoincrement id preserves insertion order.
type RecipeRating struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_rater" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_recipe_rater" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
}

func (RecipeRating) TableName() string {
	return "recipe_ratings"
}
