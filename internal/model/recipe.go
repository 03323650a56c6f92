package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
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
		return fmt.Errorf("unsupported JSONBStringArray source %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a stored recipe. Servings is free text such as "Serves 4" or
// "Makes 12 cookies" and is rescaled together with the ingredients.
type Recipe struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Name         string           `gorm:"size:255;not null" json:"name" binding:"required"`
	Description  string           `gorm:"type:text" json:"description"`
	Servings     string           `gorm:"size:255" json:"servings"`
	Ingredients  []Ingredient     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients" binding:"dive"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	UserID       uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
}

// BeforeCreate assigns an ID when the caller did not
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient is one line of a recipe. A nil Quantity means "to taste" style
// lines that have no amount.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	Position int       `gorm:"not null;default:0" json:"position"`
	Quantity *float64  `gorm:"type:double precision" json:"quantity"`
	Unit     string    `gorm:"size:50" json:"unit"`
	Name     string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Note     string    `gorm:"size:255" json:"note,omitempty"`
}

// BeforeCreate assigns an ID when the caller did not
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ScaledRecipe is a read-only view of a recipe multiplied by Factor
type ScaledRecipe struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Factor      float64            `json:"factor"`
	Servings    string             `json:"servings"`
	Ingredients []ScaledIngredient `json:"ingredients"`
}

// ScaledIngredient carries both the exact scaled amount and its display form
type ScaledIngredient struct {
	Quantity *float64 `json:"quantity"`
	Display  string   `json:"display"`
	Unit     string   `json:"unit"`
	Name     string   `json:"name"`
	Note     string   `json:"note,omitempty"`
	Line     string   `json:"line"`
}
