package models

type Exercise struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	Name              string      `gorm:"not null" json:"name"`
	Description       string      `json:"description"`
	MuscleGroup       MuscleGroup `gorm:"not null;index" json:"muscle_group"`
	Difficulty        Level       `gorm:"not null;index" json:"difficulty"`
	Instructions      string      `json:"instructions"`
	VideoURL          string      `json:"video_url"`
	EquipmentRequired bool        `gorm:"not null;default:false" json:"equipment_required"`
}

type Recipe struct {
	ID                 uint         `gorm:"primaryKey" json:"id"`
	Name               string       `gorm:"not null" json:"name"`
	Description        string       `json:"description"`
	Instructions       string       `json:"instructions"`
	PrepTime           int          `json:"prep_time"`
	CookTime           int          `json:"cook_time"`
	Servings           int          `gorm:"not null;default:1" json:"servings"`
	CaloriesPerServing int          `gorm:"not null" json:"calories_per_serving"`
	Protein            float64      `json:"protein"`
	Carbs              float64      `json:"carbs"`
	Fat                float64      `json:"fat"`
	MealType           MealType     `gorm:"not null;index" json:"meal_type"`
	DietType           DietType     `gorm:"not null;default:any" json:"diet_type"`
	Ingredients        []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null;index" json:"recipe_id"`
	Name     string `gorm:"not null" json:"name"`
	Amount   string `json:"amount"`
}
