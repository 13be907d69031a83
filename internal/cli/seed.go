package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/db"
	"github.com/daithanwa/dsi202-2025/internal/models"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Exercises         []exerciseSeed         `yaml:"exercises"`
	Recipes           []recipeSeed           `yaml:"recipes"`
	Products          []productSeed          `yaml:"products"`
	SubscriptionPlans []subscriptionPlanSeed `yaml:"subscription_plans"`
	Articles          []articleSeed          `yaml:"articles"`
	Videos            []videoSeed            `yaml:"videos"`
	ForumTopics       []forumTopicSeed       `yaml:"forum_topics"`
}

type exerciseSeed struct {
	Name              string `yaml:"name"`
	Description       string `yaml:"description"`
	MuscleGroup       string `yaml:"muscle_group"`
	Difficulty        string `yaml:"difficulty"`
	Instructions      string `yaml:"instructions"`
	VideoURL          string `yaml:"video_url"`
	EquipmentRequired bool   `yaml:"equipment_required"`
}

type recipeSeed struct {
	Name               string           `yaml:"name"`
	Description        string           `yaml:"description"`
	Instructions       string           `yaml:"instructions"`
	PrepTime           int              `yaml:"prep_time"`
	CookTime           int              `yaml:"cook_time"`
	Servings           int              `yaml:"servings"`
	CaloriesPerServing int              `yaml:"calories_per_serving"`
	Protein            float64          `yaml:"protein"`
	Carbs              float64          `yaml:"carbs"`
	Fat                float64          `yaml:"fat"`
	MealType           string           `yaml:"meal_type"`
	DietType           string           `yaml:"diet_type"`
	Ingredients        []ingredientSeed `yaml:"ingredients"`
}

type ingredientSeed struct {
	Name   string `yaml:"name"`
	Amount string `yaml:"amount"`
}

// Prices in the seed file are baht with up to two decimals.
type productSeed struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Stock       int     `yaml:"stock"`
	ImageURL    string  `yaml:"image_url"`
	IsActive    *bool   `yaml:"is_active"`
}

type subscriptionPlanSeed struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Duration    string  `yaml:"duration"`
	Price       float64 `yaml:"price"`
	IsActive    *bool   `yaml:"is_active"`
}

type articleSeed struct {
	Title     string `yaml:"title"`
	Slug      string `yaml:"slug"`
	Content   string `yaml:"content"`
	Category  string `yaml:"category"`
	Published *bool  `yaml:"published"`
	Date      string `yaml:"date"`
}

type videoSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	VideoURL    string `yaml:"video_url"`
	Category    string `yaml:"category"`
	Duration    int    `yaml:"duration"`
	Published   *bool  `yaml:"published"`
	Date        string `yaml:"date"`
}

type forumTopicSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func RunSeedCatalogCommand(options db.Options, path string, out io.Writer) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("catalog file is required")
	}
	if out == nil {
		out = os.Stdout
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	batch, err := LoadCatalogSeed(file, time.Now())
	if err != nil {
		return err
	}

	database, err := db.Open(options)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	counts, err := db.NewSeedRepository(database).Insert(batch)
	if err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}

	fmt.Fprintf(out, "Seeded %d exercises, %d recipes, %d products, %d subscription plans, %d articles, %d videos, %d forum topics\n",
		counts.Exercises, counts.Recipes, counts.Products, counts.SubscriptionPlans, counts.Articles, counts.Videos, counts.ForumTopics)
	return nil
}

// LoadCatalogSeed decodes and validates a catalog file. Omitted is_active and
// published flags default to true; omitted dates default to now.
func LoadCatalogSeed(reader io.Reader, now time.Time) (db.SeedBatch, error) {
	var file catalogFile
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return db.SeedBatch{}, fmt.Errorf("decode catalog file: %w", err)
	}

	batch := db.SeedBatch{}
	for index, seed := range file.Exercises {
		exercise, err := seed.model()
		if err != nil {
			return db.SeedBatch{}, fmt.Errorf("exercises[%d] %q: %w", index, seed.Name, err)
		}
		batch.Exercises = append(batch.Exercises, exercise)
	}
	for index, seed := range file.Recipes {
		recipe, err := seed.model()
		if err != nil {
			return db.SeedBatch{}, fmt.Errorf("recipes[%d] %q: %w", index, seed.Name, err)
		}
		batch.Recipes = append(batch.Recipes, recipe)
	}
	for index, seed := range file.Products {
		if strings.TrimSpace(seed.Name) == "" || seed.Price < 0 || seed.Stock < 0 {
			return db.SeedBatch{}, fmt.Errorf("products[%d] %q: name, price and stock are required", index, seed.Name)
		}
		batch.Products = append(batch.Products, models.Product{
			Name:        strings.TrimSpace(seed.Name),
			Description: seed.Description,
			Price:       toSatang(seed.Price),
			Stock:       seed.Stock,
			ImageURL:    seed.ImageURL,
			IsActive:    flagOrTrue(seed.IsActive),
		})
	}
	for index, seed := range file.SubscriptionPlans {
		duration, err := models.ParsePlanDuration(seed.Duration)
		if err != nil {
			return db.SeedBatch{}, fmt.Errorf("subscription_plans[%d] %q: %w", index, seed.Name, err)
		}
		if strings.TrimSpace(seed.Name) == "" || seed.Price < 0 {
			return db.SeedBatch{}, fmt.Errorf("subscription_plans[%d]: name and price are required", index)
		}
		batch.SubscriptionPlans = append(batch.SubscriptionPlans, models.SubscriptionPlan{
			Name:        strings.TrimSpace(seed.Name),
			Description: seed.Description,
			Duration:    duration,
			Price:       toSatang(seed.Price),
			IsActive:    flagOrTrue(seed.IsActive),
		})
	}
	for index, seed := range file.Articles {
		date, err := seedDate(seed.Date, now)
		if err != nil {
			return db.SeedBatch{}, fmt.Errorf("articles[%d] %q: %w", index, seed.Title, err)
		}
		if strings.TrimSpace(seed.Title) == "" || strings.TrimSpace(seed.Slug) == "" {
			return db.SeedBatch{}, fmt.Errorf("articles[%d]: title and slug are required", index)
		}
		batch.Articles = append(batch.Articles, models.Article{
			Title:     strings.TrimSpace(seed.Title),
			Slug:      strings.TrimSpace(seed.Slug),
			Content:   seed.Content,
			Category:  strings.ToLower(strings.TrimSpace(seed.Category)),
			Published: flagOrTrue(seed.Published),
			Date:      date,
		})
	}
	for index, seed := range file.Videos {
		date, err := seedDate(seed.Date, now)
		if err != nil {
			return db.SeedBatch{}, fmt.Errorf("videos[%d] %q: %w", index, seed.Title, err)
		}
		if strings.TrimSpace(seed.Title) == "" || strings.TrimSpace(seed.VideoURL) == "" {
			return db.SeedBatch{}, fmt.Errorf("videos[%d]: title and video_url are required", index)
		}
		batch.Videos = append(batch.Videos, models.Video{
			Title:       strings.TrimSpace(seed.Title),
			Description: seed.Description,
			VideoURL:    seed.VideoURL,
			Category:    strings.ToLower(strings.TrimSpace(seed.Category)),
			Duration:    seed.Duration,
			Published:   flagOrTrue(seed.Published),
			Date:        date,
		})
	}
	for index, seed := range file.ForumTopics {
		if strings.TrimSpace(seed.Name) == "" {
			return db.SeedBatch{}, fmt.Errorf("forum_topics[%d]: name is required", index)
		}
		batch.ForumTopics = append(batch.ForumTopics, models.ForumTopic{
			Name:         strings.TrimSpace(seed.Name),
			Description:  seed.Description,
			LastActivity: now,
		})
	}
	return batch, nil
}

func (seed exerciseSeed) model() (models.Exercise, error) {
	if strings.TrimSpace(seed.Name) == "" {
		return models.Exercise{}, errors.New("name is required")
	}
	group, err := models.ParseMuscleGroup(seed.MuscleGroup)
	if err != nil {
		return models.Exercise{}, err
	}
	difficulty, err := models.ParseLevel(seed.Difficulty)
	if err != nil {
		return models.Exercise{}, err
	}
	return models.Exercise{
		Name:              strings.TrimSpace(seed.Name),
		Description:       seed.Description,
		MuscleGroup:       group,
		Difficulty:        difficulty,
		Instructions:      seed.Instructions,
		VideoURL:          seed.VideoURL,
		EquipmentRequired: seed.EquipmentRequired,
	}, nil
}

func (seed recipeSeed) model() (models.Recipe, error) {
	if strings.TrimSpace(seed.Name) == "" {
		return models.Recipe{}, errors.New("name is required")
	}
	if seed.CaloriesPerServing < 0 {
		return models.Recipe{}, errors.New("calories_per_serving must not be negative")
	}
	mealType, err := models.ParseMealType(seed.MealType)
	if err != nil {
		return models.Recipe{}, err
	}
	dietType, err := models.ParseDietType(seed.DietType)
	if err != nil {
		return models.Recipe{}, err
	}
	servings := seed.Servings
	if servings < 1 {
		servings = 1
	}

	ingredients := make([]models.Ingredient, 0, len(seed.Ingredients))
	for _, ingredient := range seed.Ingredients {
		if strings.TrimSpace(ingredient.Name) == "" {
			return models.Recipe{}, errors.New("ingredient name is required")
		}
		ingredients = append(ingredients, models.Ingredient{
			Name:   strings.TrimSpace(ingredient.Name),
			Amount: strings.TrimSpace(ingredient.Amount),
		})
	}

	return models.Recipe{
		Name:               strings.TrimSpace(seed.Name),
		Description:        seed.Description,
		Instructions:       seed.Instructions,
		PrepTime:           seed.PrepTime,
		CookTime:           seed.CookTime,
		Servings:           servings,
		CaloriesPerServing: seed.CaloriesPerServing,
		Protein:            seed.Protein,
		Carbs:              seed.Carbs,
		Fat:                seed.Fat,
		MealType:           mealType,
		DietType:           dietType,
		Ingredients:        ingredients,
	}, nil
}

func toSatang(baht float64) int64 {
	return int64(math.Round(baht * 100))
}

func flagOrTrue(flag *bool) bool {
	if flag == nil {
		return true
	}
	return *flag
}

func seedDate(raw string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return now, nil
	}
	parsed, err := time.ParseInLocation(time.DateOnly, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return parsed, nil
}
