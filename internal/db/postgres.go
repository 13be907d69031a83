package db

import (
	"fmt"

	"github.com/daithanwa/dsi202-2025/internal/logging"
	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects the database backend.
type Options struct {
	Driver string
	Path   string
	DSN    string
	// Logger receives slow queries and driver errors; nil writes to stdout.
	Logger *logging.Logger
}

func Open(options Options) (*gorm.DB, error) {
	switch options.Driver {
	case "", DriverSQLite:
		return openSQLite(options.Path, options.Logger)
	case DriverPostgres:
		return openPostgres(options.DSN, options.Logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", options.Driver)
	}
}

// OpenPostgres connects to PostgreSQL and reconciles the schema from the models.
// The embedded SQL files target SQLite only.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return openPostgres(dsn, nil)
}

func openPostgres(dsn string, logger *logging.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newGormLogger(logger)})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := database.AutoMigrate(schemaModels()...); err != nil {
		return nil, fmt.Errorf("auto migrate postgres: %w", err)
	}
	return database, nil
}

func schemaModels() []any {
	return []any{
		&models.User{},
		&models.UserProfile{},
		&models.Exercise{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.ExercisePlan{},
		&models.WorkoutDay{},
		&models.WorkoutExercise{},
		&models.MealPlan{},
		&models.DailyMeal{},
		&models.MealItem{},
		&models.Product{},
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.Order{},
		&models.OrderItem{},
		&models.WishlistItem{},
		&models.ProgressEntry{},
		&models.Article{},
		&models.Video{},
		&models.ForumTopic{},
		&models.ForumThread{},
		&models.ForumReply{},
	}
}
