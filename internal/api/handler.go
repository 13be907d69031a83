package api

import (
	"errors"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/db"
	"github.com/daithanwa/dsi202-2025/internal/i18n"
	"github.com/daithanwa/dsi202-2025/internal/logging"
	"github.com/daithanwa/dsi202-2025/internal/ratelimit"
	"github.com/daithanwa/dsi202-2025/internal/services"
	"gorm.io/gorm"
)

const (
	defaultLoginAttemptLimit = 5
	loginAttemptWindow       = time.Minute
)

type Options struct {
	SecretKey       string
	Location        *time.Location
	CookieSecure    bool
	PromptPayMobile string
	I18n            *i18n.Manager
	Logger          *logging.Logger
	LoginLimiter    ratelimit.AttemptLimiter
	// Random drives plan generation; nil uses the global source.
	Random services.RandomSource
	// Now defaults to time.Now and is overridden in tests.
	Now func() time.Time
}

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	cookies      *secureCookieCodec
	i18n         *i18n.Manager
	logger       *logging.Logger
	loginLimiter ratelimit.AttemptLimiter
	clock        func() time.Time

	auth          *services.AuthService
	profiles      *services.ProfileService
	workouts      *services.WorkoutPlanService
	meals         *services.MealPlanService
	subscriptions *services.SubscriptionService
	shop          *services.ShopService
	progress      *services.ProgressService
	content       *services.ContentService
	forum         *services.ForumService
	dashboard     *services.DashboardService
}

func NewHandler(database *gorm.DB, options Options) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if options.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}
	if options.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}

	cookies, err := newSecureCookieCodec([]byte(options.SecretKey))
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		secretKey:    []byte(options.SecretKey),
		location:     options.Location,
		cookieSecure: options.CookieSecure,
		cookies:      cookies,
		i18n:         options.I18n,
		logger:       options.Logger,
		loginLimiter: options.LoginLimiter,
		clock:        options.Now,
	}
	if handler.location == nil {
		handler.location = time.Local
	}
	if handler.logger == nil {
		handler.logger = logging.NewNop()
	}
	if handler.loginLimiter == nil {
		handler.loginLimiter = ratelimit.NewMemoryLimiter(defaultLoginAttemptLimit, loginAttemptWindow)
	}
	if handler.clock == nil {
		handler.clock = time.Now
	}

	return handler.withDependencies(database, options), nil
}

func (handler *Handler) withDependencies(database *gorm.DB, options Options) *Handler {
	repositories := db.NewRepositories(database)

	handler.auth = services.NewAuthService(repositories.Users)
	handler.profiles = services.NewProfileService(repositories.Profiles)
	handler.workouts = services.NewWorkoutPlanService(repositories.ExercisePlans, repositories.Catalog, options.Random)
	handler.meals = services.NewMealPlanService(repositories.MealPlans, repositories.Catalog, options.Random)
	handler.subscriptions = services.NewSubscriptionService(repositories.Subscriptions)
	handler.shop = services.NewShopService(repositories.Products, repositories.Orders, repositories.Wishlist, options.PromptPayMobile)
	handler.progress = services.NewProgressService(repositories.Progress)
	handler.content = services.NewContentService(repositories.Content)
	handler.forum = services.NewForumService(repositories.Forum)
	handler.dashboard = services.NewDashboardService(
		handler.workouts,
		handler.meals,
		handler.subscriptions,
		handler.shop,
		handler.profiles,
		handler.content,
		handler.progress,
	)
	return handler
}

// now is the current instant in the configured location.
func (handler *Handler) now() time.Time {
	return handler.clock().In(handler.location)
}
