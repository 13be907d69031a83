package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Profiles      *ProfileRepository
	Catalog       *CatalogRepository
	ExercisePlans *ExercisePlanRepository
	MealPlans     *MealPlanRepository
	Products      *ProductRepository
	Subscriptions *SubscriptionRepository
	Orders        *OrderRepository
	Wishlist      *WishlistRepository
	Progress      *ProgressRepository
	Content       *ContentRepository
	Forum         *ForumRepository
	Seeds         *SeedRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Profiles:      NewProfileRepository(database),
		Catalog:       NewCatalogRepository(database),
		ExercisePlans: NewExercisePlanRepository(database),
		MealPlans:     NewMealPlanRepository(database),
		Products:      NewProductRepository(database),
		Subscriptions: NewSubscriptionRepository(database),
		Orders:        NewOrderRepository(database),
		Wishlist:      NewWishlistRepository(database),
		Progress:      NewProgressRepository(database),
		Content:       NewContentRepository(database),
		Forum:         NewForumRepository(database),
		Seeds:         NewSeedRepository(database),
	}
}
