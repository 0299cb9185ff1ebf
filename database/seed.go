package database

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
)

var seedCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Garden",
	"Sports & Outdoors",
	"Collectibles & Art",
	"Vehicles",
	"Toys & Hobbies",
	"Books & Media",
	"Jewelry & Watches",
	"Health & Beauty",
}

type seedUser struct {
	email    string
	fullName string
	phone    string
	role     models.UserRole
}

var seedUsers = []seedUser{
	{"seller1@bidbay.com", "John's Electronics", "+1-555-0101", models.RoleSeller},
	{"seller2@bidbay.com", "Vintage Collectibles", "+1-555-0102", models.RoleSeller},
	{"buyer1@bidbay.com", "Alice Johnson", "+1-555-0201", models.RoleBuyer},
	{"buyer2@bidbay.com", "Bob Smith", "+1-555-0202", models.RoleBuyer},
	{"admin@bidbay.com", "System Admin", "+1-555-0001", models.RoleAdmin},
}

type seedProduct struct {
	title     string
	desc      string
	price     string
	increment string
	category  string
}

var seedProducts = []seedProduct{
	{"iPhone 15 Pro Max 256GB", "Brand new, sealed in box.", "999.00", "25.00", "Electronics"},
	{"Sony PlayStation 5", "Disc Edition with extra controller.", "449.00", "15.00", "Electronics"},
	{"Rolex Submariner Date", "2022, full set with papers.", "12000.00", "250.00", "Jewelry & Watches"},
	{"Herman Miller Aeron Chair", "Size B, fully loaded.", "800.00", "30.00", "Home & Garden"},
	{"LEGO Millennium Falcon", "Sealed in box.", "799.00", "30.00", "Toys & Hobbies"},
}

// Seed populates sample data for development. Existing rows are kept; the
// seeder is safe to run repeatedly.
func Seed(db *gorm.DB) error {
	zap.L().Info("Seeding sample data...")

	categories := make(map[string]models.Category, len(seedCategories))
	for _, name := range seedCategories {
		var category models.Category
		err := db.Where("name = ?", name).First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = models.Category{Name: name}
			if err := db.Create(&category).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		categories[name] = category
	}

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		var user models.User
		err := db.Where("email = ?", su.email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			phone := su.phone
			user = models.User{
				Email:       su.email,
				Password:    string(password),
				FullName:    su.fullName,
				PhoneNumber: &phone,
				Role:        su.role,
			}
			if err := db.Create(&user).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		users = append(users, user)
	}

	seller := users[0]
	for i, sp := range seedProducts {
		var count int64
		if err := db.Model(&models.Product{}).Where("title = ?", sp.title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return err
		}
		increment, err := decimal.NewFromString(sp.increment)
		if err != nil {
			return err
		}

		product := models.Product{
			SellerID:      seller.ID,
			CategoryID:    categories[sp.category].ID,
			Title:         sp.title,
			Description:   sp.desc,
			StartingPrice: price,
			MinIncrement:  increment,
			AuctionEndAt:  time.Now().UTC().Add(time.Duration(3+i) * 24 * time.Hour),
			Status:        models.ProductStatusActive,
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}

		image := models.ProductImage{
			ProductID: product.ID,
			ImageURL:  "https://placehold.co/600x400?text=Product+Image",
			Position:  0,
		}
		if err := db.Create(&image).Error; err != nil {
			return err
		}
	}

	zap.L().Info("Seeding complete")
	return nil
}
