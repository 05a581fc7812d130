package database

import (
	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Migrate applies the schema for every model, reference data first so that
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Country{},
		&models.City{},
		&models.Address{},
		&models.User{},
		&models.Brand{},
		&models.Pizzeria{},
		&models.Menu{},
		&models.Ingredient{},
		&models.Pizza{},
		&models.OAuthClient{},
		&models.OAuthCode{},
		&models.OAuthToken{},
	)
}

// SeedIfEmpty loads a small demo catalog on a fresh database so the search
// endpoints return something out of the box. A database with any pizzeria in
// it is left untouched.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Pizzeria{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(seedDemoCatalog)
}

func seedDemoCatalog(tx *gorm.DB) error {
	country := models.Country{Name: "Poland", ISOCode: "PL"}
	if err := tx.Create(&country).Error; err != nil {
		return err
	}

	city := models.City{CountryID: country.ID, Name: "Warsaw", Region: "Mazowieckie"}
	if err := tx.Create(&city).Error; err != nil {
		return err
	}

	owner := models.User{
		Email:    "owner@pizza-market.dev",
		Name:     "Demo Owner",
		Password: "demo-owner-password",
		Role:     models.RoleOwner,
	}
	if err := owner.HashPassword(); err != nil {
		return err
	}
	if err := tx.Create(&owner).Error; err != nil {
		return err
	}

	brand := models.Brand{Name: "Bella Napoli", OwnerID: owner.ID}
	if err := tx.Create(&brand).Error; err != nil {
		return err
	}

	address := models.Address{
		CityID:         city.ID,
		Street:         "Nowy Świat",
		BuildingNumber: "15",
		ZipCode:        "00-029",
	}
	if err := tx.Create(&address).Error; err != nil {
		return err
	}

	pizzeria := models.Pizzeria{
		BrandID:                       brand.ID,
		AddressID:                     address.ID,
		Name:                          "Bella Napoli Centrum",
		PhoneNumber:                   "+48 22 123 45 67",
		DeliveryCost:                  decimal.NewFromFloat(7.99),
		MinOrderAmount:                decimal.NewFromInt(40),
		ServiceFee:                    decimal.NewFromFloat(1.50),
		AveragePreparationTimeMinutes: 35,
		MaxDeliveryRangeKm:            8,
	}
	if err := tx.Create(&pizzeria).Error; err != nil {
		return err
	}

	menu := models.Menu{PizzeriaID: pizzeria.ID, Name: "Menu Bella Napoli Centrum", IsActive: true}
	if err := tx.Create(&menu).Error; err != nil {
		return err
	}

	ingredients := []models.Ingredient{
		{Name: "Mozzarella"},
		{Name: "Tomato Sauce"},
		{Name: "Basil"},
		{Name: "Pepperoni", IsMeat: true},
		{Name: "Gorgonzola", IsAllergen: true},
	}
	for i := range ingredients {
		if err := tx.Create(&ingredients[i]).Error; err != nil {
			return err
		}
	}

	pizzas := []models.Pizza{
		{
			MenuID:      menu.ID,
			Name:        "Margherita",
			Description: "Tomato sauce, mozzarella, fresh basil",
			Price:       decimal.NewFromFloat(29.99),
			Style:       models.StyleNeapolitan,
			Dough:       models.DoughWheat,
			BaseSauce:   models.SauceTomato,
			Thickness:   models.ThicknessThin,
			Shape:       models.ShapeRound,
			DiameterCm:  32,
			WeightGrams: 480,
			Kcal:        1120,
			Ingredients: []models.Ingredient{ingredients[0], ingredients[1], ingredients[2]},
		},
		{
			MenuID:      menu.ID,
			Name:        "Pepperoni",
			Description: "Tomato sauce, mozzarella, pepperoni",
			Price:       decimal.NewFromFloat(36.99),
			Style:       models.StyleAmerican,
			Dough:       models.DoughWheat,
			BaseSauce:   models.SauceTomato,
			Thickness:   models.ThicknessMedium,
			Shape:       models.ShapeRound,
			DiameterCm:  40,
			WeightGrams: 720,
			Kcal:        1980,
			Ingredients: []models.Ingredient{ingredients[0], ingredients[1], ingredients[3]},
		},
		{
			MenuID:      menu.ID,
			Name:        "Sicilian Corner",
			Description: "Thick rectangular slab with gorgonzola",
			Price:       decimal.NewFromFloat(41.50),
			Style:       models.StyleSicilian,
			Dough:       models.DoughSourdough,
			BaseSauce:   models.SauceCream,
			Thickness:   models.ThicknessThick,
			Shape:       models.ShapeRectangle,
			WidthCm:     25,
			LengthCm:    35,
			WeightGrams: 950,
			Kcal:        2450,
			Ingredients: []models.Ingredient{ingredients[0], ingredients[4]},
		},
	}
	for i := range pizzas {
		if err := tx.Create(&pizzas[i]).Error; err != nil {
			return err
		}
	}

	log.Info("Database seeded successfully")
	return nil
}
