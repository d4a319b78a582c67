package seed

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/petcute_backend/internal/hash"
	"github.com/Skotchmaster/petcute_backend/internal/models"
)

// Run loads the demo catalog and admin account. Tables that already have
// rows are left alone, so running it twice is safe.
func Run(db *gorm.DB) error {
	categoryIDs, err := seedCategories(db)
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := seedProducts(db, categoryIDs); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := seedAdmin(db); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

// seedCategories returns the id of every demo category by name, whether it
// was just created or already present, so products never attach to guessed ids.
func seedCategories(db *gorm.DB) (map[string]uint, error) {
	ids := make(map[string]uint, 3)
	for _, name := range []string{"Casual", "Elegante", "Cumpleaños"} {
		var category models.Category
		if err := db.Where("name = ?", name).FirstOrCreate(&category, models.Category{Name: name}).Error; err != nil {
			return nil, err
		}
		ids[name] = category.ID
	}
	return ids, nil
}

func seedProducts(db *gorm.DB, categoryIDs map[string]uint) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Suéter con corazones", Description: "Suéter tejido con estampado de corazones", Price: 15000, Stock: 10, Size: 3, CategoryID: categoryIDs["Casual"], ImageURL: "https://via.placeholder.com/300x300/FFB6C1/ffffff?text=Su%C3%A9ter+Corazones"},
		{Name: "Camiseta básica", Description: "Camiseta de algodón para el día a día", Price: 8000, Stock: 15, Size: 2, CategoryID: categoryIDs["Casual"], ImageURL: "https://via.placeholder.com/300x300/ADD8E6/ffffff?text=Camiseta+B%C3%A1sica"},
		{Name: "Chaqueta ligera", Description: "Chaqueta impermeable para paseos", Price: 20000, Stock: 5, Size: 4, CategoryID: categoryIDs["Casual"], ImageURL: "https://via.placeholder.com/300x300/98FF98/ffffff?text=Chaqueta+Ligera"},
		{Name: "Vestido de gala", Description: "Vestido elegante para ocasiones especiales", Price: 25000, Stock: 3, Size: 3, CategoryID: categoryIDs["Elegante"], ImageURL: "https://via.placeholder.com/300x300/FFFACD/ffffff?text=Vestido+de+Gala"},
		{Name: "Corbata elegante", Description: "Corbata ajustable con broche", Price: 5000, Stock: 8, Size: 1, CategoryID: categoryIDs["Elegante"], ImageURL: "https://via.placeholder.com/300x300/FFD700/ffffff?text=Corbata+Elegante"},
		{Name: "Sombrero de fiesta", Description: "Sombrero festivo con elástico", Price: 7000, Stock: 6, Size: 2, CategoryID: categoryIDs["Elegante"], ImageURL: "https://via.placeholder.com/300x300/4F46E5/ffffff?text=Sombrero+de+Fiesta"},
		{Name: "Disfraz de superhéroe", Description: "Disfraz con capa incluida", Price: 18000, Stock: 4, Size: 3, CategoryID: categoryIDs["Cumpleaños"], ImageURL: "https://via.placeholder.com/300x300/EF4444/ffffff?text=Superh%C3%A9roe"},
		{Name: "Tutu rosa", Description: "Tutu de tul para celebraciones", Price: 12000, Stock: 7, Size: 2, CategoryID: categoryIDs["Cumpleaños"], ImageURL: "https://via.placeholder.com/300x300/FF69B4/ffffff?text=Tutu+Rosa"},
	}
	return db.Create(&products).Error
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pwHash, err := hash.HashPassword("password123")
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin",
		Email:        "admin@petcute.com",
		PasswordHash: pwHash,
	}
	return db.Create(&admin).Error
}
