package configs

import (
	"log"
	"math"

	"github.com/Shenile/cafe-crm/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedCatalog fills the lookup tables on first run: loyalty tiers, menu,
// discount types and catalog discounts, review categories.
func SeedCatalog(db *gorm.DB) error {
	// Tiers in max_points ascending order; the last one is unbounded.
	tiers := []entity.LoyaltyTier{
		{TierName: "Bronze", MinPoints: 0, MaxPoints: 100},
		{TierName: "Silver", MinPoints: 100, MaxPoints: 500},
		{TierName: "Gold", MinPoints: 500, MaxPoints: math.MaxInt32},
	}
	for _, t := range tiers {
		if err := db.FirstOrCreate(&entity.LoyaltyTier{}, entity.LoyaltyTier{TierName: t.TierName}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.LoyaltyTier{}).
			Where("tier_name = ?", t.TierName).
			Updates(map[string]any{"min_points": t.MinPoints, "max_points": t.MaxPoints}).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{entity.DiscountTypeFlat, entity.DiscountTypePercentage} {
		if err := db.FirstOrCreate(&entity.DiscountType{}, entity.DiscountType{TypeName: name}).Error; err != nil {
			return err
		}
	}

	var flat, percentage entity.DiscountType
	db.Where("type_name = ?", entity.DiscountTypeFlat).First(&flat)
	db.Where("type_name = ?", entity.DiscountTypePercentage).First(&percentage)

	discounts := []entity.Discount{
		{DiscountName: "Weekday 20 off", TypeID: flat.ID,
			DiscountValue: decimal.NewFromInt(20), MinOrderValue: decimal.NewFromInt(100), IsActive: true},
		{DiscountName: "Regulars 10%", TypeID: percentage.ID,
			DiscountValue: decimal.NewFromInt(10), MinOrderValue: decimal.NewFromInt(50), IsActive: true},
	}
	for _, d := range discounts {
		if err := db.FirstOrCreate(&entity.Discount{}, entity.Discount{DiscountName: d.DiscountName}).Error; err != nil {
			return err
		}
		if err := db.Model(&entity.Discount{}).Where("discount_name = ?", d.DiscountName).
			Updates(map[string]any{
				"type_id":         d.TypeID,
				"discount_value":  d.DiscountValue,
				"min_order_value": d.MinOrderValue,
				"is_active":       d.IsActive,
			}).Error; err != nil {
			return err
		}
	}

	for _, name := range []string{"Espresso", "Latte", "Cold Brew"} {
		seedMenuItem(db, "Coffee", name)
	}
	for _, name := range []string{"Croissant", "Banana Bread"} {
		seedMenuItem(db, "Bakery", name)
	}

	for _, name := range []string{"Service", "Food Quality", "Ambience", "Pricing"} {
		if err := db.FirstOrCreate(&entity.ReviewCategory{}, entity.ReviewCategory{CategoryName: name}).Error; err != nil {
			return err
		}
	}

	log.Println("catalog tables seeded")
	return nil
}

var seedPrices = map[string]decimal.Decimal{
	"Espresso":     decimal.NewFromInt(60),
	"Latte":        decimal.NewFromInt(80),
	"Cold Brew":    decimal.NewFromInt(90),
	"Croissant":    decimal.NewFromInt(50),
	"Banana Bread": decimal.NewFromInt(45),
}

func seedMenuItem(db *gorm.DB, category, name string) {
	var cat entity.MenuCategory
	db.FirstOrCreate(&cat, entity.MenuCategory{CategoryName: category})

	var item entity.MenuItem
	db.Where("item_name = ?", name).First(&item)
	if item.ID == 0 {
		db.Create(&entity.MenuItem{ItemName: name, Price: seedPrices[name], CategoryID: cat.ID})
	}
}
