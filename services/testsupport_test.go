package services

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Shenile/cafe-crm/entity"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Customer{},
		&entity.LoyaltyTier{}, &entity.LoyaltyProgram{}, &entity.LoyaltyPointsLog{},
		&entity.MenuCategory{}, &entity.MenuItem{},
		&entity.DiscountType{}, &entity.Discount{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.OrderBill{}, &entity.OrderDiscount{}, &entity.OrderPayment{},
		&entity.ReviewCategory{}, &entity.Feedback{}, &entity.Complaint{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedTiers(t *testing.T, db *gorm.DB) []entity.LoyaltyTier {
	t.Helper()
	tiers := []entity.LoyaltyTier{
		{TierName: "Bronze", MinPoints: 0, MaxPoints: 100},
		{TierName: "Silver", MinPoints: 100, MaxPoints: 500},
		{TierName: "Gold", MinPoints: 500, MaxPoints: math.MaxInt32},
	}
	for i := range tiers {
		if err := db.Create(&tiers[i]).Error; err != nil {
			t.Fatalf("seed tier: %v", err)
		}
	}
	return tiers
}

func seedCustomerWithPoints(t *testing.T, db *gorm.DB, points int) (*entity.Customer, *entity.LoyaltyProgram) {
	t.Helper()
	c := entity.Customer{Name: "Asha", MobileNo: "5550001"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	var tier entity.LoyaltyTier
	if err := db.Order("max_points").First(&tier).Error; err != nil {
		t.Fatalf("no tiers seeded: %v", err)
	}
	p := entity.LoyaltyProgram{CustomerID: c.ID, TotalPoints: points, TierID: tier.ID}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed loyalty program: %v", err)
	}
	return &c, &p
}

func seedMenuItemAt(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()
	cat := entity.MenuCategory{CategoryName: "Coffee " + name}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := entity.MenuItem{ItemName: name, Price: decimal.NewFromInt(price), CategoryID: cat.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return &item
}

// fakePrompter replays scripted answers. Empty queues return zero values, so
// confirm-driven loops stop once the script runs out.
type fakePrompter struct {
	bools    []bool
	ints     []int
	decimals []decimal.Decimal
	strs     []string
	enums    []string
	forms    []map[string]any

	said   []string
	tables []string
}

func (f *fakePrompter) popBool() bool {
	if len(f.bools) == 0 {
		return false
	}
	v := f.bools[0]
	f.bools = f.bools[1:]
	return v
}

func (f *fakePrompter) PromptInt(string) int {
	if len(f.ints) == 0 {
		return 0
	}
	v := f.ints[0]
	f.ints = f.ints[1:]
	return v
}

func (f *fakePrompter) PromptDecimal(string) decimal.Decimal {
	if len(f.decimals) == 0 {
		return decimal.Zero
	}
	v := f.decimals[0]
	f.decimals = f.decimals[1:]
	return v
}

func (f *fakePrompter) PromptString(string) string {
	if len(f.strs) == 0 {
		return ""
	}
	v := f.strs[0]
	f.strs = f.strs[1:]
	return v
}

func (f *fakePrompter) PromptBool(string) bool { return f.popBool() }

func (f *fakePrompter) PromptDate(string) time.Time      { return time.Time{} }
func (f *fakePrompter) PromptTimestamp(string) time.Time { return time.Time{} }

func (f *fakePrompter) PromptEnum(_ string, options []string) string {
	if len(f.enums) == 0 {
		return options[0]
	}
	v := f.enums[0]
	f.enums = f.enums[1:]
	return v
}

func (f *fakePrompter) ConfirmYesNo(string) bool { return f.popBool() }

func (f *fakePrompter) PresentMenu(string, []string) int {
	return f.PromptInt("")
}

func (f *fakePrompter) RenderTable(title string, _ []string, _ [][]string) {
	f.tables = append(f.tables, title)
}

func (f *fakePrompter) Say(format string, args ...any) {
	f.said = append(f.said, fmt.Sprintf(format, args...))
}

func (f *fakePrompter) CollectForm(_ string, fields []Field) map[string]any {
	if len(f.forms) == 0 {
		out := make(map[string]any, len(fields))
		for _, fl := range fields {
			switch fl.Kind {
			case FieldString:
				out[fl.Name] = ""
			case FieldInteger:
				out[fl.Name] = 0
			case FieldDecimal:
				out[fl.Name] = decimal.Zero
			case FieldBool:
				out[fl.Name] = false
			case FieldDate, FieldTimestamp:
				out[fl.Name] = time.Time{}
			case FieldEnum:
				out[fl.Name] = fl.Options[0]
			}
		}
		return out
	}
	v := f.forms[0]
	f.forms = f.forms[1:]
	return v
}
