// Package taxonomy defines the closed set of expense categories and
// their classification into fixed and variable costs.
package taxonomy

// Category classifies the purpose of an expense.
type Category string

const (
	CategoryHousing          Category = "住居費"
	CategoryInsurance        Category = "保険料"
	CategoryCommunication    Category = "通信費"
	CategoryCar              Category = "自動車費"
	CategoryUtilities        Category = "水道光熱費"
	CategoryEducation        Category = "教育費"
	CategoryFood             Category = "食費"
	CategoryDailyNecessities Category = "日用品費"
	CategoryEatingOut        Category = "外食"
	CategorySocializing      Category = "交際費"
	CategoryTransport        Category = "交通費"
	CategoryMedical          Category = "医療費"
	CategoryBeauty           Category = "美容費"
	CategorySpecial          Category = "特別費"
	CategoryOther            Category = "その他"
)

// ExpenseType splits categories into recurring (fixed) and
// discretionary (variable) spending.
type ExpenseType string

const (
	Fixed    ExpenseType = "固定費"
	Variable ExpenseType = "変動費"
)

// All lists every category in display order.
var All = []Category{
	CategoryHousing,
	CategoryInsurance,
	CategoryCommunication,
	CategoryCar,
	CategoryUtilities,
	CategoryEducation,
	CategoryFood,
	CategoryDailyNecessities,
	CategoryEatingOut,
	CategorySocializing,
	CategoryTransport,
	CategoryMedical,
	CategoryBeauty,
	CategorySpecial,
	CategoryOther,
}

// expenseTypes must have an entry for every member of All.
var expenseTypes = map[Category]ExpenseType{
	CategoryHousing:          Fixed,
	CategoryInsurance:        Fixed,
	CategoryCommunication:    Fixed,
	CategoryCar:              Fixed,
	CategoryUtilities:        Fixed,
	CategoryEducation:        Fixed,
	CategoryFood:             Variable,
	CategoryDailyNecessities: Variable,
	CategoryEatingOut:        Variable,
	CategorySocializing:      Variable,
	CategoryTransport:        Variable,
	CategoryMedical:          Variable,
	CategoryBeauty:           Variable,
	CategorySpecial:          Variable,
	CategoryOther:            Variable,
}

// Valid reports whether c is a member of the taxonomy.
func (c Category) Valid() bool {
	_, ok := expenseTypes[c]
	return ok
}

// Type returns the expense type for the category. Categories that are
// not part of the taxonomy (records can outlive a taxonomy change) are
// reported as Variable with ok set to false.
func (c Category) Type() (t ExpenseType, ok bool) {
	t, ok = expenseTypes[c]
	if !ok {
		return Variable, false
	}
	return t, true
}

// Normalize maps an arbitrary label to a taxonomy member, substituting
// CategoryOther for anything unrecognized.
func Normalize(label string) Category {
	c := Category(label)
	if c.Valid() {
		return c
	}
	return CategoryOther
}
