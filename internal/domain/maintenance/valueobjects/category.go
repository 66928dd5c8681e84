package valueobjects

import "fmt"

type Category string

const (
	CategoryElectrical Category = "electrical"
	CategoryPlumbing   Category = "plumbing"
	CategoryStructural Category = "structural"
	CategoryElevator   Category = "elevator"
	CategoryCleaning   Category = "cleaning"
	CategorySecurity   Category = "security"
	CategoryOther      Category = "other"
)

var validCategories = map[Category]bool{
	CategoryElectrical: true,
	CategoryPlumbing:   true,
	CategoryStructural: true,
	CategoryElevator:   true,
	CategoryCleaning:   true,
	CategorySecurity:   true,
	CategoryOther:      true,
}

// AllCategories returns the fixed category set in a stable order, used by the
// statistics aggregation to emit zero buckets consistently.
func AllCategories() []Category {
	return []Category{
		CategoryElectrical,
		CategoryPlumbing,
		CategoryStructural,
		CategoryElevator,
		CategoryCleaning,
		CategorySecurity,
		CategoryOther,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
