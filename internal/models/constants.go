package models

// ============================================================================
// CATEGORY CONSTANTS
// ============================================================================

// DefaultCategories are always offered, even when no task uses them
var DefaultCategories = []string{"Household", "Personal", "Study"}

// AddNewCategoryMarker is the picker entry that prompts for a custom
// category. It is never a real category.
const AddNewCategoryMarker = "+ New category..."

// UncategorizedLabel is shown in place of an empty category
const UncategorizedLabel = "Uncategorized"

// ============================================================================
// FILTER SENTINELS
// ============================================================================

// Filter values that mean "do not filter on this field"
const (
	AllCategories = "All categories"
	AllStatuses   = "All statuses"
)
