// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Category groups constraints and attributes by concern
type Category string

const (
	CategoryBudget      Category = "budget"
	CategoryPerformance Category = "performance"
	CategoryScalability Category = "scalability"
	CategoryTeam        Category = "team"
	CategoryOperational Category = "operational"
	CategoryOther       Category = "other"
)

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is a known category
func (c Category) IsValid() bool {
	switch c {
	case CategoryBudget, CategoryPerformance, CategoryScalability,
		CategoryTeam, CategoryOperational, CategoryOther:
		return true
	default:
		return false
	}
}

// Confidence labels how well a trade-off is supported
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IsValid checks if the confidence label is known
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}
