package models

// Category represents a named spending bucket owned by exactly one user.
// Category names are unique within an owner's scope, not globally.
// Categories are never hard-deleted, only deactivated, so historical
// payments always keep a resolvable category label. CreatedAt doubles as
// the tie-break for the option sorter: the first-created category is the
// default form selection.
type Category struct {
	Base
	UserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_categories_owner_name,priority:1" json:"user_id"`
	Name     string `gorm:"not null;uniqueIndex:idx_categories_owner_name,priority:2" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Payments []Payment `gorm:"foreignKey:CategoryID" json:"payments,omitempty"`
}
