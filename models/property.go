package models

// Property represents a rental property managed by a landlord
type Property struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Location string `gorm:"type:varchar(200);not null" json:"location"`
	Type     string `gorm:"type:varchar(50);not null" json:"type"` // e.g. "Apartment", "Townhouse"
	Image    string `gorm:"type:varchar(500)" json:"image,omitempty"`

	// Relations
	Floors []Floor `gorm:"foreignKey:PropertyID" json:"floors,omitempty"`
}

// Floor represents one floor of a property
type Floor struct {
	BaseModel
	Name       string `gorm:"type:varchar(50);not null" json:"name"`
	PropertyID uint   `gorm:"index;not null" json:"property_id"`

	// Relations
	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Units    []Unit    `gorm:"foreignKey:FloorID" json:"units,omitempty"`
}
