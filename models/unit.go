package models

// UnitStatus represents the occupancy status of a unit
type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "vacant"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

// Unit represents a rentable unit on a floor
type Unit struct {
	BaseModel
	Number  string     `gorm:"type:varchar(20);not null" json:"number"`          // e.g. "G1", "1A"
	Type    string     `gorm:"type:varchar(50);not null" json:"type"`            // e.g. "studio", "one bedroom"
	Status  UnitStatus `gorm:"type:varchar(20);default:'vacant'" json:"status"`  // vacant, occupied, maintenance
	Rent    float64    `gorm:"not null;default:0" json:"rent"`                   // monthly rent
	FloorID uint       `gorm:"index;not null" json:"floor_id"`

	// Relations
	Floor  *Floor  `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
	Tenant *Tenant `gorm:"foreignKey:UnitID" json:"tenant,omitempty"`
}
