package entity

import "time"

// Treatment is a bookable catalog entry. Price is in minor currency
// units, Duration in minutes. Pure reference data, no status lifecycle.
type Treatment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int64     `gorm:"not null" json:"price"`
	Duration    int       `gorm:"not null" json:"duration"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Treatment) TableName() string {
	return "treatments"
}

// DefaultTreatments seeds the catalog on first boot when it is empty.
func DefaultTreatments() []Treatment {
	return []Treatment{
		{Name: "Facial Treatment", Description: "Deep cleansing and moisturizing facial", Price: 150000, Duration: 60},
		{Name: "Body Massage", Description: "Relaxing full body massage", Price: 200000, Duration: 90},
		{Name: "Hair Treatment", Description: "Nourishing hair mask and styling", Price: 100000, Duration: 45},
		{Name: "Manicure & Pedicure", Description: "Complete nail care and polish", Price: 80000, Duration: 60},
		{Name: "Body Scrub", Description: "Exfoliating body treatment", Price: 120000, Duration: 45},
	}
}
