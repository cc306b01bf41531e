package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayHours is one weekday's opening window, clocks formatted HH:MM.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WeeklyHours holds one entry per weekday, indexed by time.Weekday
// (0 = Sunday). Stored as a single JSONB column.
type WeeklyHours [7]DayHours

// Value implements driver.Valuer
func (h WeeklyHours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan implements sql.Scanner
func (h *WeeklyHours) Scan(value interface{}) error {
	if value == nil {
		*h = WeeklyHours{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal weekly hours value:", value))
	}
	return json.Unmarshal(bytes, h)
}

// Facility is a hospital owning a set of providers. Its consultation
// duration is the default slot length for all its providers.
type Facility struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AdminID uuid.UUID `gorm:"type:uuid;not null;index" json:"admin_id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Address string    `gorm:"type:text" json:"address,omitempty"`
	// Geographic point resolved by the registration screens; optional.
	Latitude  *float64 `gorm:"type:double precision" json:"latitude,omitempty"`
	Longitude *float64 `gorm:"type:double precision" json:"longitude,omitempty"`
	// ConsultationDuration is the default consultation length in minutes.
	ConsultationDuration int             `gorm:"not null;default:30" json:"consultation_duration"`
	ConsultationFee      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	Hours                WeeklyHours     `gorm:"type:jsonb" json:"hours"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Admin     User       `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Providers []Provider `gorm:"foreignKey:FacilityID" json:"providers,omitempty"`
}

func (Facility) TableName() string {
	return "facilities"
}

// HoursFor returns the opening window for a weekday.
func (f *Facility) HoursFor(day time.Weekday) DayHours {
	return f.Hours[int(day)]
}

// IsOwnedBy reports whether the facility belongs to the given administrator.
func (f *Facility) IsOwnedBy(adminID uuid.UUID) bool {
	return f.AdminID == adminID
}
