package option

// Option types used by the coded fields on submissions. zone_facility entries
// cascade on zone: a facility label is only valid under its owning zone.
const (
	TypeFormStatus           = "form_status"
	TypeZone                 = "zone"
	TypeZoneFacility         = "zone_facility"
	TypeFacilityZoneLocation = "facility_zone_location"
)

type Entry struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"-"`
	OptionType  string `gorm:"column:option_type;size:50;not null;index" json:"option_type"`
	OptionKey   string `gorm:"column:option_key;size:50;not null" json:"option_key"`
	OptionValue string `gorm:"column:option_value;size:200;not null" json:"option_value"`
	CascadeType string `gorm:"column:cascade_type;size:50" json:"cascade_type"`
	CascadeKey  string `gorm:"column:cascade_key;size:50" json:"cascade_key"`
	IsActive    bool   `gorm:"column:is_active;default:true" json:"is_active"`
}

func (Entry) TableName() string { return "form_options" }
