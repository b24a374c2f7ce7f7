package model

// BusinessModel mirrors the 'businesses' table.
type BusinessModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"column:business_name;type:varchar(50);not null;index"`
	City        string `gorm:"type:varchar(100);not null;default:Unspecified"`
	Region      string `gorm:"type:varchar(100);not null;default:Unspecified"`
	Description string `gorm:"column:business_description;type:text"`
	Logo        string `gorm:"type:varchar(255);not null;default:default.jpg"`
	OwnerID     int64  `gorm:"not null;index"`

	Products []ProductModel `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
