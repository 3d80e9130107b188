package models

type TicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	OwnerID       uint   `gorm:"not null;index"`
	SubmitterName string `gorm:"size:200;not null"`
	Severity      string `gorm:"size:50;not null"`
	Description   string `gorm:"type:text;not null"`
	Status        string `gorm:"size:20;not null;index"`
	OnSiteHelp    bool   `gorm:"not null;default:false"`
	CreatedAt     int64  `gorm:"autoCreateTime:milli;not null"`
	ClosedAt      *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
