package models

type MessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	SenderID   uint   `gorm:"not null;index"`
	SenderRole string `gorm:"size:20;not null"`
	Content    string `gorm:"type:text;not null"`
	ReadByUser bool   `gorm:"not null;default:false"`
	ReadByTech bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (MessageModel) TableName() string {
	return "ticket_messages"
}
