package models

// ConversationTurn is one persisted user/assistant exchange. Rows are
// immutable once written; the autoincrement id defines conversation order,
// so there is no timestamp column. The profile snapshot is denormalized onto
// every turn rather than kept in a separate character table.
type ConversationTurn struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SessionID   string `gorm:"column:session_id;type:text;index;not null" json:"session_id"`
	UserMessage string `gorm:"column:user_message;type:text;not null" json:"user_message"`
	AIResponse  string `gorm:"column:ai_response;type:text" json:"ai_response"`

	Profile CharacterProfile `gorm:"embedded" json:"profile"`
}

func (ConversationTurn) TableName() string { return "conversation" }
