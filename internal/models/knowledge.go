package models

// KnowledgeItem grounds the chat assistant: Question holds the keywords a
// visitor message is matched against, Answer the canned reply material.
type KnowledgeItem struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Question string `gorm:"column:question;type:text" json:"question"`
	Answer   string `gorm:"column:answer;type:text" json:"answer"`
}

func (KnowledgeItem) TableName() string { return "assistant_knowledge" }
