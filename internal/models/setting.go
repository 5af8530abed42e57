package models

// Assistant setting keys the admin dashboard can edit.
const (
	SettingSystemPrompt  = "system_prompt"
	SettingCurrentStatus = "current_status"
)

type AssistantSetting struct {
	Key   string `gorm:"column:key;type:text;primaryKey" json:"key"`
	Value string `gorm:"column:value;type:text" json:"value"`
}

func (AssistantSetting) TableName() string { return "assistant_settings" }

// KnownSettingKey reports whether key is one of the editable settings.
func KnownSettingKey(key string) bool {
	return key == SettingSystemPrompt || key == SettingCurrentStatus
}
