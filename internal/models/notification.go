package models

import "time"

// NotificationSetting is one key of the admin-editable mail template
// configuration. Keys outside NotificationSettingKeys are never persisted.
type NotificationSetting struct {
	SettingKey   string    `gorm:"size:128;primaryKey"`
	SettingValue string    `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

const (
	SettingAdminNotifyEnabled   = "admin_notify_enabled"
	SettingAdminNotifySubject   = "admin_notify_subject"
	SettingAdminNotifyBody      = "admin_notify_body"
	SettingUserWelcomeEnabled   = "user_welcome_enabled"
	SettingUserWelcomeSubject   = "user_welcome_subject"
	SettingUserWelcomeBody      = "user_welcome_body"
	SettingPasswordResetSubject = "password_reset_subject"
	SettingPasswordResetBody    = "password_reset_body"
)

// NotificationSettingKeys is the closed set of recognized setting keys.
var NotificationSettingKeys = []string{
	SettingAdminNotifyEnabled,
	SettingAdminNotifySubject,
	SettingAdminNotifyBody,
	SettingUserWelcomeEnabled,
	SettingUserWelcomeSubject,
	SettingUserWelcomeBody,
	SettingPasswordResetSubject,
	SettingPasswordResetBody,
}

// DefaultNotificationSettings are the baked-in templates used when a key has
// never been saved. Bodies use {{name}}, {{email}}, {{date}}, {{login_url}},
// {{reset_link}} and {{signature}} placeholders.
func DefaultNotificationSettings() map[string]string {
	return map[string]string{
		SettingAdminNotifyEnabled:   "1",
		SettingAdminNotifySubject:   "[YCSマッチング] 新規登録がありました",
		SettingAdminNotifyBody:      "新規登録がありました。\n\n名前: {{name}}\nメールアドレス: {{email}}\n登録日時: {{date}}\n\n{{signature}}",
		SettingUserWelcomeEnabled:   "1",
		SettingUserWelcomeSubject:   "[YCSマッチング] 登録が完了しました",
		SettingUserWelcomeBody:      "{{name}} 様\n\nYCSマッチングプラットフォームへの登録が完了しました。\n\nこのメールアドレスと登録時にお決めいただいたパスワードで、以下のURLからログインできます。\n\nログインURL: {{login_url}}\n\n{{signature}}",
		SettingPasswordResetSubject: "[YCSマッチング] パスワード再設定のご案内",
		SettingPasswordResetBody:    "パスワード再設定のリクエストを受け付けました。\n\n以下のリンクをクリックし、新しいパスワードを設定してください。\n（有効期限: 1時間）\n\n{{reset_link}}\n\nこのメールに心当たりがない場合は、無視してください。\n\n{{signature}}",
	}
}

// IsNotificationSettingKey reports whether key belongs to the recognized set.
func IsNotificationSettingKey(key string) bool {
	for _, k := range NotificationSettingKeys {
		if k == key {
			return true
		}
	}
	return false
}
