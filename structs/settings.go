package structs

// Settings is the nested preference tree. Leafs are independent; there are no
// cross-field invariants.
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	App           AppSettings          `json:"app"`
}

type NotificationSettings struct {
	PushNotifications  bool `json:"pushNotifications"`
	EmailNotifications bool `json:"emailNotifications"`
	EventReminders     bool `json:"eventReminders"`
	NewEvents          bool `json:"newEvents"`
	WeeklyDigest       bool `json:"weeklyDigest"`
}

type PrivacySettings struct {
	LocationServices bool `json:"locationServices"`
	ShareActivity    bool `json:"shareActivity"`
	PublicProfile    bool `json:"publicProfile"`
}

type AppSettings struct {
	DarkMode     bool   `json:"darkMode"`
	Language     string `json:"language"` // english, spanish, creole
	AutoPlay     bool   `json:"autoPlay"`
	SoundEffects bool   `json:"soundEffects"`
}

func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{
			PushNotifications: true,
			EventReminders:    true,
			NewEvents:         true,
		},
		Privacy: PrivacySettings{
			LocationServices: true,
		},
		App: AppSettings{
			Language:     "english",
			AutoPlay:     true,
			SoundEffects: true,
		},
	}
}
