package store

// SeedApps is the compiled-in app catalog used until a real usage source
// writes its own. Usage numbers give the dashboard something to show on
// first run.
func SeedApps() []AppRecord {
	return []AppRecord{
		{ID: "instagram", Name: "Instagram", Category: "Social", UsageMinutes: 87, DailyLimit: 60, Opens: 23, Notifications: 45, ShortForm: true},
		{ID: "youtube", Name: "YouTube", Category: "Entertainment", UsageMinutes: 65, DailyLimit: 90, Opens: 12, Notifications: 8, ShortForm: true},
		{ID: "twitter", Name: "X (Twitter)", Category: "Social", UsageMinutes: 42, DailyLimit: 45, Opens: 18, Notifications: 32},
		{ID: "tiktok", Name: "TikTok", Category: "Social", UsageMinutes: 110, DailyLimit: 30, Opens: 8, Notifications: 15, ShortForm: true},
		{ID: "whatsapp", Name: "WhatsApp", Category: "Communication", UsageMinutes: 35, DailyLimit: 120, Opens: 40, Notifications: 67},
		{ID: "snapchat", Name: "Snapchat", Category: "Social", UsageMinutes: 28, DailyLimit: 30, Opens: 15, Notifications: 22, ShortForm: true},
		{ID: "chrome", Name: "Chrome", Category: "Productivity", UsageMinutes: 55, Opens: 30, Notifications: 5},
		{ID: "gmail", Name: "Gmail", Category: "Productivity", UsageMinutes: 18, Opens: 12, Notifications: 28},
		{ID: "reddit", Name: "Reddit", Category: "Social", UsageMinutes: 48, DailyLimit: 45, Opens: 9, Notifications: 11},
		{ID: "netflix", Name: "Netflix", Category: "Entertainment", UsageMinutes: 72, DailyLimit: 120, Opens: 3, Notifications: 2},
	}
}
