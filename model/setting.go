package model

// SettingEntity is a singleton key/value row of the settings table.
type SettingEntity struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}

type SocialLinksRequest struct {
	FacebookURL  string `json:"facebook_url"`
	WhatsappURL  string `json:"whatsapp_url"`
	InstagramURL string `json:"instagram_url"`
}

type SocialLinksResponse struct {
	FacebookURL  string `json:"facebook_url"`
	WhatsappURL  string `json:"whatsapp_url"`
	InstagramURL string `json:"instagram_url"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type StatsResponse struct {
	TotalCars           int64 `json:"total_cars"`
	AvailableCars       int64 `json:"available_cars"`
	TotalSales          int64 `json:"total_sales"`
	PendingSellRequests int64 `json:"pending_sell_requests"`
	PendingServices     int64 `json:"pending_services"`
}
