package model

// Settings holds the admin-editable store settings.
type Settings struct {
	StoreName         string `json:"store_name"`
	ContactEmail      string `json:"contact_email"`
	Currency          string `json:"currency"`
	TwoFactorAuth     string `json:"two_factor_auth"`
	APIAccess         string `json:"api_access"`
	OrderAlerts       string `json:"order_alerts"`
	InventoryWarnings string `json:"inventory_warnings"`
}

// DefaultSettings returns the settings shown before anything has been saved.
func DefaultSettings() Settings {
	return Settings{
		Currency:          "USD ($)",
		TwoFactorAuth:     "Disabled",
		APIAccess:         "Restricted",
		OrderAlerts:       "Email Only",
		InventoryWarnings: "Email Only",
	}
}
