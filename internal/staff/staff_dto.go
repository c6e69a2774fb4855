package staff

type StaffResponse struct {
	ID            string `json:"id"`
	LoginID       string `json:"login_id"`
	DisplayName   string `json:"display_name"`
	HPDisplayName string `json:"hp_display_name,omitempty"`
	HomeShopID    string `json:"home_shop_id,omitempty"`
	Role          string `json:"role"`
}
