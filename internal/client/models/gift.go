package models

// Gift is a store catalog item.
type Gift struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Price       int64  `json:"price"`
	Category    string `json:"category,omitempty"`
	Rating      int    `json:"rating,omitempty"`
}

// OwnedGift ties the user to a purchased gift instance.
type OwnedGift struct {
	ID            int64  `json:"id"`
	GiftID        int64  `json:"gift_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ImageEmoji    string `json:"image_emoji,omitempty"`
	PurchasePrice int64  `json:"purchase_price"`
	PurchasedAt   string `json:"purchased_at,omitempty"`
	IsOnSale      bool   `json:"is_on_sale"`
	SalePrice     int64  `json:"sale_price,omitempty"`
}

// Listing is a gift offered for resale by another user on the P2P market.
type Listing struct {
	UserGiftID       int64  `json:"user_gift_id"`
	GiftID           int64  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category,omitempty"`
	ImageEmoji       string `json:"image_emoji,omitempty"`
	SalePrice        int64  `json:"sale_price"`
	SellerName       string `json:"seller_name"`
	TransactionCount int64  `json:"transaction_count"`
	PurchasedAt      string `json:"purchased_at,omitempty"`
}

// GiftTransaction is one immutable entry in a gift's ownership history.
// SellerName is empty for the initial store purchase.
type GiftTransaction struct {
	ID              int64  `json:"id"`
	GiftID          int64  `json:"gift_id"`
	GiftName        string `json:"gift_name,omitempty"`
	BuyerName       string `json:"buyer_name"`
	SellerName      string `json:"seller_name,omitempty"`
	Price           int64  `json:"price"`
	TransactionType string `json:"transaction_type,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// SellerLabel returns the seller display name, substituting "Store" for the
// initial purchase where no seller user exists.
func (t GiftTransaction) SellerLabel() string {
	if t.SellerName == "" {
		return "Store"
	}
	return t.SellerName
}
