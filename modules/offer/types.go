package offer

// CreateOfferRequest is the request for creating an offer. DiscountValue is
// a pointer so that an explicit zero passes the required-field check.
type CreateOfferRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	DiscountType  string   `json:"discountType"`
	DiscountValue *float64 `json:"discountValue"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	Status        string   `json:"status"`
	Products      []string `json:"products"`
}

// GetOfferRequest is the request for fetching a single offer.
type GetOfferRequest struct {
	ID string `json:"id"`
}

// ListOffersRequest is the request for listing offers.
type ListOffersRequest struct{}

// ListOffersResponse contains all offers, newest first.
type ListOffersResponse struct {
	Offers []Offer `json:"offers"`
	Total  int     `json:"total"`
}

// UpdateOfferRequest is the request for updating an offer. Only fields
// present in the payload are written.
type UpdateOfferRequest struct {
	ID            string    `json:"id"`
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	DiscountType  *string   `json:"discountType,omitempty"`
	DiscountValue *float64  `json:"discountValue,omitempty"`
	StartDate     *string   `json:"startDate,omitempty"`
	EndDate       *string   `json:"endDate,omitempty"`
	Status        *string   `json:"status,omitempty"`
	Products      *[]string `json:"products,omitempty"`
}

// DeleteOfferRequest is the request for deleting an offer.
type DeleteOfferRequest struct {
	ID string `json:"id"`
}

// DeleteOfferResponse confirms a deletion.
type DeleteOfferResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
