package storeclient

type currencyDTO struct {
	ID      string `json:"id"`
	IsoCode string `json:"isoCode"`
}

type paymentMethodDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type salesChannelContextDTO struct {
	Token         string           `json:"token"`
	Currency      currencyDTO      `json:"currency"`
	PaymentMethod paymentMethodDTO `json:"paymentMethod"`
}

type updateContextRequest struct {
	PaymentMethodID string `json:"paymentMethodId"`
}

type paymentMethodListRequest struct {
	OnlyAvailable bool `json:"onlyAvailable"`
}

type paymentMethodListResponse struct {
	Elements []paymentMethodDTO `json:"elements"`
}

type lineItemDTO struct {
	ID           string `json:"id"`
	ReferencedID string `json:"referencedId"`
	Type         string `json:"type"`
	Quantity     int    `json:"quantity"`
}

type cartDTO struct {
	Token     string        `json:"token"`
	LineItems []lineItemDTO `json:"lineItems"`
}

type addLineItemsRequest struct {
	Items []lineItemDTO `json:"items"`
}

type createOrderResponse struct {
	Token string `json:"token"`
}

type prepareCheckoutRequest struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Errors []struct {
		Code   string `json:"code"`
		Status string `json:"status"`
		Detail string `json:"detail"`
	} `json:"errors"`
}
