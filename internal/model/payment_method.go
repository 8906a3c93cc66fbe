package model

// ExpressHandlerShortName identifies the PayPal Express handler in the
// store's payment method catalog.
const ExpressHandlerShortName = "pay_pal_payment_handler"

type PaymentMethod struct {
	ID        string
	Name      string
	ShortName string
}

func (m PaymentMethod) IsExpress() bool { return m.ShortName == ExpressHandlerShortName }
