package model

type SessionContext struct {
	Token           string
	CurrencyISO     string
	PaymentMethodID string
}
