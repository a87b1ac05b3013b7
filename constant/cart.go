package constant

type CartStatus int

const (
	CartStatusActive    CartStatus = 1
	CartStatusPurchased CartStatus = 2
	CartStatusAbandoned CartStatus = 3
)
