package domain

// PaymentMethod is how the customer pays for a checkout
type PaymentMethod string

const (
	PaymentMethodPrepaid PaymentMethod = "prepaid"
	PaymentMethodCOD     PaymentMethod = "cod"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodPrepaid, PaymentMethodCOD:
		return true
	default:
		return false
	}
}

// RequiresVerification reports whether a gateway signature must be checked
// before the order ships. Cash-on-delivery orders carry no payment proof.
func (m PaymentMethod) RequiresVerification() bool {
	return m == PaymentMethodPrepaid
}

// ProviderLabel is the payment_method value the shipping provider expects
func (m PaymentMethod) ProviderLabel() string {
	if m == PaymentMethodCOD {
		return "COD"
	}
	return "Prepaid"
}
