package domain

// PaymentMethod is how a customer settles a service order or how a manual
// transaction was paid.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "dinheiro"
	PaymentPix          PaymentMethod = "pix"
	PaymentDebitCard    PaymentMethod = "cartao_debito"
	PaymentCreditCard   PaymentMethod = "cartao_credito"
	PaymentStoreCredit  PaymentMethod = "crediario"
	PaymentBankTransfer PaymentMethod = "transferencia"
	PaymentBilletSlip   PaymentMethod = "boleto"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentCash:         "Dinheiro",
	PaymentPix:          "PIX",
	PaymentDebitCard:    "Cartão de Débito",
	PaymentCreditCard:   "Cartão de Crédito",
	PaymentStoreCredit:  "Crediário",
	PaymentBankTransfer: "Transferência",
	PaymentBilletSlip:   "Boleto",
}

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

// Label returns the human readable name of the method.
func (m PaymentMethod) Label() string {
	if l, ok := paymentMethodLabels[m]; ok {
		return l
	}
	return string(m)
}

// SettlesImmediately is true for methods where money is in hand at checkout.
func (m PaymentMethod) SettlesImmediately() bool {
	return m == PaymentCash || m == PaymentPix
}

// IsCard reports whether m is a debit or credit card.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentDebitCard || m == PaymentCreditCard
}
