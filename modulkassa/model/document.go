package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// FN expects money as plain JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type DocType string

const (
	DocTypeSale   DocType = "SALE"
	DocTypeReturn DocType = "RETURN"
)

type PaymentType string

const (
	PaymentTypeCash PaymentType = "CASH"
	PaymentTypeCard PaymentType = "CARD"
)

// MoneyPosition is the payment part of a fiscal document.
type MoneyPosition struct {
	PaymentType PaymentType     `json:"paymentType"`
	Sum         decimal.Decimal `json:"sum"`
}

// InventPosition is a single taxed line of a fiscal document. Price and
// DiscSum are always rounded to two decimal places, half away from zero.
type InventPosition struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	VatTag   int             `json:"vatTag"`
	DiscSum  decimal.Decimal `json:"discSum"`
}

func NewInventPosition(name string, price decimal.Decimal, quantity, vatTag int) InventPosition {
	return InventPosition{
		Name:     strings.TrimSpace(name),
		Price:    price.Round(2),
		Quantity: quantity,
		VatTag:   vatTag,
		DiscSum:  decimal.Zero,
	}
}

// FiscalDocument is the receipt payload posted to the FN service.
type FiscalDocument struct {
	ID               string           `json:"id"`
	CheckoutDateTime string           `json:"checkoutDateTime"`
	DocNum           int              `json:"docNum"`
	DocType          DocType          `json:"docType"`
	PrintReceipt     bool             `json:"printReceipt"`
	Email            string           `json:"email"`
	MoneyPositions   MoneyPosition    `json:"moneyPositions"`
	ResponseURL      string           `json:"responseURL"`
	InventPositions  []InventPosition `json:"inventPositions"`
}

type DocStatus string

const (
	DocStatusQueued    DocStatus = "QUEUED"
	DocStatusPending   DocStatus = "PENDING"
	DocStatusPrinted   DocStatus = "PRINTED"
	DocStatusCompleted DocStatus = "COMPLETED"
	DocStatusFailed    DocStatus = "FAILED"
)

// FiscalInfo describes the fiscalized receipt as registered on the cash
// register's fiscal drive. Field names follow the FN callback payload.
type FiscalInfo struct {
	FnNumber              string          `json:"fnNumber"`
	FnDocNumber           int64           `json:"fnDocNumber"`
	FnDocMark             int64           `json:"fnDocMark"`
	EcrRegistrationNumber string          `json:"ecrRegistrationNumber"`
	Date                  string          `json:"date"`
	Sum                   decimal.Decimal `json:"sum"`
}

// DocumentResult is the fiscalization outcome, returned by POST /v1/doc
// and delivered again to the response URL once the receipt is printed.
type DocumentResult struct {
	DocID      string      `json:"docId"`
	Status     DocStatus   `json:"status"`
	FiscalInfo *FiscalInfo `json:"fiscalInfo,omitempty"`
}
