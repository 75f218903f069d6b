// Package document turns an order into a fiscal document for the FN
// service: line items become invent positions, the order-level discount
// is redistributed over them and rounding drift is reconciled so the
// distributed total matches the order's discount to the kopeck.
package document

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/dgigel/go-modulkassa/modulkassa"
	"github.com/dgigel/go-modulkassa/modulkassa/model"
	"github.com/dgigel/go-modulkassa/modulkassa/token"
)

var logger = logrus.WithField("component", "modulkassa.document")

// DefaultShippingLabel is the conventional name of the synthetic shipping
// position on Russian fiscal receipts.
const DefaultShippingLabel = "ДОСТАВКА"

// Order is the slice of the host platform's order the builder needs.
// Totals are tax-included.
type Order struct {
	ID             int
	TotalPaid      decimal.Decimal
	TotalProducts  decimal.Decimal
	TotalDiscounts decimal.Decimal
	TotalShipping  decimal.Decimal
	Lines          []OrderLine
}

type OrderLine struct {
	Reference        string
	Name             string
	UnitPriceTaxIncl decimal.Decimal
	Quantity         int
}

type Builder struct {
	tokens        token.Service
	vatTag        int
	shippingLabel string
	responseURL   string
}

// NewBuilder wires the builder with the module configuration: VAT tag for
// every position, the shipping position label and the base URL of the
// result callback endpoint.
func NewBuilder(tokens token.Service, vatTag int, shippingLabel, responseURL string) *Builder {
	if shippingLabel == "" {
		shippingLabel = DefaultShippingLabel
	}
	return &Builder{
		tokens:        tokens,
		vatTag:        vatTag,
		shippingLabel: shippingLabel,
		responseURL:   responseURL,
	}
}

// Build assembles a fiscal document from the order. Returns
// modulkassa.ErrNoLineItems when there is nothing to put on the receipt.
func (b *Builder) Build(order Order, docType model.DocType, paymentType model.PaymentType, printReceipt bool, email string) (*model.FiscalDocument, error) {

	if len(order.Lines) == 0 {
		return nil, modulkassa.ErrNoLineItems
	}

	id := fmt.Sprintf("%d-%s", order.ID, uuid.NewString())

	responseURL, err := b.buildResponseURL(id)
	if err != nil {
		return nil, err
	}

	doc := &model.FiscalDocument{
		ID:               id,
		CheckoutDateTime: time.Now().Format(time.RFC3339),
		DocNum:           order.ID,
		DocType:          docType,
		PrintReceipt:     printReceipt,
		Email:            email,
		MoneyPositions: model.MoneyPosition{
			PaymentType: paymentType,
			Sum:         order.TotalPaid.Round(2),
		},
		ResponseURL: responseURL,
	}

	positions := make([]model.InventPosition, 0, len(order.Lines)+1)
	for _, line := range order.Lines {
		name := line.Reference
		if strings.TrimSpace(name) == "" {
			name = line.Name
		}
		positions = append(positions, model.NewInventPosition(name, line.UnitPriceTaxIncl, line.Quantity, b.vatTag))
	}

	if order.TotalDiscounts.IsPositive() {
		// the discount percent is a ratio over the products total, a
		// zero total cannot carry a discount
		if !order.TotalProducts.IsPositive() {
			return nil, fmt.Errorf("order %d carries discount %s but products total is %s", order.ID, order.TotalDiscounts, order.TotalProducts)
		}
		positions = b.distributeDiscount(positions, order)
	}

	if order.TotalShipping.IsPositive() {
		positions = append(positions, model.NewInventPosition(b.shippingLabel, order.TotalShipping, 1, b.vatTag))
	}

	doc.InventPositions = positions

	logger.WithFields(logrus.Fields{
		"doc_id":    doc.ID,
		"positions": len(doc.InventPositions),
		"sum":       doc.MoneyPositions.Sum,
	}).Debug("document built")

	return doc, nil
}

// distributeDiscount spreads the order-level discount over the positions
// proportionally to their price and settles the cumulative rounding error
// on the first position.
func (b *Builder) distributeDiscount(positions []model.InventPosition, order Order) []model.InventPosition {

	// Isolate a single unit up front so the rounding remainder lands on
	// a quantity-1 line instead of being multiplied.
	if positions[0].Quantity > 1 {
		positions[0].Quantity--
		unit := positions[0]
		unit.Quantity = 1
		unit.DiscSum = decimal.Zero
		positions = append([]model.InventPosition{unit}, positions...)
	}

	percent := order.TotalDiscounts.Div(order.TotalProducts)

	distributed := decimal.Zero
	for i := range positions {
		positions[i].DiscSum = positions[i].Price.Mul(percent).Round(2)
		distributed = distributed.Add(positions[i].DiscSum.Mul(decimal.NewFromInt(int64(positions[i].Quantity))))
	}

	if !distributed.Equal(order.TotalDiscounts) {
		diff := order.TotalDiscounts.Sub(distributed).Round(2)
		positions[0].DiscSum = positions[0].DiscSum.Add(diff).Round(2)
		logger.WithField("diff", diff).Debug("discount rounding reconciled on first position")
	}

	return positions
}

func (b *Builder) buildResponseURL(docID string) (string, error) {
	u, err := url.Parse(b.responseURL)
	if err != nil {
		return "", errors.Wrap(err, "response URL base")
	}

	q := u.Query()
	q.Set("doc_id", docID)
	q.Set("token", b.tokens.Create(docID))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
