// Package qr renders the receipt verification QR code mandated by 54-FZ.
// Buyers scan it to check the receipt against the tax service registry.
package qr

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/dgigel/go-modulkassa/modulkassa/model"
)

type OperationType int

const (
	OperationSale   OperationType = 1
	OperationReturn OperationType = 2
)

// VerificationString builds the standard verification payload:
// t=<date>&s=<sum>&fn=<drive serial>&i=<doc number>&fp=<fiscal sign>&n=<op>.
func VerificationString(info model.FiscalInfo, op OperationType) (string, error) {
	ts, err := time.Parse(time.RFC3339, info.Date)
	if err != nil {
		return "", errors.Wrap(err, "fiscal date")
	}

	return fmt.Sprintf("t=%s&s=%s&fn=%s&i=%d&fp=%d&n=%d",
		ts.Format("20060102T1504"),
		info.Sum.StringFixed(2),
		info.FnNumber,
		info.FnDocNumber,
		info.FnDocMark,
		op), nil
}

// Encode renders the verification payload as a PNG of the given size.
func Encode(info model.FiscalInfo, op OperationType, size int) ([]byte, error) {
	payload, err := VerificationString(info, op)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}
