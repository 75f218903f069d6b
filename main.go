package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/dgigel/go-modulkassa/modulkassa"
	"github.com/dgigel/go-modulkassa/modulkassa/api"
	"github.com/dgigel/go-modulkassa/modulkassa/config"
	"github.com/dgigel/go-modulkassa/modulkassa/document"
	"github.com/dgigel/go-modulkassa/modulkassa/model"
	"github.com/dgigel/go-modulkassa/modulkassa/qr"
	"github.com/dgigel/go-modulkassa/modulkassa/store"
	"github.com/dgigel/go-modulkassa/modulkassa/token"
	"github.com/dgigel/go-modulkassa/modulkassa/util"
)

func main() {

	logrus.SetLevel(logrus.DebugLevel)

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	login := util.GetEnvOrFailed("MODULKASSA_LOGIN")
	password := util.GetEnvOrFailed("MODULKASSA_PASSWORD")

	st := store.NewMemory()
	service := modulkassa.NewAssociationService(st)

	ctx := context.Background()

	assoc, err := service.Associate(ctx, cfg.RetailPointID, login, password, cfg.TestMode)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println("associated:", assoc.Login, assoc.RetailPointInfo)

	status, err := service.Status(ctx, assoc.Login, assoc.Password, cfg.TestMode)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println("fiscal device:", status.Status, status.DateTime)

	tokens := token.New(cfg.Secret)
	builder := document.NewBuilder(tokens, cfg.VatTag, cfg.ShippingLabel, cfg.ResponseURL)

	doc, err := builder.Build(sampleOrder(), model.DocTypeSale, model.PaymentTypeCard, true, "customer@example.com")
	if err != nil {
		logrus.Fatal(err)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println(string(payload))

	client := api.New(modulkassa.EnvironmentFor(cfg.TestMode).BaseURL())
	docs := api.NewDocumentService(client)

	result, err := docs.Send(ctx, assoc.Credentials(), doc)
	if err != nil {
		logrus.Fatal(err)
	}
	fmt.Println("document status:", result.Status)

	if result.FiscalInfo != nil {
		verification, err := qr.VerificationString(*result.FiscalInfo, qr.OperationSale)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println("verification:", verification)
	}
}

func sampleOrder() document.Order {
	return document.Order{
		ID:             1,
		TotalPaid:      decimal.NewFromFloat(55.00),
		TotalProducts:  decimal.NewFromFloat(50.00),
		TotalDiscounts: decimal.NewFromFloat(5.00),
		TotalShipping:  decimal.NewFromFloat(10.00),
		Lines: []document.OrderLine{
			{Reference: "SKU-1", Name: "Sample product", UnitPriceTaxIncl: decimal.NewFromFloat(10.00), Quantity: 5},
		},
	}
}
