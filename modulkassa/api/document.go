package api

import (
	"context"

	"github.com/dgigel/go-modulkassa/modulkassa/model"
)

type DocumentService interface {
	Send(ctx context.Context, creds model.Credentials, doc *model.FiscalDocument) (*model.DocumentResult, error)
}

type documents struct {
	client Client
}

func NewDocumentService(client Client) DocumentService {
	return &documents{client: client}
}

// Send puts the built document into the retail point's fiscalization
// queue. The final outcome arrives later on the document's response URL.
func (d *documents) Send(ctx context.Context, creds model.Credentials, doc *model.FiscalDocument) (*model.DocumentResult, error) {

	logger.Debugf("sending document %s", doc.ID)

	res := &model.DocumentResult{}
	if err := d.client.PostJSON(ctx, "/v1/doc", creds, doc, res); err != nil {
		return nil, err
	}
	return res, nil
}
