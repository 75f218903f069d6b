package modulkassa

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgigel/go-modulkassa/modulkassa/api"
	"github.com/dgigel/go-modulkassa/modulkassa/model"
	"github.com/dgigel/go-modulkassa/modulkassa/store"
)

// ClientFactory builds a gateway for the selected environment. Tests
// substitute it to avoid the network.
type ClientFactory func(env Environment) api.Client

func defaultClientFactory(env Environment) api.Client {
	return api.New(env.BaseURL())
}

type AssociationService interface {
	Associate(ctx context.Context, retailPointID, login, password string, testMode bool) (*model.Association, error)
	RemoveAssociation() error
	Status(ctx context.Context, login, password string, testMode bool) (*model.StatusResponse, error)
	IsAssociated() bool
}

type associationService struct {
	store     store.Store
	newClient ClientFactory
}

func NewAssociationService(st store.Store) AssociationService {
	return &associationService{store: st, newClient: defaultClientFactory}
}

func NewAssociationServiceWithFactory(st store.Store, factory ClientFactory) AssociationService {
	return &associationService{store: st, newClient: factory}
}

// Associate pairs the shop with the given retail point and persists the
// per-point credentials the service hands back. Nothing is persisted on
// failure.
func (s *associationService) Associate(ctx context.Context, retailPointID, login, password string, testMode bool) (*model.Association, error) {

	client := s.newClient(EnvironmentFor(testMode))

	res := &model.AssociateResponse{}
	err := client.PostJSON(ctx,
		"/v1/associate/"+retailPointID,
		model.Credentials{Username: login, Password: password},
		model.AssociateRequest{Username: login, Password: password},
		res)
	if err != nil {
		return nil, err
	}

	// a malformed 200 must not end up persisted as a half-set (and thus
	// invisible) association
	if res.UserName == "" || res.Password == "" {
		return nil, fmt.Errorf("associate: FN response misses credentials (userName=%q)", res.UserName)
	}

	assoc := model.Association{
		Login:           res.UserName,
		Password:        res.Password,
		RetailPointInfo: retailPointInfo(res.Name, res.Address),
	}
	if err := s.store.Save(assoc); err != nil {
		return nil, err
	}

	logger.WithField("retail_point", assoc.RetailPointInfo).Info("retail point associated")
	return &assoc, nil
}

// RemoveAssociation clears the stored credentials. Calling it while not
// associated is a logged no-op, so it can be retried safely.
func (s *associationService) RemoveAssociation() error {
	assoc, err := s.store.Association()
	if err != nil {
		return err
	}
	if assoc == nil {
		logger.Warn("module is not associated, nothing to remove")
		return nil
	}
	return s.store.Clear()
}

// Status asks the FN service for the fiscal device state.
func (s *associationService) Status(ctx context.Context, login, password string, testMode bool) (*model.StatusResponse, error) {

	client := s.newClient(EnvironmentFor(testMode))

	res := &model.StatusResponse{}
	if err := client.GetJSON(ctx, "/v1/status", model.Credentials{Username: login, Password: password}, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *associationService) IsAssociated() bool {
	assoc, err := s.store.Association()
	if err != nil {
		logger.WithError(err).Error("can't read stored association")
		return false
	}
	return assoc != nil
}

func retailPointInfo(name, address string) string {
	var parts []string
	if name != "" {
		parts = append(parts, name)
	}
	if address != "" {
		parts = append(parts, address)
	}
	return strings.Join(parts, " ")
}
