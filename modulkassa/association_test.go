package modulkassa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgigel/go-modulkassa/modulkassa/api"
	"github.com/dgigel/go-modulkassa/modulkassa/model"
	"github.com/dgigel/go-modulkassa/modulkassa/store"
)

type fakeClient struct {
	env      Environment
	lastPath string

	getFn  func(endpoint string, creds model.Credentials, result interface{}) error
	postFn func(endpoint string, creds model.Credentials, body, result interface{}) error
}

func (f *fakeClient) GetJSON(_ context.Context, endpoint string, creds model.Credentials, result interface{}) error {
	f.lastPath = endpoint
	return f.getFn(endpoint, creds, result)
}

func (f *fakeClient) PostJSON(_ context.Context, endpoint string, creds model.Credentials, body, result interface{}) error {
	f.lastPath = endpoint
	return f.postFn(endpoint, creds, body, result)
}

func factoryFor(fake *fakeClient) ClientFactory {
	return func(env Environment) api.Client {
		fake.env = env
		return fake
	}
}

func TestAssociate_PersistsReturnedCredentials(t *testing.T) {

	fake := &fakeClient{
		postFn: func(endpoint string, creds model.Credentials, body, result interface{}) error {
			assert.Equal(t, "merchant", creds.Username)
			assert.Equal(t, "pass", creds.Password)

			res := result.(*model.AssociateResponse)
			res.UserName = "rp-login"
			res.Password = "rp-password"
			res.OperatingMode = "ASSOCIATED"
			res.Name = "Магазин"
			res.Address = "ул. Ленина, 1"
			return nil
		},
	}

	st := store.NewMemory()
	service := NewAssociationServiceWithFactory(st, factoryFor(fake))

	assoc, err := service.Associate(context.Background(), "rp-1", "merchant", "pass", true)
	require.NoError(t, err)

	assert.Equal(t, "/v1/associate/rp-1", fake.lastPath)
	assert.Equal(t, Test, fake.env)
	assert.Equal(t, "rp-login", assoc.Login)
	assert.Equal(t, "rp-password", assoc.Password)
	assert.Equal(t, "Магазин ул. Ленина, 1", assoc.RetailPointInfo)

	stored, err := st.Association()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *assoc, *stored)
	assert.True(t, service.IsAssociated())
}

func TestAssociate_NothingPersistedOnFailure(t *testing.T) {

	fake := &fakeClient{
		postFn: func(endpoint string, creds model.Credentials, body, result interface{}) error {
			return &api.RequestError{StatusCode: 401, Body: "bad credentials"}
		},
	}

	st := store.NewMemory()
	service := NewAssociationServiceWithFactory(st, factoryFor(fake))

	assoc, err := service.Associate(context.Background(), "rp-1", "merchant", "wrong", false)

	require.Error(t, err)
	assert.Nil(t, assoc)
	assert.Equal(t, Prod, fake.env)

	stored, err := st.Association()
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.False(t, service.IsAssociated())
}

func TestAssociate_IncompleteResponseIsNotPersisted(t *testing.T) {

	fake := &fakeClient{
		postFn: func(endpoint string, creds model.Credentials, body, result interface{}) error {
			res := result.(*model.AssociateResponse)
			res.OperatingMode = "ASSOCIATED"
			// userName/password missing from the 200 body
			return nil
		},
	}

	st := store.NewMemory()
	service := NewAssociationServiceWithFactory(st, factoryFor(fake))

	assoc, err := service.Associate(context.Background(), "rp-1", "merchant", "pass", true)

	require.Error(t, err)
	assert.Nil(t, assoc)

	stored, err := st.Association()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAssociate_LabelWithoutAddress(t *testing.T) {

	fake := &fakeClient{
		postFn: func(endpoint string, creds model.Credentials, body, result interface{}) error {
			res := result.(*model.AssociateResponse)
			res.UserName = "rp-login"
			res.Password = "rp-password"
			res.Name = "Магазин"
			return nil
		},
	}

	service := NewAssociationServiceWithFactory(store.NewMemory(), factoryFor(fake))

	assoc, err := service.Associate(context.Background(), "rp-1", "merchant", "pass", true)
	require.NoError(t, err)

	assert.Equal(t, "Магазин", assoc.RetailPointInfo)
}

func TestRemoveAssociation_Idempotent(t *testing.T) {

	st := store.NewMemory()
	require.NoError(t, st.Save(model.Association{Login: "l", Password: "p", RetailPointInfo: "info"}))

	service := NewAssociationService(st)

	require.NoError(t, service.RemoveAssociation())
	assert.False(t, service.IsAssociated())

	// second removal is a no-op, not an error
	require.NoError(t, service.RemoveAssociation())
	assert.False(t, service.IsAssociated())
}

func TestStatus(t *testing.T) {

	fake := &fakeClient{
		getFn: func(endpoint string, creds model.Credentials, result interface{}) error {
			res := result.(*model.StatusResponse)
			res.Status = "READY"
			res.DateTime = "2024-03-01T10:00:00+03:00"
			return nil
		},
	}

	service := NewAssociationServiceWithFactory(store.NewMemory(), factoryFor(fake))

	status, err := service.Status(context.Background(), "l", "p", true)
	require.NoError(t, err)

	assert.Equal(t, "/v1/status", fake.lastPath)
	assert.Equal(t, "READY", status.Status)
	assert.Equal(t, "2024-03-01T10:00:00+03:00", status.DateTime)
}

func TestEnvironmentFor(t *testing.T) {
	assert.Equal(t, Test, EnvironmentFor(true))
	assert.Equal(t, Prod, EnvironmentFor(false))
	assert.Equal(t, "https://demo-fn.avanpos.com/fn", Test.BaseURL())
	assert.Equal(t, "https://service.modulpos.ru/api/fn", Prod.BaseURL())
}
