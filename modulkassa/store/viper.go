package store

import (
	"github.com/go-faster/errors"
	"github.com/spf13/viper"

	"github.com/dgigel/go-modulkassa/modulkassa/model"
)

const (
	keyLogin    = "associate_user"
	keyPassword = "associate_password"
	keyInfo     = "retail_point_info"
)

// ViperStore keeps the association in a viper-backed configuration file,
// next to the rest of the module settings. Every Save/Clear rewrites the
// whole record, so the association never exists half-set on disk.
type ViperStore struct {
	v *viper.Viper
}

// NewViperStore wraps a viper instance that already has a config file
// assigned (SetConfigFile or a successful ReadInConfig).
func NewViperStore(v *viper.Viper) *ViperStore {
	return &ViperStore{v: v}
}

func (s *ViperStore) Association() (*model.Association, error) {
	login := s.v.GetString(keyLogin)
	if login == "" {
		return nil, nil
	}
	return &model.Association{
		Login:           login,
		Password:        s.v.GetString(keyPassword),
		RetailPointInfo: s.v.GetString(keyInfo),
	}, nil
}

func (s *ViperStore) Save(assoc model.Association) error {
	s.v.Set(keyLogin, assoc.Login)
	s.v.Set(keyPassword, assoc.Password)
	s.v.Set(keyInfo, assoc.RetailPointInfo)

	if err := s.v.WriteConfig(); err != nil {
		return errors.Wrap(err, "write association")
	}
	return nil
}

func (s *ViperStore) Clear() error {
	s.v.Set(keyLogin, "")
	s.v.Set(keyPassword, "")
	s.v.Set(keyInfo, "")

	if err := s.v.WriteConfig(); err != nil {
		return errors.Wrap(err, "clear association")
	}
	return nil
}
