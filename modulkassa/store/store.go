// Package store persists the association between the shop and its FN
// retail point. The host platform owns the actual storage; implementations
// adapt it to a single all-or-nothing record.
package store

import "github.com/dgigel/go-modulkassa/modulkassa/model"

type Store interface {
	// Association returns the stored credentials, or nil when the module
	// has never been associated (or the association was removed).
	Association() (*model.Association, error)
	Save(assoc model.Association) error
	Clear() error
}
