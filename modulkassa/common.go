package modulkassa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "modulkassa")

var (
	// ErrNotAssociated marks operations that need stored credentials
	// while the module has never been paired with a retail point.
	ErrNotAssociated = errors.New("modulkassa: retail point is not associated")
	// ErrNoLineItems marks orders with nothing purchasable on them.
	ErrNoLineItems = errors.New("modulkassa: order has no purchasable line items")
	// ErrTokenMismatch marks callbacks whose token failed validation.
	ErrTokenMismatch = errors.New("modulkassa: callback token mismatch")
)

type Environment int

const (
	Test Environment = iota
	Prod
)

func (e Environment) BaseURL() string {
	switch e {
	case Test:
		return "https://demo-fn.avanpos.com/fn"
	case Prod:
		return "https://service.modulpos.ru/api/fn"
	}
	panic("invalid environment")
}

func (e Environment) Name() string {
	switch e {
	case Test:
		return "test"
	case Prod:
		return "prod"
	}
	panic("invalid environment")
}

func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "prod":
		*e = Prod
	case "test":
		*e = Test
	default:
		return fmt.Errorf("invalid MODULKASSA_ENV: %q (allowed: prod, test)", val)
	}
	return nil
}

// EnvironmentFor maps the module's test-mode flag onto an environment.
// Every outbound call selects its base URL through this.
func EnvironmentFor(testMode bool) Environment {
	if testMode {
		return Test
	}
	return Prod
}
