package model

// Credentials are Basic auth credentials for the FN service. Before
// association these are the merchant's ModulKassa account credentials,
// afterwards the per-retail-point pair returned by the service.
type Credentials struct {
	Username string
	Password string
}

// Association binds the shop to an FN retail point. It is either fully
// present (login and password non-empty) or fully absent.
type Association struct {
	Login           string `json:"login" mapstructure:"associate_user"`
	Password        string `json:"password" mapstructure:"associate_password"`
	RetailPointInfo string `json:"retail_point_info" mapstructure:"retail_point_info"`
}

func (a Association) Credentials() Credentials {
	return Credentials{Username: a.Login, Password: a.Password}
}

type AssociateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AssociateResponse struct {
	UserName      string `json:"userName"`
	Password      string `json:"password"`
	OperatingMode string `json:"operating_mode"`
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
}

// StatusResponse is the fiscal device state reported by GET /v1/status.
type StatusResponse struct {
	Status   string `json:"status"`
	DateTime string `json:"dateTime"`
}
