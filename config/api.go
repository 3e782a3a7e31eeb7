package config

// Api 矿池接口
type Api struct {
	Endpoint *string `json:"endpoint"`
	Timeout  *string `json:"timeout"`
}

func (a *Api) setDefaults() {
	if a.Endpoint == nil {
		a.Endpoint = newString(DefaultEndpoint)
	}
	if a.Timeout == nil {
		a.Timeout = newString(DefaultTimeout)
	}
}
