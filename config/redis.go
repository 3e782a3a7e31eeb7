package config

type Redis struct {
	Enabled  *bool   `json:"enabled"`
	Url      *string `json:"url"`
	Password *string `json:"password"`
	Prefix   *string `json:"prefix"`
	Database *int    `json:"database"`
	PoolSize *int    `json:"poolSize"`
	Ttl      *string `json:"ttl"`
}

func (r *Redis) setDefaults() {
	if r.Enabled == nil {
		r.Enabled = newBool(false)
	}
	if r.Url == nil {
		r.Url = newString("127.0.0.1:6379")
	}
	if r.Password == nil {
		r.Password = newString("")
	}
	if r.Prefix == nil {
		r.Prefix = newString("flexpool")
	}
	if r.Database == nil {
		r.Database = newInt(0)
	}
	if r.PoolSize == nil {
		r.PoolSize = newInt(4)
	}
	if r.Ttl == nil {
		r.Ttl = newString("1h")
	}
}
