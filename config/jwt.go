package config

type Jwt struct {
	Secret     string `json:"secret" yaml:"secret"`
	ExpiresTTL int64  `json:"expires_ttl" yaml:"expires_ttl"` // 秒
}
