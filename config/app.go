package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	Node  int64  `json:"node" yaml:"node"` // snowflake 节点号
}
