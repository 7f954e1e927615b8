package config

import (
	_ "embed"
	"os"

	"school-leave/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	SecretKey    string
	AccessExpire int64
}

type Metrics struct {
	ListenOn string `json:",default=:9091"`
	Path     string `json:",default=/metrics"`
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string `json:",default=test"`
	Seed     bool   `json:",default=false"`
	Auth     Auth
	Mongo    struct {
		URL string
		DB  string
	}
	Cache   cache.CacheConf
	Metrics Metrics
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "etc/config.yaml"
		}
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}

// SetConfig 仅供测试注入配置
func SetConfig(c *Config) {
	config = c
}
