package bootstrap

import (
	"github.com/OpenListTeam/gofile-uploader/drivers/base"
	"github.com/OpenListTeam/gofile-uploader/internal/conf"
	"github.com/OpenListTeam/gofile-uploader/pkg/utils"
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// InitConfig builds conf.Conf from the defaults, the optional env file and
// the environment, then sets up logging and the HTTP clients. Variables
// already set in the environment win over the file.
func InitConfig(envFile string) error {
	loaded := false
	if envFile != "" && utils.Exists(afero.NewOsFs(), envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return errors.WithMessagef(err, "failed load env file %s", envFile)
		}
		loaded = true
	}
	c := conf.DefaultConfig()
	if err := env.ParseWithOptions(c, env.Options{
		Prefix: conf.EnvPrefix,
	}); err != nil {
		return errors.WithMessage(err, "failed load config from env")
	}
	conf.Conf = c
	Log()
	if loaded {
		log.Debugf("loaded env file: %s", envFile)
	}
	log.Debugf("config: %+v", redacted(*c))
	base.InitClient()
	return nil
}

func redacted(c conf.Config) conf.Config {
	if c.Token != "" {
		c.Token = "******"
	}
	return c
}
