// Package ioconfig reads config.yaml and GNREDLIST_ environment variables.
package ioconfig

import (
	"strings"

	"github.com/gnames/gnredlist/internal/iofs"
	"github.com/gnames/gnredlist/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// config.yaml.
const EnvPrefix = "GNREDLIST"

// Load reads the config file and environment variables into a Config.
// Only fields that can be persisted are read, runtime fields stay empty.
func Load(cfgPath string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// envKeys are the config keys that can be set by environment variables.
// They match the fields of config.ToOptions().
var envKeys = []string{
	"input.source",
	"input.csv_path",
	"input.possibly_extinct_path",
	"input.sqlite_path",
	"input.use_cache",

	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.database",
	"database.ssl_mode",
	"database.batch_size",

	"rules_path",

	"output.dir",
	"output.format",

	"log.level",
	"log.format",
	"log.destination",

	"jobs_number",
}

func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		env := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, EnvPrefix+"_"+env)
	}

	v.AutomaticEnv()
}
