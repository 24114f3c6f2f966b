package config

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	ce "github.com/transferworks/storage-transfer-backend/pkg/errors"
)

const DefaultAppName = "storage-transfer"

// RequestIdHeader is the header carrying the request id through the api.
const HeaderRequestId = "x-request-id"
const RequestIdLoggingKey = "request_id"

type Configuration struct {
	Loaded     bool
	Logging    Logging
	Cloudwatch Cloudwatch
	Metrics    Metrics
	Clients    Clients `mapstructure:"clients"`
	Docs       Docs    `mapstructure:"docs"`
}

type Logging struct {
	Level   string
	Console bool
}

type Cloudwatch struct {
	Region  string
	Key     string
	Secret  string
	Session string
	Group   string
	Stream  string
}

type Metrics struct {
	// Path the metrics server listens on for metric traffic.
	Path string `mapstructure:"path"`

	// Port the metrics server listens on for metric traffic.
	Port int `mapstructure:"port"`
}

type Clients struct {
	Transfer Transfer `mapstructure:"transfer"`
	Aws      Aws      `mapstructure:"aws"`
}

type Transfer struct {
	Server  string
	Token   string
	Timeout time.Duration

	// JobTimeout bounds a synchronous wait for job completion. Zero means
	// wait until the context is done.
	JobTimeout time.Duration `mapstructure:"job_timeout"`
}

type Aws struct {
	Region  string
	Key     string
	Secret  string
	Session string

	// VerifyBuckets enables a HeadBucket existence check on the s3 source
	// bucket before a transfer job is submitted.
	VerifyBuckets bool `mapstructure:"verify_buckets"`
}

type Docs struct {
	Server         string   `mapstructure:"server"`
	RootDir        string   `mapstructure:"root_dir"`
	Version        string   `mapstructure:"version"`
	Packages       []string `mapstructure:"packages"`
	CurrentPackage string   `mapstructure:"current_package"`
}

var LoadedConfig Configuration

func Get() *Configuration {
	if !LoadedConfig.Loaded {
		Load()
	}
	return &LoadedConfig
}

func readConfigFile(v *viper.Viper) {
	v.SetConfigName("config.yaml")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs/")
	v.AddConfigPath("../../configs/")
	v.AddConfigPath("../../../configs")

	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		v.AddConfigPath(path)
	}
	err := v.ReadInConfig()
	if err != nil {
		log.Logger.Warn().Msgf("config.yaml file not loaded: %s", err.Error())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Loaded", true)
	// In viper you have to set defaults, otherwise loading from ENV doesn't work
	//   without a config file present
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("metrics.port", 9000)

	v.SetDefault("clients.transfer.server", "https://storagetransfer.googleapis.com/v1")
	v.SetDefault("clients.transfer.token", "")
	v.SetDefault("clients.transfer.timeout", 30*time.Second)
	v.SetDefault("clients.transfer.job_timeout", 0)

	v.SetDefault("clients.aws.region", "")
	v.SetDefault("clients.aws.key", "")
	v.SetDefault("clients.aws.secret", "")
	v.SetDefault("clients.aws.session", "")
	v.SetDefault("clients.aws.verify_buckets", false)

	v.SetDefault("docs.server", "https://docs.transferworks.io")
	v.SetDefault("docs.root_dir", "generated")
	v.SetDefault("docs.version", "stable")
	v.SetDefault("docs.packages", []string{})
	v.SetDefault("docs.current_package", "")

	v.SetDefault("cloudwatch.region", "")
	v.SetDefault("cloudwatch.group", "")
	v.SetDefault("cloudwatch.stream", DefaultLogwatchStream())
	v.SetDefault("cloudwatch.session", "")
	v.SetDefault("cloudwatch.secret", "")
	v.SetDefault("cloudwatch.key", "")
}

func Load() {
	v := viper.New()

	readConfigFile(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	err := v.Unmarshal(&LoadedConfig)
	if err != nil {
		panic(err)
	}
}

func CustomHTTPErrorHandler(err error, c echo.Context) {
	var code int
	var message ce.ErrorResponse

	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	if errResp, ok := err.(ce.ErrorResponse); ok {
		code = ce.GetGeneralResponseCode(errResp)
		message = errResp
	} else if he, ok := err.(*echo.HTTPError); ok {
		errResp := ce.NewErrorResponseFromEchoError(he)
		code = errResp.Errors[0].Status
		message = errResp
	} else {
		code = http.StatusInternalServerError
		message = ce.NewErrorResponse(code, "", http.StatusText(http.StatusInternalServerError))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}
	if err != nil {
		log.Logger.Error().Err(err)
	}
}

func DefaultLogwatchStream() string {
	hostname, err := os.Hostname()
	if err != nil {
		log.Logger.Warn().Msgf("error reading hostname: %s", err.Error())
		return DefaultAppName
	}
	return hostname
}
