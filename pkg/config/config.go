package config

import (
	"time"
)

type DB struct {
	Url string `envconfig:"URL"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[paygate]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// HTTPClient configures the transport shared by every gateway client.
type HTTPClient struct {
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"30s"`
	LogBodies     bool          `envconfig:"LOG_BODIES" default:"false"`
	MaxLoggedBody int           `envconfig:"MAX_LOGGED_BODY" default:"2000"`
}

// Gateway is the environment-provided payment method of one gateway.
type Gateway struct {
	Code        string `envconfig:"CODE"`
	Token       string `envconfig:"TOKEN"`
	MerchantID  string `envconfig:"MERCHANT_ID"`
	ServiceID   string `envconfig:"SERVICE_ID"`
	Environment string `envconfig:"ENVIRONMENT" default:"sandbox"`
	SandboxURL  string `envconfig:"SANDBOX_URL"`
	ProdURL     string `envconfig:"PROD_URL"`
}

// Enabled reports whether enough is set to register the payment method.
func (g *Gateway) Enabled() bool {
	return g != nil && g.Code != "" && g.Token != "" && g.MerchantID != ""
}

//revive:disable
type Imoje struct {
	Code        string `envconfig:"CODE" default:"imoje"`
	Token       string `envconfig:"TOKEN"`
	MerchantID  string `envconfig:"MERCHANT_ID"`
	ServiceID   string `envconfig:"SERVICE_ID"`
	Environment string `envconfig:"ENVIRONMENT" default:"sandbox"`
	SandboxURL  string `envconfig:"SANDBOX_URL" default:"https://sandbox.api.imoje.pl/v1/merchant"`
	ProdURL     string `envconfig:"PROD_URL" default:"https://api.imoje.pl/v1/merchant"`
}

type Ing struct {
	Code        string `envconfig:"CODE" default:"ing"`
	Token       string `envconfig:"TOKEN"`
	MerchantID  string `envconfig:"MERCHANT_ID"`
	ServiceID   string `envconfig:"SERVICE_ID"`
	Environment string `envconfig:"ENVIRONMENT" default:"sandbox"`
	SandboxURL  string `envconfig:"SANDBOX_URL"`
	ProdURL     string `envconfig:"PROD_URL"`
}

//revive:enable

// Gateway returns the Imoje settings as a Gateway.
func (c *Imoje) Gateway() *Gateway {
	if c == nil {
		return nil
	}
	g := Gateway(*c)
	return &g
}

// Gateway returns the ING settings as a Gateway.
func (c *Ing) Gateway() *Gateway {
	if c == nil {
		return nil
	}
	g := Gateway(*c)
	return &g
}

type App struct {
	Env        string      `envconfig:"APP_ENV" default:"development"`
	Server     *Server     `envconfig:"SERVER"`
	Log        *Log        `envconfig:"LOG"`
	DB         *DB         `envconfig:"DATABASE"`
	RateLimit  *RateLimit  `envconfig:"RATE_LIMIT"`
	HTTPClient *HTTPClient `envconfig:"HTTP_CLIENT"`
	Imoje      *Imoje      `envconfig:"IMOJE"`
	Ing        *Ing        `envconfig:"ING"`
}
