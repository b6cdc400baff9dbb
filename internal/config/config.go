package config

import "time"

// Config is the root configuration for the margin estimator.
type Config struct {
	Market    MarketConfig    `yaml:"market"`
	ESI       ESIConfig       `yaml:"esi"`
	Planetary PlanetaryConfig `yaml:"planetary"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Log       LogConfig       `yaml:"log"`
}

// MarketConfig holds the market scope and fee rates.
type MarketConfig struct {
	RegionID  int32   `yaml:"region_id"`  // ESI region, e.g. 10000002 (The Forge)
	SystemID  int64   `yaml:"system_id"`  // Optional solar system filter, 0 = whole region
	SalesTax  float64 `yaml:"sales_tax"`  // Fraction of sale price, 0-1
	BrokerFee float64 `yaml:"broker_fee"` // Fraction of sale price, 0-1
}

// ESIConfig holds ESI transport settings.
type ESIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Datasource   string        `yaml:"datasource"`
	UserAgent    string        `yaml:"user_agent"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// PlanetaryConfig holds planetary customs settings.
type PlanetaryConfig struct {
	TaxRate             float64 `yaml:"tax_rate"`              // Customs office tax, 0-1
	CommandCenterLaunch bool    `yaml:"command_center_launch"` // Exports via command center pay 1.5x
}

// CatalogConfig selects the static recipe dataset source.
type CatalogConfig struct {
	Source   string   `yaml:"source"` // "file" or "database"
	Path     string   `yaml:"path"`   // Dataset path for the file source
	Database DBConfig `yaml:"database"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
