package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRegionID     = 10000002 // The Forge
	DefaultSalesTax     = 0.036
	DefaultBrokerFee    = 0.03
	DefaultESIBaseURL   = "https://esi.evetech.net/latest"
	DefaultDatasource   = "tranquility"
	DefaultESITimeout   = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second
	DefaultPlanetaryTax = 0.10
	DefaultCatalogPath  = "database/recipes.json"
	DefaultDBPort       = 5432
	DefaultDBSSLMode    = "prefer"
	DefaultMaxConns     = 4
	DefaultMinConns     = 1
	DefaultLogLevel     = "info"
)

// Valid catalog source selectors.
const (
	CatalogSourceFile     = "file"
	CatalogSourceDatabase = "database"
)

func (c *Config) applyDefaults() {
	// Market defaults
	if c.Market.RegionID == 0 {
		c.Market.RegionID = DefaultRegionID
	}
	if c.Market.SalesTax == 0 {
		c.Market.SalesTax = DefaultSalesTax
	}
	if c.Market.BrokerFee == 0 {
		c.Market.BrokerFee = DefaultBrokerFee
	}

	// ESI defaults
	if c.ESI.BaseURL == "" {
		c.ESI.BaseURL = DefaultESIBaseURL
	}
	if c.ESI.Datasource == "" {
		c.ESI.Datasource = DefaultDatasource
	}
	if c.ESI.Timeout == 0 {
		c.ESI.Timeout = DefaultESITimeout
	}
	if c.ESI.MaxRetries == 0 {
		c.ESI.MaxRetries = DefaultMaxRetries
	}
	if c.ESI.RetryBackoff == 0 {
		c.ESI.RetryBackoff = DefaultRetryBackoff
	}

	// Planetary defaults
	if c.Planetary.TaxRate == 0 {
		c.Planetary.TaxRate = DefaultPlanetaryTax
	}

	// Catalog defaults
	if c.Catalog.Source == "" {
		c.Catalog.Source = CatalogSourceFile
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = DefaultCatalogPath
	}
	applyDBDefaults(&c.Catalog.Database)

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
