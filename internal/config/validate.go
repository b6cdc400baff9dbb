package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Market.RegionID < 1 {
		return errors.New("market.region_id is required")
	}
	if c.Market.SalesTax < 0 || c.Market.SalesTax >= 1 {
		return fmt.Errorf("market.sales_tax must be in [0, 1), got %v", c.Market.SalesTax)
	}
	if c.Market.BrokerFee < 0 || c.Market.BrokerFee >= 1 {
		return fmt.Errorf("market.broker_fee must be in [0, 1), got %v", c.Market.BrokerFee)
	}
	if c.Market.SalesTax+c.Market.BrokerFee >= 1 {
		return errors.New("market.sales_tax + market.broker_fee must be < 1")
	}

	if c.ESI.BaseURL == "" {
		return errors.New("esi.base_url is required")
	}
	if c.ESI.MaxRetries < 0 {
		return errors.New("esi.max_retries must be >= 0")
	}

	if c.Planetary.TaxRate < 0 || c.Planetary.TaxRate > 1 {
		return fmt.Errorf("planetary.tax_rate must be in [0, 1], got %v", c.Planetary.TaxRate)
	}

	switch c.Catalog.Source {
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return errors.New("catalog.path is required for the file source")
		}
	case CatalogSourceDatabase:
		if err := c.Catalog.Database.validate("catalog.database"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q",
			CatalogSourceFile, CatalogSourceDatabase, c.Catalog.Source)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	return nil
}
