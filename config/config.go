/*
Package config loads the engine's configuration from YAML.

PURPOSE:
  Every policy value the engine ships with — rate tables, the holiday
  calendar, the CAC index snapshot, the fx fallback — is overridable from
  a version-controlled YAML file, so legal/fiscal changes land as config
  diffs. Server and logging options live in the same file.

PRECEDENCE:
  Compiled-in defaults < YAML file < environment (viper.AutomaticEnv).
  A zero/absent value in the file means "keep the default".

EXAMPLE (fiscal.yml):
  server:
    port: 8080
  logging:
    level: info
    format: json
  fiscal:
    vatpercent: 21
    stamptax:
      caba: 2.7
      pba: 2.0
    stampexemptionthresholdars: 226100000
  holidays:
    - date: 2025-01-01
      name: Año Nuevo

SEE ALSO:
  - fiscal/rates.go: DefaultRateTable, the values being overridden
  - cmd/server, cmd/fiscalc: The two consumers
*/
package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/habitar/fiscal-engine/fiscal"
	"github.com/habitar/fiscal-engine/indices"
)

// Configuration is the full configuration tree.
type Configuration struct {
	Server   ServerConfig
	Logging  LoggingConfig
	History  HistoryConfig
	Fiscal   FiscalConfig
	Holidays []HolidayEntry
	CAC      CACConfig
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// HistoryConfig holds the calculation-history store options.
type HistoryConfig struct {
	Path string // SQLite path; empty disables the history store
}

// FiscalConfig overrides rate-table values. Zero values keep defaults.
type FiscalConfig struct {
	FallbackExchangeRate       float64
	VATPercent                 float64
	StampTax                   map[string]float64
	StampExemptionThresholdARS float64
	Cedular                    map[string]float64
	CedularCutoffYear          int
	Commissions                []CommissionEntry
	EscrituraFees              []EscrituraFeeEntry
}

// CommissionEntry overrides one commission scale.
type CommissionEntry struct {
	Operation string
	Zone      string
	Owner     float64
	Client    float64
}

// EscrituraFeeEntry overrides one role's escritura fee schedule.
type EscrituraFeeEntry struct {
	Role           string
	Agency         float64
	Notary         float64
	OtherCosts     float64
	Administrative float64
	ReserveFund    float64
	VATOnFees      bool
}

// HolidayEntry is one configured holiday.
type HolidayEntry struct {
	Date string // 2006-01-02
	Name string
}

// CACConfig overrides the construction-index source.
type CACConfig struct {
	Published map[string]float64 // "2024-03" -> monthly %
	Estimated float64            // flat % for months beyond the data
}

// Default returns the compiled-in configuration.
func Default() *Configuration {
	return &Configuration{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		History: HistoryConfig{Path: "fiscal.db"},
	}
}

// Load reads the YAML configuration at the given path. An empty path
// returns the defaults.
func Load(configPath string) (*Configuration, error) {
	conf := Default()
	if configPath == "" {
		return conf, nil
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}
	return conf, nil
}

// =============================================================================
// CONVERSION TO ENGINE VALUES
// =============================================================================

// RateTable merges the configured overrides over the default table.
func (c *Configuration) RateTable() fiscal.RateTable {
	table := fiscal.DefaultRateTable()
	f := c.Fiscal

	if f.VATPercent > 0 {
		table.VAT = fiscal.NewPercent(f.VATPercent)
	}
	if len(f.StampTax) > 0 {
		table.StampTax = make(map[fiscal.Jurisdiction]fiscal.Percentage, len(f.StampTax))
		for key, rate := range f.StampTax {
			table.StampTax[fiscal.Jurisdiction(key)] = fiscal.NewPercent(rate)
		}
	}
	if f.StampExemptionThresholdARS > 0 {
		table.StampExemptionThresholdARS = decimal.NewFromFloat(f.StampExemptionThresholdARS)
	}
	if len(f.Cedular) > 0 {
		table.Cedular = make(map[fiscal.Jurisdiction]fiscal.Percentage, len(f.Cedular))
		for key, rate := range f.Cedular {
			table.Cedular[fiscal.Jurisdiction(key)] = fiscal.NewPercent(rate)
		}
	}
	if f.CedularCutoffYear > 0 {
		table.CedularCutoffYear = f.CedularCutoffYear
	}
	for _, entry := range f.Commissions {
		key := fiscal.CommissionKey{
			Operation: fiscal.OperationType(entry.Operation),
			Zone:      fiscal.Jurisdiction(entry.Zone),
		}
		table.Commissions[key] = fiscal.CommissionPair{
			Owner:  fiscal.NewPercent(entry.Owner),
			Client: fiscal.NewPercent(entry.Client),
		}
	}
	for _, entry := range f.EscrituraFees {
		table.EscrituraFees[fiscal.Role(entry.Role)] = fiscal.EscrituraFees{
			Agency:         fiscal.NewPercent(entry.Agency),
			Notary:         fiscal.NewPercent(entry.Notary),
			OtherCosts:     fiscal.NewPercent(entry.OtherCosts),
			Administrative: fiscal.NewPercent(entry.Administrative),
			ReserveFund:    fiscal.NewPercent(entry.ReserveFund),
			VATOnFees:      entry.VATOnFees,
		}
	}
	return table
}

// HolidaySet parses the configured holidays, defaulting to the compiled-in
// national calendar when none are configured.
func (c *Configuration) HolidaySet() (fiscal.HolidaySet, error) {
	if len(c.Holidays) == 0 {
		return fiscal.Argentina2024(), nil
	}

	holidays := make([]fiscal.Holiday, 0, len(c.Holidays))
	for _, entry := range c.Holidays {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			return fiscal.HolidaySet{}, fmt.Errorf("holiday %q: invalid date %q (use YYYY-MM-DD)", entry.Name, entry.Date)
		}
		holidays = append(holidays, fiscal.Holiday{Date: date, Name: entry.Name})
	}
	return fiscal.NewHolidaySet(holidays...), nil
}

// IndexSource builds the CAC source from config, defaulting to the
// compiled-in snapshot.
func (c *Configuration) IndexSource() indices.IndexSource {
	if len(c.CAC.Published) == 0 && c.CAC.Estimated == 0 {
		return indices.DefaultSource()
	}
	estimated := c.CAC.Estimated
	if estimated == 0 {
		estimated = 3.0
	}
	return indices.NewStaticSource(c.CAC.Published, estimated)
}

// FallbackExchangeRate returns the configured fx fallback or the engine
// constant.
func (c *Configuration) FallbackExchangeRate() fiscal.ExchangeRate {
	if c.Fiscal.FallbackExchangeRate > 0 {
		return fiscal.NewExchangeRate(c.Fiscal.FallbackExchangeRate)
	}
	return fiscal.ExchangeRate{ARSPerUSD: fiscal.FallbackExchangeRate}
}
