package models

// MConfig Structure
type MConfig struct {
	Name     string         `yaml:"name"`
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Storage  MStorageConfig `yaml:"storage"`
	Network  MNetworkConfig `yaml:"network"`
	Import   MImportConfig  `yaml:"import"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
}

type MNetworkConfig struct {
	Enabled        bool     `yaml:"enabled"`
	Proxies        []string `yaml:"proxies"`
	RequestTimeout int      `yaml:"timeout"`
	MaxRetries     int      `yaml:"retries"`
	UserAgent      string   `yaml:"user_agent"`
}

type MImportConfig struct {
	BatchSize           int             `yaml:"batch_size"`
	StaleTimeoutMinutes int             `yaml:"stale_timeout_minutes"`
	Securities          []MSecuritySeed `yaml:"securities"`
}

// MSecuritySeed describes a security upserted into the store at startup so
// imports have a target to point at.
type MSecuritySeed struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
}
