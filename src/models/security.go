package models

// MSecurity represents a tradable instrument identified by its ticker.
type MSecurity struct {
	ID       int64  `json:"id"`
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Exchange string `json:"exchange"`
	Currency string `json:"currency"`
}

// MSecurityMeta is the instrument metadata a provider reports alongside
// price history. Empty fields mean the provider did not say.
type MSecurityMeta struct {
	Type     string
	Exchange string
	Currency string
}
