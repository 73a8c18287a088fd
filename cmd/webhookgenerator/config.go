package main

type config struct {
	BaseURL       string   `mapstructure:"base_url"`
	VerifierToken string   `mapstructure:"verifier_token"`
	RealmID       string   `mapstructure:"realm_id"`
	InvoiceIDs    []string `mapstructure:"invoice_ids"`
	Format        string   `mapstructure:"format"`
	Interval      string   `mapstructure:"interval"`
}
