package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fr0stylo/quoterecon/pkg/eventpublisher"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	once := flag.Bool("once", false, "send a single notification and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	interval, _ := time.ParseDuration(cfg.Interval)

	client := eventpublisher.Client{
		Endpoint:      cfg.BaseURL,
		VerifierToken: cfg.VerifierToken,
		Timeout:       10 * time.Second,
	}

	next := 0
	if *once {
		if err := sendNotification(client, cfg, &next); err != nil {
			fmt.Fprintln(os.Stderr, "webhook error:", err)
			os.Exit(1)
		}
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := sendNotification(client, cfg, &next); err != nil {
			fmt.Fprintln(os.Stderr, "webhook error:", err)
		}
		<-ticker.C
	}
}

func loadConfig(path string) (config, error) {
	if strings.TrimSpace(path) == "" {
		return config{}, fmt.Errorf("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("format", string(eventpublisher.FormatLegacy))
	v.SetDefault("interval", "30s")
	if err := v.ReadInConfig(); err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.VerifierToken = strings.TrimSpace(cfg.VerifierToken)
	cfg.RealmID = strings.TrimSpace(cfg.RealmID)
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Interval = strings.TrimSpace(cfg.Interval)

	if cfg.BaseURL == "" || cfg.RealmID == "" || len(cfg.InvoiceIDs) == 0 {
		return config{}, fmt.Errorf("config must include base_url, realm_id, invoice_ids")
	}
	switch eventpublisher.Format(cfg.Format) {
	case eventpublisher.FormatLegacy, eventpublisher.FormatCloudEvents:
	default:
		return config{}, fmt.Errorf("format must be %q or %q", eventpublisher.FormatLegacy, eventpublisher.FormatCloudEvents)
	}

	parsed, err := time.ParseDuration(cfg.Interval)
	if err != nil {
		return config{}, fmt.Errorf("invalid interval duration: %w", err)
	}
	if parsed <= 0 {
		return config{}, fmt.Errorf("interval must be positive")
	}

	return cfg, nil
}

// sendNotification posts an invoice creation for the next configured id,
// cycling through the list.
func sendNotification(client eventpublisher.Client, cfg config, next *int) error {
	invoiceID := strings.TrimSpace(cfg.InvoiceIDs[*next%len(cfg.InvoiceIDs)])
	*next++

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := client.Publish(ctx, eventpublisher.Format(cfg.Format), []eventpublisher.Event{{
		RealmID:    cfg.RealmID,
		EntityType: "Invoice",
		Operation:  "Create",
		EntityID:   invoiceID,
	}})
	if err != nil {
		return err
	}
	fmt.Printf("Notification sent: invoice %s (%s)\n", invoiceID, cfg.Format)
	return nil
}
