package config

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	sandboxAPIBaseURL    = "https://sandbox-quickbooks.api.intuit.com"
	productionAPIBaseURL = "https://quickbooks.api.intuit.com"
	localSessionSecret   = "quoterecon-local-dev"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	QBO           QBOConfig
	Auth          AuthConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

// QBOConfig holds the accounting API application settings.
type QBOConfig struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	Environment   string
	APIBaseURL    string
	TokenURL      string
	AuthURL       string
	MinorVersion  string
	VerifierToken string
	Timeout       time.Duration
}

type AuthConfig struct {
	SessionSecret string
	SecureCookie  bool
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
	PrometheusEnabled bool
}

func Load() (Config, error) {
	return load(true)
}

// LoadForTool loads config for CLI tools that neither serve the connect flow
// nor need application credentials up front.
func LoadForTool() (Config, error) {
	return load(false)
}

func load(strict bool) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("quoterecon_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("quoterecon_port", 8080)
	v.SetDefault("quoterecon_db_path", "data/quoterecon")
	v.SetDefault("quoterecon_db_timing", false)
	v.SetDefault("quoterecon_secure_cookie", false)
	v.SetDefault("qbo_environment", "sandbox")
	v.SetDefault("qbo_api_base_url", "")
	v.SetDefault("qbo_token_url", "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer")
	v.SetDefault("qbo_auth_url", "https://appcenter.intuit.com/connect/oauth2")
	v.SetDefault("qbo_minor_version", "75")
	v.SetDefault("qbo_webhook_verifier_token", "")
	v.SetDefault("qbo_http_timeout_ms", 15000)
	v.SetDefault("quoterecon_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "")
	v.SetDefault("quoterecon_service_name", "quoterecon")
	v.SetDefault("quoterecon_version", "dev")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("quoterecon_otel_sampling_ratio", 1.0)
	v.SetDefault("quoterecon_otel_metrics_console", false)
	v.SetDefault("quoterecon_metrics_enabled", true)

	env := resolveEnvironment(v)
	port := v.GetInt("quoterecon_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid QUOTERECON_PORT: %d", port)
	}

	qboEnv := strings.ToLower(strings.TrimSpace(v.GetString("qbo_environment")))
	apiBaseURL := strings.TrimRight(strings.TrimSpace(v.GetString("qbo_api_base_url")), "/")
	switch qboEnv {
	case "sandbox":
		if apiBaseURL == "" {
			apiBaseURL = sandboxAPIBaseURL
		}
	case "production":
		if apiBaseURL == "" {
			apiBaseURL = productionAPIBaseURL
		}
	default:
		return Config{}, fmt.Errorf("invalid QBO_ENVIRONMENT: %q (want sandbox or production)", qboEnv)
	}

	timeoutMS := v.GetInt("qbo_http_timeout_ms")
	if timeoutMS <= 0 {
		timeoutMS = 15000
	}

	redirectURL := strings.TrimSpace(v.GetString("qbo_redirect_url"))
	if redirectURL == "" {
		redirectURL = fmt.Sprintf("http://localhost:%d/auth/qbo/callback", port)
	}

	samplingRatio := min(max(v.GetFloat64("quoterecon_otel_sampling_ratio"), 0), 1)

	serviceName := firstNonEmpty(v.GetString("otel_service_name"), v.GetString("quoterecon_service_name"), "quoterecon")
	serviceVersion := firstNonEmpty(v.GetString("quoterecon_version"), v.GetString("otel_service_version"), "dev")

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	metricsConsole := v.GetBool("quoterecon_otel_metrics_console")

	cfg := Config{
		Environment: env,
		Server:      ServerConfig{Port: port},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("quoterecon_db_path")),
			LogTiming: v.GetBool("quoterecon_db_timing"),
		},
		QBO: QBOConfig{
			ClientID:      strings.TrimSpace(v.GetString("qbo_client_id")),
			ClientSecret:  strings.TrimSpace(v.GetString("qbo_client_secret")),
			RedirectURL:   redirectURL,
			Environment:   qboEnv,
			APIBaseURL:    apiBaseURL,
			TokenURL:      strings.TrimSpace(v.GetString("qbo_token_url")),
			AuthURL:       strings.TrimSpace(v.GetString("qbo_auth_url")),
			MinorVersion:  strings.TrimSpace(v.GetString("qbo_minor_version")),
			VerifierToken: strings.TrimSpace(v.GetString("qbo_webhook_verifier_token")),
			Timeout:       time.Duration(timeoutMS) * time.Millisecond,
		},
		Auth: AuthConfig{
			SessionSecret: strings.TrimSpace(v.GetString("quoterecon_session_secret")),
			SecureCookie:  v.GetBool("quoterecon_secure_cookie"),
		},
		Observability: ObservabilityConfig{
			Enabled:           v.GetBool("quoterecon_otel_enabled") || otlpEndpoint != "" || metricsConsole,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(otlpCommonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))),
			OTLPMetricHeaders: mergeHeaderMaps(otlpCommonHeaders, parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
			PrometheusEnabled: v.GetBool("quoterecon_metrics_enabled"),
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/quoterecon"
	}
	if strict && !cfg.IsLocalDevelopment() {
		if cfg.Auth.SessionSecret == "" {
			return Config{}, fmt.Errorf("QUOTERECON_SESSION_SECRET is required outside local/dev environments")
		}
		if cfg.QBO.ClientID == "" || cfg.QBO.ClientSecret == "" {
			return Config{}, fmt.Errorf("QBO_CLIENT_ID and QBO_CLIENT_SECRET are required outside local/dev environments")
		}
	}
	if strict && cfg.IsLocalDevelopment() && cfg.Auth.SessionSecret == "" {
		cfg.Auth.SessionSecret = localSessionSecret
	}

	return cfg, nil
}

func parseOTLPHeaders(raw string) map[string]string {
	out := make(map[string]string)
	for part := range strings.SplitSeq(raw, ",") {
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

// IsProductionRealm reports whether the connected company is a live one.
func (c Config) IsProductionRealm() bool {
	return c.QBO.Environment == "production"
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"quoterecon_env", "app_env", "go_env"} {
		if value := strings.TrimSpace(v.GetString(key)); value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
