package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Store   StoreConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT. Secret vacío deshabilita la autenticación de /api.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si las rutas /api requieren Bearer Token.
func (c JWTConfig) Enabled() bool {
	return c.Secret != ""
}

// StoreConfig configuración del almacén en memoria.
type StoreConfig struct {
	LatencyMS          int    // latencia artificial por operación (0 = sin espera)
	SeedDir            string // directorio con fixtures JSON; vacío = fixtures embebidos
	DefaultWarehouseID string // bodega del stock inicial de productos nuevos
	DefaultSupplierID  string // proveedor de las órdenes de reposición
}

// BillingConfig datos del emisor impresos en el PDF de las facturas.
type BillingConfig struct {
	IssuerName    string
	IssuerEmail   string
	IssuerAddress string
}

// Latency devuelve la latencia artificial como time.Duration.
func (c StoreConfig) Latency() time.Duration {
	if c.LatencyMS <= 0 {
		return 0
	}
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, STORE_LATENCY_MS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-dashboard"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-dashboard"),
		},
		Store: StoreConfig{
			LatencyMS:          getInt(v, "STORE_LATENCY_MS", 0),
			SeedDir:            getString(v, "SEED_DIR", ""),
			DefaultWarehouseID: getString(v, "DEFAULT_WAREHOUSE_ID", "warehouse-1"),
			DefaultSupplierID:  getString(v, "DEFAULT_SUPPLIER_ID", "sup-001"),
		},
		Billing: BillingConfig{
			IssuerName:    getString(v, "BILLING_ISSUER_NAME", "Inventario Dashboard"),
			IssuerEmail:   getString(v, "BILLING_ISSUER_EMAIL", ""),
			IssuerAddress: getString(v, "BILLING_ISSUER_ADDRESS", ""),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if cfg.Store.LatencyMS < 0 {
		return nil, fmt.Errorf("config: STORE_LATENCY_MS no puede ser negativo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
