package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Server holds backend configuration, read from the environment.
type Server struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"5000"`
	CatalogFile     string        `envconfig:"CATALOG_FILE" default:"products.json"`
	CatalogDB       string        `envconfig:"CATALOG_DB" default:""` // sqlite path; overrides CatalogFile when set
	MigrationsPath  string        `envconfig:"MIGRATIONS_PATH" default:"migrations"`
	ContactsFile    string        `envconfig:"CONTACTS_FILE" default:"contacts.json"`
	OrdersFile      string        `envconfig:"ORDERS_FILE" default:"orders.json"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:""`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Client holds storefront CLI configuration.
type Client struct {
	ServerURL      string        `envconfig:"SHOP_SERVER_URL" default:"http://localhost:5000"`
	StateDir       string        `envconfig:"SHOP_STATE_DIR" default:""` // defaults to ~/.clothing-shop
	RedisAddr      string        `envconfig:"SHOP_REDIS_ADDR" default:""` // shared cart via Redis when set
	Session        string        `envconfig:"SHOP_SESSION" default:"default"`
	RequestTimeout time.Duration `envconfig:"SHOP_REQUEST_TIMEOUT" default:"5s"`
}

func LoadServer() (Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return Server{}, fmt.Errorf("failed to load server config: %w", err)
	}
	return cfg, nil
}

func LoadClient() (Client, error) {
	var cfg Client
	if err := envconfig.Process("", &cfg); err != nil {
		return Client{}, fmt.Errorf("failed to load client config: %w", err)
	}
	return cfg, nil
}
