package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Storage      StorageConfig      `toml:"storage"`
	Database     DatabaseConfig     `toml:"database"`
	Redis        RedisConfig        `toml:"redis"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	RateLimit    RateLimitConfig    `toml:"rate_limit"`
	CORS         CORSConfig         `toml:"cors"`
	Pricing      PricingConfig      `toml:"pricing"`
	AddOns       []AddOnConfig      `toml:"add_ons"`
	PromoCodes   []PromoCodeConfig  `toml:"promo_codes"`
	Availability AvailabilityConfig `toml:"availability"`
	BookingAPI   BookingAPIConfig   `toml:"booking_api"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// StorageConfig выбор хранилища бронирований: memory или postgres
type StorageConfig struct {
	Driver string `toml:"driver"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	MigrateOnStart  bool   `toml:"migrate_on_start"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig хранилище сессий мастера; при Enabled=false сессии живут в памяти
type RedisConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	SessionTTL int    `toml:"session_ttl"` // секунды
}

func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.SessionTTL) * time.Second
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type RateLimitConfig struct {
	Enabled        bool     `toml:"enabled"`
	RPS            float64  `toml:"rps"`
	Burst          int      `toml:"burst"`
	IdleTimeout    int      `toml:"idle_timeout"`    // секунды
	TrustedProxies []string `toml:"trusted_proxies"` // IP или CIDR
}

// IdleTTL время хранения лимита неактивного клиента
func (r RateLimitConfig) IdleTTL() time.Duration {
	return time.Duration(r.IdleTimeout) * time.Second
}

// TrustedProxyNets разбирает trusted_proxies; одиночный IP становится сетью /32 или /128
func (r RateLimitConfig) TrustedProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(r.TrustedProxies))
	for _, p := range r.TrustedProxies {
		if _, n, err := net.ParseCIDR(p); err == nil {
			nets = append(nets, n)
			continue
		}
		ip := net.ParseIP(p)
		if ip == nil {
			return nil, fmt.Errorf("%w: rate_limit.trusted_proxies entry %q", ErrInvalidConfig, p)
		}
		bits := 8 * net.IPv6len
		if v4 := ip.To4(); v4 != nil {
			ip, bits = v4, 8*net.IPv4len
		}
		nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return nets, nil
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// PricingConfig тарифы: ставка за м² по категории и скидка по частоте
type PricingConfig struct {
	Rates     map[string]float64 `toml:"rates"`
	Discounts map[string]float64 `toml:"discounts"`
}

type AddOnConfig struct {
	ID    string  `toml:"id"`
	Label string  `toml:"label"`
	Fee   float64 `toml:"fee"`
}

type PromoCodeConfig struct {
	Code        string  `toml:"code"`
	Discount    float64 `toml:"discount"`
	Description string  `toml:"description"`
}

type AvailabilityConfig struct {
	CapacityPerSlot int      `toml:"capacity_per_slot"`
	HorizonDays     int      `toml:"horizon_days"`
	ClosedDates     []string `toml:"closed_dates"` // YYYY-MM-DD
}

// BookingAPIConfig адрес API для консольного клиента
type BookingAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает .env (если есть), config.toml (если есть), применяет переменные окружения и проверяет результат
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация без файла: память, без Redis, метрики включены
func Default() *Config {
	tables := pricing.DefaultTables()

	rates := make(map[string]float64, len(tables.Rates))
	for k, v := range tables.Rates {
		rates[string(k)] = v
	}
	discounts := make(map[string]float64, len(tables.Discounts))
	for k, v := range tables.Discounts {
		discounts[string(k)] = v
	}

	addOns := make([]AddOnConfig, 0, len(domain.DefaultAddOns))
	for _, a := range domain.DefaultAddOns {
		addOns = append(addOns, AddOnConfig{ID: a.ID, Label: a.Label, Fee: a.Fee})
	}

	promos := make([]PromoCodeConfig, 0, len(domain.DefaultPromoCodes))
	for _, p := range domain.DefaultPromoCodes {
		promos = append(promos, PromoCodeConfig{Code: p.Code, Discount: p.Discount, Description: p.Description})
	}

	return &Config{
		Server: ServerConfig{
			HTTPPort:        3001,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Storage: StorageConfig{Driver: StorageMemory},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "sbn_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			SessionTTL: 86400,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "sbn-booking",
			Path:        "/metrics",
		},
		RateLimit: RateLimitConfig{
			Enabled:     true,
			RPS:         5,
			Burst:       20,
			IdleTimeout: 600,
		},
		Pricing: PricingConfig{
			Rates:     rates,
			Discounts: discounts,
		},
		AddOns:     addOns,
		PromoCodes: promos,
		Availability: AvailabilityConfig{
			CapacityPerSlot: domain.DefaultCapacity,
			HorizonDays:     domain.DefaultHorizonDays,
		},
		BookingAPI: BookingAPIConfig{
			URL:     "http://localhost:3001",
			Timeout: 10,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT=%q", ErrInvalidEnv, v)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	if v := os.Getenv("BOOKING_API_URL"); v != "" {
		c.BookingAPI.URL = v
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: storage.driver=%q (memory|postgres)", ErrInvalidConfig, c.Storage.Driver)
	}

	for _, st := range domain.ServiceTypes {
		rate, ok := c.Pricing.Rates[string(st)]
		if !ok || rate <= 0 {
			return fmt.Errorf("%w: pricing.rates.%s must be positive", ErrInvalidConfig, st)
		}
	}
	for _, f := range domain.Frequencies {
		discount, ok := c.Pricing.Discounts[string(f)]
		if !ok || discount < 0 || discount >= 100 {
			return fmt.Errorf("%w: pricing.discounts.%s must be in [0, 100)", ErrInvalidConfig, f)
		}
	}

	seen := make(map[string]bool, len(c.AddOns))
	for _, a := range c.AddOns {
		if a.ID == "" || a.Fee < 0 || seen[a.ID] {
			return fmt.Errorf("%w: add_ons entry %q", ErrInvalidConfig, a.ID)
		}
		seen[a.ID] = true
	}

	for _, p := range c.PromoCodes {
		if p.Code == "" || p.Discount <= 0 || p.Discount > 100 {
			return fmt.Errorf("%w: promo_codes entry %q", ErrInvalidConfig, p.Code)
		}
	}

	if c.Availability.HorizonDays < 0 {
		return fmt.Errorf("%w: availability.horizon_days=%d", ErrInvalidConfig, c.Availability.HorizonDays)
	}
	if _, err := c.parseClosedDates(); err != nil {
		return err
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	if c.RateLimit.IdleTimeout < 0 {
		return fmt.Errorf("%w: rate_limit.idle_timeout=%d", ErrInvalidConfig, c.RateLimit.IdleTimeout)
	}
	if _, err := c.RateLimit.TrustedProxyNets(); err != nil {
		return err
	}
	return nil
}

// PricingTables тарифные таблицы для pricing.Engine
func (c *Config) PricingTables() pricing.Tables {
	t := pricing.Tables{
		Rates:     make(map[domain.ServiceType]float64, len(c.Pricing.Rates)),
		Discounts: make(map[domain.Frequency]float64, len(c.Pricing.Discounts)),
		AddOns:    pricing.AddOnFees(c.AddOnCatalog()),
	}
	for k, v := range c.Pricing.Rates {
		t.Rates[domain.ServiceType(k)] = v
	}
	for k, v := range c.Pricing.Discounts {
		t.Discounts[domain.Frequency(k)] = v
	}
	return t
}

func (c *Config) AddOnCatalog() []domain.AddOn {
	addOns := make([]domain.AddOn, 0, len(c.AddOns))
	for _, a := range c.AddOns {
		addOns = append(addOns, domain.AddOn{ID: a.ID, Label: a.Label, Fee: a.Fee})
	}
	return addOns
}

func (c *Config) Promos() []domain.PromoCode {
	codes := make([]domain.PromoCode, 0, len(c.PromoCodes))
	for _, p := range c.PromoCodes {
		codes = append(codes, domain.PromoCode{Code: p.Code, Discount: p.Discount, Description: p.Description})
	}
	return codes
}

// AvailabilityRules правила доступности; даты уже проверены в Validate
func (c *Config) AvailabilityRules() domain.AvailabilityRules {
	closed, _ := c.parseClosedDates()
	return domain.AvailabilityRules{
		CapacityPerSlot: c.Availability.CapacityPerSlot,
		HorizonDays:     c.Availability.HorizonDays,
		ClosedDates:     closed,
	}
}

func (c *Config) parseClosedDates() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(c.Availability.ClosedDates))
	for _, s := range c.Availability.ClosedDates {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, fmt.Errorf("%w: availability.closed_dates %q", ErrInvalidConfig, s)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
