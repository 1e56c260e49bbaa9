package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ShopConfig carries shop-level settings that the owner may tune without
// rebuilding: display currency and the fallback reorder threshold applied
// when a new part is added without one.
type ShopConfig struct {
	Currency             string `mapstructure:"currency"`
	DefaultMinStockLevel int    `mapstructure:"defaultMinStockLevel"`
	RecentServiceCount   int    `mapstructure:"recentServiceCount"`
}

func DefaultShopConfig() ShopConfig {
	return ShopConfig{
		Currency:             "VND",
		DefaultMinStockLevel: 5,
		RecentServiceCount:   5,
	}
}

type ShopConfigHolder struct {
	current atomic.Value // holds ShopConfig
}

// NewShopConfigHolder reads shop.yml if present, falls back to defaults,
// and hot-reloads on file change.
func NewShopConfigHolder() (*ShopConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("shop")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/garagekit")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GARAGEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultShopConfig()
		v.SetDefault("shop.currency", defaults.Currency)
		v.SetDefault("shop.defaultMinStockLevel", defaults.DefaultMinStockLevel)
		v.SetDefault("shop.recentServiceCount", defaults.RecentServiceCount)
	}

	var cfg ShopConfig
	if err := v.UnmarshalKey("shop", &cfg); err != nil {
		return nil, err
	}
	if err := validateShopConfig(cfg); err != nil {
		return nil, err
	}

	holder := &ShopConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated ShopConfig
		if err := v.UnmarshalKey("shop", &updated); err != nil {
			log.Printf("[shop-config] reload failed: %v", err)
			return
		}
		if err := validateShopConfig(updated); err != nil {
			log.Printf("[shop-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[shop-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticShopConfigHolder wraps a fixed config with no file watching.
// Intended for tests.
func NewStaticShopConfigHolder(cfg ShopConfig) *ShopConfigHolder {
	holder := &ShopConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *ShopConfigHolder) Get() ShopConfig {
	return h.current.Load().(ShopConfig)
}

func validateShopConfig(cfg ShopConfig) error {
	if strings.TrimSpace(cfg.Currency) == "" {
		return errors.New("shop.currency cannot be empty")
	}
	if cfg.DefaultMinStockLevel < 0 {
		return errors.New("shop.defaultMinStockLevel cannot be negative")
	}
	if cfg.RecentServiceCount <= 0 {
		return errors.New("shop.recentServiceCount must be positive")
	}
	return nil
}
