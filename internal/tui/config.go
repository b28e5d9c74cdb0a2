package tui

import (
	"github.com/Veraticus/tally/internal/config"
	"github.com/Veraticus/tally/internal/service"
	"github.com/Veraticus/tally/internal/tui/themes"
)

// Config holds menu configuration.
type Config struct {
	Categories service.CategoryStore
	Expenses   service.ExpenseStore
	Theme      themes.Theme
	Currency   string
	Width      int
}

// Option is a functional option for configuring the menu.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Currency: config.DefaultCurrency,
		Width:    80,
	}
}

// WithStores sets the stores the menu actions call.
func WithStores(categories service.CategoryStore, expenses service.ExpenseStore) Option {
	return func(c *Config) {
		c.Categories = categories
		c.Expenses = expenses
	}
}

// WithCurrency sets the symbol appended to amounts.
func WithCurrency(currency string) Option {
	return func(c *Config) {
		c.Currency = currency
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithWidth sets the initial terminal width.
func WithWidth(width int) Option {
	return func(c *Config) {
		c.Width = width
	}
}
