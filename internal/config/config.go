package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
}

type RemindersConfig struct {
	Enabled   bool   `yaml:"enabled"`
	DailyTime string `yaml:"daily_time"` // HH:MM, server local time
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		// Postgres DSN; empty selects the in-memory store.
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email        EmailConfig     `yaml:"email"`
	Telegram     TelegramConfig  `yaml:"telegram"`
	Reminders    RemindersConfig `yaml:"reminders"`
	SeedDemoData bool            `yaml:"seed_demo_data"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Reminders.DailyTime == "" {
		cfg.Reminders.DailyTime = "08:00"
	}
	return &cfg
}
