package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Telegram struct {
		BotToken string  `env:"BOT_TOKEN,required"`
		Debug    bool    `env:"TELEGRAM_DEBUG" envDefault:"false"`
		AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`
	}

	// CheckInTZ is the IANA zone used to decide the daily check-in
	// calendar-day boundary. All users share one boundary.
	CheckInTZ string `env:"CHECKIN_TZ" envDefault:"UTC"`
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// CheckInLocation resolves CheckInTZ. Invalid zones are a deploy error.
func (c *Config) CheckInLocation() (*time.Location, error) {
	return time.LoadLocation(c.CheckInTZ)
}

func MustLoad() *Config {
	// .env is optional; in production variables are set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
