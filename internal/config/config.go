package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Asynq    Asynq
	Bot      Bot
	Gemini   Gemini
	Scoring  Scoring
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"dealflow"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	// PublicURL попадает в ссылки отслеживания в уведомлениях.
	PublicURL string `env:"APP_PUBLIC_URL" envDefault:"http://localhost:8080"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout    time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	LogFieldMaxLen       int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"4096"`
}

type Bot struct {
	Token string `env:"BOT_TOKEN" json:"-"`
	// AdminID - пользователь, которому доступны команды бота.
	AdminID int64 `env:"BOT_ADMIN_ID"`
	// ChatID - чат для приоритетных уведомлений и сообщений о запуске.
	ChatID int64 `env:"BOT_CHAT_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

type Gemini struct {
	APIKey string `env:"GEMINI_API_KEY" json:"-"`
	Model  string `env:"GEMINI_MODEL"`
}

func (g Gemini) Enabled() bool {
	return g.APIKey != ""
}

type Scoring struct {
	// MatchGate - минимальная оценка сделки, с которой запускается подбор.
	MatchGate int `env:"SCORING_MATCH_GATE" envDefault:"60"`
	// MatchThreshold - минимальная оценка совпадения для сохранения.
	MatchThreshold int `env:"MATCHING_THRESHOLD" envDefault:"60"`
	// PriorityScore - с этой оценки совпадение дублируется в чат администратора.
	PriorityScore  int           `env:"MATCHING_PRIORITY_SCORE" envDefault:"80"`
	NotifyLimit    int           `env:"MATCHING_NOTIFY_LIMIT" envDefault:"10"`
	Parallelism    int           `env:"MATCHING_PARALLELISM" envDefault:"4"`
	HotScore       int           `env:"STATS_HOT_SCORE" envDefault:"80"`
	AdvisorTimeout time.Duration `env:"SCORING_ADVISOR_TIMEOUT" envDefault:"10s"`
	SeenTTL        time.Duration `env:"DEALS_SEEN_TTL" envDefault:"1h"`
	BuyerCacheTTL  time.Duration `env:"BUYER_CACHE_TTL" envDefault:"5m"`

	SweepEnabled  bool          `env:"SWEEP_ENABLED" envDefault:"true"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"15m"`
	SweepLimit    int           `env:"SWEEP_LIMIT" envDefault:"100"`
	SweepPace     time.Duration `env:"SWEEP_PACE" envDefault:"250ms"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
