package config

import "time"

type Redis struct {
	// Address пустой - кэш покупателей и очередь отключены.
	Address            string `env:"REDIS_ADDRESS"`
	Username           string `env:"REDIS_USERNAME"`
	Password           string `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int    `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int    `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int    `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}

type Asynq struct {
	Enabled     bool          `env:"ASYNQ_ENABLED" envDefault:"true"`
	Concurrency int           `env:"ASYNQ_CONCURRENCY" envDefault:"10"`
	MaxRetry    int           `env:"ASYNQ_MAX_RETRY" envDefault:"3"`
	Timeout     time.Duration `env:"ASYNQ_TASK_TIMEOUT" envDefault:"1m"`
}
