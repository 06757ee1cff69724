package config

import (
	"time"
)

// RedisConfig backs the per-session submission guard. When Enabled is false
// the guard runs in process memory.
type RedisConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	KeyPrefix    string        `yaml:"key_prefix"`
	GuardTTL     time.Duration `yaml:"guard_ttl"`
}

func defaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Enabled:      false,
		Host:         "localhost",
		Port:         6379,
		PoolSize:     10,
		MinIdleConns: 3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		KeyPrefix:    "ecoroute:inflight:",
		GuardTTL:     2 * time.Minute,
	}
}

func loadRedisConfig(r *RedisConfig) {
	r.Enabled = getEnvAsBool("REDIS_ENABLED", r.Enabled)
	r.Host = getEnv("REDIS_HOST", r.Host)
	r.Port = getEnvAsInt("REDIS_PORT", r.Port)
	r.Password = getEnv("REDIS_PASSWORD", r.Password)
	r.DB = getEnvAsInt("REDIS_DB", r.DB)
	r.PoolSize = getEnvAsInt("REDIS_POOL_SIZE", r.PoolSize)
	r.MinIdleConns = getEnvAsInt("REDIS_MIN_IDLE_CONNS", r.MinIdleConns)
	r.DialTimeout = getEnvAsDuration("REDIS_DIAL_TIMEOUT", r.DialTimeout)
	r.ReadTimeout = getEnvAsDuration("REDIS_READ_TIMEOUT", r.ReadTimeout)
	r.WriteTimeout = getEnvAsDuration("REDIS_WRITE_TIMEOUT", r.WriteTimeout)
	r.KeyPrefix = getEnv("REDIS_KEY_PREFIX", r.KeyPrefix)
	r.GuardTTL = getEnvAsDuration("SUBMISSION_GUARD_TTL", r.GuardTTL)
}
