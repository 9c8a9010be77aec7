package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			return fmt.Errorf("rate_limit.rps must be > 0 (got %v)", c.RateLimit.RPS)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
		}
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	if err := c.Voting.validate(); err != nil {
		return fmt.Errorf("voting: %w", err)
	}

	return nil
}

func (m *ModerationConfig) validate() error {
	if m.MaxConflictRetries < 0 {
		return fmt.Errorf("max_conflict_retries must be >= 0 (got %d)", m.MaxConflictRetries)
	}
	if m.MaxPendingPerRecord <= 0 {
		return fmt.Errorf("max_pending_per_record must be > 0 (got %d)", m.MaxPendingPerRecord)
	}
	if m.QueueLimit <= 0 {
		return fmt.Errorf("queue_limit must be > 0 (got %d)", m.QueueLimit)
	}
	return nil
}

func (v *VotingConfig) validate() error {
	if v.MinDuration <= 0 {
		return fmt.Errorf("min_duration must be > 0 (got %s)", v.MinDuration)
	}
	if v.MaxDuration < v.MinDuration {
		return fmt.Errorf("max_duration %s is shorter than min_duration %s", v.MaxDuration, v.MinDuration)
	}
	return nil
}
