package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8000},
		Auth:    AuthConfig{JWTSecret: "test-secret-key-for-unit-testing", TokenTTL: time.Hour},
		Billing: BillingConfig{DueInDays: 10},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("期望校验通过，实际: %v", err)
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("jwt_secret 过短时应校验失败")
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("端口越界时应校验失败")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HOSTEL_AUTH_JWT_SECRET", "env-secret-key-0123456789")
	t.Setenv("HOSTEL_SERVER_PORT", "9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("期望 Port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Billing.DueInDays != 10 {
		t.Errorf("期望 DueInDays 默认 10，实际=%d", cfg.Billing.DueInDays)
	}
	if !cfg.Auth.Enforce {
		t.Error("auth.enforce 默认应为 true")
	}
}
