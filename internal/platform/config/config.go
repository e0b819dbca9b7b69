// Paquete config: carga y valida la configuración del servidor
// desde variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"poppy-paws/internal/platform/logger"
)

// Config contiene todos los parámetros del servidor de la API.
type Config struct {
	// Puerto HTTP (default 8080)
	Port int

	// DSN de Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string

	// Logging
	LogLevel  logger.Level
	LogFormat logger.Format

	// Password compartida del back office. Vacía => modo dev,
	// las mutaciones quedan abiertas.
	AdminPassword string
	// Secreto HMAC para firmar tokens de sesión.
	TokenSecret string
	// Vigencia de los tokens de sesión (default 12h).
	TokenTTL time.Duration

	// Timeouts del http.Server
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load arma la configuración desde el entorno.
// Devuelve error si un valor no parsea o si falta el secreto
// teniendo password de admin configurada.
func Load() (*Config, error) {
	cfg := &Config{
		DBDSN:         strings.TrimSpace(os.Getenv("DB_DSN")),
		LogLevel:      logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:     logger.ParseFormat(os.Getenv("LOG_FORMAT")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, fmt.Errorf("PORT: %w", err)
	}
	if cfg.TokenTTL, err = getEnvDuration("TOKEN_TTL", 12*time.Hour); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if cfg.ReadTimeout, err = getEnvDuration("HTTP_READ_TIMEOUT", 5*time.Second); err != nil {
		return nil, fmt.Errorf("HTTP_READ_TIMEOUT: %w", err)
	}
	if cfg.WriteTimeout, err = getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, fmt.Errorf("HTTP_WRITE_TIMEOUT: %w", err)
	}

	if cfg.AdminPassword != "" && strings.TrimSpace(cfg.TokenSecret) == "" {
		return nil, errors.New("ADMIN_PASSWORD requiere TOKEN_SECRET")
	}

	return cfg, nil
}

func getEnvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("valor no numérico %q", v)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("duración inválida %q", v)
	}
	return d, nil
}
