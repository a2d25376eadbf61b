package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"go-tempest/internal/defs"
)

// Settings — параметры запуска хоста (окно, терминал, просмотрщик уровней).
// Ядро симуляции их не читает: хост передаёт значения в конструкторы.
type Settings struct {
	Seed       int64  // 0 — взять текущее время
	PprofAddr  string // пусто — профилировщик выключен
	StartLevel int
}

const (
	EnvSeed       = "TEMPEST_SEED"
	EnvPprofAddr  = "TEMPEST_PPROF_ADDR"
	EnvStartLevel = "TEMPEST_START_LEVEL"
)

// LoadSettings читает необязательные .env файлы, затем переменные окружения.
// Отсутствие файла не ошибка; уже заданные переменные окружения не перезаписываются.
func LoadSettings(files ...string) (Settings, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	var s Settings
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}
	s.PprofAddr = os.Getenv(EnvPprofAddr)
	if v := os.Getenv(EnvStartLevel); v != "" {
		lvl, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvStartLevel, err)
		}
		if lvl < 0 || lvl > defs.LastLevel() {
			return Settings{}, fmt.Errorf("invalid %s %d: %w", EnvStartLevel, lvl, defs.ErrInvalidLevel)
		}
		s.StartLevel = lvl
	}
	return s, nil
}
