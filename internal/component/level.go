package component

import "go-tempest/internal/defs"

// Level — текущий уровень и его счётчики.
type Level struct {
	Index      int
	Config     defs.LevelConfig
	SpawnTimer float64 // секунды с последнего появления врага
	Kills      int     // уничтожено врагов на этом уровне
}
