package main

import (
	"fmt"
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-tempest/internal/config"
	"go-tempest/internal/defs"
	"go-tempest/internal/entity"
	"go-tempest/pkg/shape"
	"go-tempest/pkg/web"
)

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(p web.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func main() {
	// --- Инициализация ---
	settings, err := config.LoadSettings(".env")
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Tempest Level Viewer | Left/Right - Change Level")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	center := web.Point{X: config.CenterX, Y: config.CenterY}
	level := settings.StartLevel
	geometry := web.MustBuild(defs.GetLevel(level), center)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		next := level
		if rl.IsKeyPressed(rl.KeyRight) {
			next = (level + 1) % defs.LevelCount()
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			next = (level - 1 + defs.LevelCount()) % defs.LevelCount()
		}
		if next != level {
			level = next
			geometry = web.MustBuild(defs.GetLevel(level), center)
		}
		cfg := defs.GetLevel(level)

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(toRL(config.BackgroundColor))

		n := geometry.LaneCount()
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			rl.DrawLineEx(vec(geometry.Inner[i]), vec(geometry.Outer[i]), config.WebStrokeWidth, toRL(config.LaneColor))
			rl.DrawLineEx(vec(geometry.Inner[i]), vec(geometry.Inner[j]), config.WebStrokeWidth, toRL(config.InnerRingColor))
			rl.DrawLineEx(vec(geometry.Outer[i]), vec(geometry.Outer[j]), config.WebStrokeWidth, toRL(config.OuterRingColor))
			label := geometry.Outer[i].Sub(geometry.Direction(i).Scale(14))
			rl.DrawText(fmt.Sprint(i), int32(label.X)-4, int32(label.Y)-5, 10, toRL(config.TextLightColor))
		}

		// Корабль на линии 0, чтобы было видно ориентацию силуэта
		ship := shape.Ship(geometry, 0, geometry.Outer[0])
		for k := range ship {
			rl.DrawLineEx(vec(ship[k]), vec(ship[(k+1)%len(ship)]), 1.5, toRL(config.PlayerColor))
		}

		def := defs.EnemyLibrary[cfg.EnemyType]
		mid := n / 2
		enemy := shape.Enemy(geometry, entity.EnemyView{
			Lane:     mid,
			Progress: 0.5,
			Position: geometry.Inner[mid].Lerp(geometry.Outer[mid], 0.5),
			Type:     cfg.EnemyType,
			Age:      rl.GetTime(),
		})
		for k := range enemy {
			rl.DrawLineEx(vec(enemy[k]), vec(enemy[(k+1)%len(enemy)]), 1.5, toRL(def.Color))
		}

		lines := []string{
			fmt.Sprintf("Level %d/%d", level+1, defs.LevelCount()),
			fmt.Sprintf("Shape: %s  Lanes: %d", cfg.Shape, cfg.LaneCount),
			fmt.Sprintf("Radii: %.0f..%.0f", cfg.InnerRadius, cfg.OuterRadius),
			fmt.Sprintf("Enemy: %s  speed %.0f px/s  every %.2fs", def.Name, cfg.EnemySpeed, cfg.SpawnInterval),
			fmt.Sprintf("Quota: %d kills", cfg.KillQuota),
		}
		for i, line := range lines {
			rl.DrawText(line, 10, int32(10+i*20), 18, toRL(config.TextLightColor))
		}

		rl.EndDrawing()
	}
}
