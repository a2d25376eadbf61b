// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	CenterX      = ScreenWidth / 2
	CenterY      = ScreenHeight / 2

	// MaxDeltaTime ограничивает шаг симуляции. При большем шаге снаряд и враг
	// на одной линии могут проскочить друг сквозь друга на поздних уровнях.
	MaxDeltaTime = 0.04

	CollisionRadius = 15.0  // пиксели
	ProjectileSpeed = 400.0 // пикселей в секунду, не зависит от уровня

	KillScore          = 100
	SuperzapperCharges = 1 // заряды на уровень

	BurstDuration  = 0.35 // секунды
	BurstMaxRadius = 22.0

	ProjectileRadius = 5.0
	WebStrokeWidth   = 2.0

	// Силуэт корабля игрока (U-образный, как на аркадном автомате)
	ShipBaseWidth = 16.0
	ShipArmLength = 20.0
	ShipArmWidth  = 3.0

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	TUITickRate = 30 // тиков в секунду в терминальной версии
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	LaneColor        = color.RGBA{40, 80, 255, 255}
	InnerRingColor   = color.RGBA{50, 205, 50, 255}
	OuterRingColor   = color.RGBA{220, 60, 60, 255}
	PlayerColor      = color.RGBA{240, 240, 240, 255}
	ProjectileColor  = color.RGBA{0, 255, 255, 255}
	BurstColor       = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	GameOverColor    = color.RGBA{255, 40, 40, 255}
	PlayingColor     = color.RGBA{70, 130, 180, 220}
	PausedColor      = color.RGBA{194, 178, 128, 255}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
	KillBarFillColor = color.RGBA{70, 100, 120, 220}
)
