// internal/event/types.go
package event

const (
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен снарядом или суперзаппером
	EnemyEscaped    EventType = "EnemyEscaped"    // Враг дошёл до внешнего кольца
	ProjectileSpent EventType = "ProjectileSpent" // Снаряд долетел до центра без попадания
	LevelAdvanced   EventType = "LevelAdvanced"   // Начат следующий уровень
	PlayerDestroyed EventType = "PlayerDestroyed" // Игра окончена
	SuperzapperUsed EventType = "SuperzapperUsed"
)
