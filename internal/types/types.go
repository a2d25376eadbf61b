// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS. Ноль не выдаётся никогда.
type EntityID uint64
