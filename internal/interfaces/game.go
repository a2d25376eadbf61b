package interfaces

// Controls — команды игрока, которые хост передаёт симуляции.
// В терминальном состоянии все команды игнорируются.
type Controls interface {
	Fire()
	MoveLaneForward()
	MoveLaneBackward()
	UseSuperzapper()
}
