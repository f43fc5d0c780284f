package component

// SafeRespawn stores where an entity is returned to after dying.
type SafeRespawn struct {
	X float64
	Y float64
}

var SafeRespawnComponent = NewComponent[SafeRespawn]()
