package component

// RespawnRequest is added when a player dies. RespawnSystem counts Frames
// down and then returns the player to Spawn.
type RespawnRequest struct {
	Frames int
}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
