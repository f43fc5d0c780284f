package component

// ReloadRequest asks ReloadSystem to re-read player.yaml on its next update.
// The entity holding it is destroyed once the request is handled.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
