package constants

const (
	// Scopes may carry their own device manager to override the
	// global accessor registry (e.g. for dead disk remapping).
	SCOPE_DEVICE_MANAGER = "$device_manager"
)
