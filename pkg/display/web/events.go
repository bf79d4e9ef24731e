package web

// Event identifies a setting changed by a client. System messages sent
// by a client are laid out as [System, Event, value...].
type Event = uint8

const (
	_ Event = iota
	Compression
	CompressionLevel
	FramePatching
	FrameSkipping
	ClientStatus
	FramePatchingRatio
	RegisterUsername
	KeepAlive = 254
	Closing   = 255
)

// System is the first byte of a client message carrying an Event.
const System = 10

// Type is the first byte of every message sent by the server.
type Type = uint8

const (
	Frame Type = iota
	FramePatch
	FrameSkip
	ClientInfo
	PatchCache
	PatchCacheSync
	FrameCache
	FrameCacheSync
	FrameSync
	ClientListSync
	ClientClosing
	ServerInfo
	PlayerIdentify
)
