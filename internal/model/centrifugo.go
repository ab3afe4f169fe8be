package model

type CentrifugoRequest struct {
	Method string                  `json:"method"`
	Params CentrifugoPublishParams `json:"params"`
}

type CentrifugoPublishParams struct {
	Channel string        `json:"channel"`
	Data    RealtimeEvent `json:"data"`
}

// RealtimeEvent is the envelope published to every channel: the event name
// lets one channel carry multiple event kinds (incoming-message, typing, ...).
type RealtimeEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}
