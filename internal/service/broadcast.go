package service

import "github.com/whiskerforge/catcombo/api/internal/model"

// Broadcaster pushes catalog lifecycle events to connected clients.
// Implemented by the WebSocket hub.
type Broadcaster interface {
	BroadcastCatalogReloaded(info model.CatalogInfo)
}

// NoopBroadcaster is a no-op implementation for testing or when WS is disabled.
type NoopBroadcaster struct{}

func (NoopBroadcaster) BroadcastCatalogReloaded(model.CatalogInfo) {}
