package entity

import "github.com/gofrs/uuid"

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// Connection identifies one IDE client connected over JSON-RPC.
type Connection struct {
	UUID uuid.UUID `json:"uuid" zap:"uuid"`
}
