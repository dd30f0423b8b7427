package model

import "time"

const DefaultTimeout = 5000 * time.Millisecond
const DefaultNotifyConcurrency = 16

// MaxResponseBody caps how much of a response body is read.
const MaxResponseBody int64 = 10 << 20

const (
	HeaderContentType   = "Content-Type"
	HeaderSharedSecret  = "x-shared-secret"
	HeaderAuthorization = "Authorization"
	MIMEApplicationJSON = "application/json"
)

type KeyClass string

const (
	KeyPublic  KeyClass = "public"
	KeyPrivate KeyClass = "private"
)

type ContextKey string

const (
	KeyContextLogger   ContextKey = "logger"
	KeyContextPlayerID ContextKey = "player_id"
)

const KeyLoggerError = "error"
