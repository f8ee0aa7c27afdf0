package log

// ZapConfig configures the zap backend.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or anything else for development
	Encoding     string // "json" or "console"
	ColorEnabled bool
}

const (
	ModeProduction = "production"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"
