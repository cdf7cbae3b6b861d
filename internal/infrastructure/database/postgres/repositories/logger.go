package repositories

import "github.com/turtacn/GeoSignal-Intelligence/internal/infrastructure/monitoring/logging"

// Logger is the minimal logging contract required by repository
// implementations.  Satisfied by the platform's monitoring/logging.Logger.
type Logger interface {
	Debug(msg string, fields ...logging.Field)
	Info(msg string, fields ...logging.Field)
	Warn(msg string, fields ...logging.Field)
	Error(msg string, fields ...logging.Field)
}

//Personal.AI order the ending
