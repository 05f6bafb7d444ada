package app

import "log/slog"

// Set with -ldflags "-X github.com/heartmarshall/foodcatalog-backend/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version reported by /health.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}

func buildAttr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("time", BuildTime),
	)
}
