package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "decimaltime"
	AppID             = "com.github.taext.decimaltime"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "decimaltime.log"

	// EnvPrefix scopes environment variable overrides (DECIMALTIME_PORT, ...).
	EnvPrefix = "DECIMALTIME"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the log directory.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// Log Rotation
// -----------------------------------------------------------------------------

const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
)

// -----------------------------------------------------------------------------
// CLI Flags, Viper Keys & Descriptions
// -----------------------------------------------------------------------------

// Flag names double as viper keys: every flag is bound at init time so that
// DECIMALTIME_* environment variables override defaults the same way flags do.
const (
	FlagFormat = "format"
	FlagUTC    = "utc"
	FlagOffset = "offset"
	FlagDebug  = "debug"
	FlagPort   = "port"

	FlagDescFormat = "layout template (%Y year, %d/%D day of year, %f/%F day fraction)"
	FlagDescUTC    = "read the clock in UTC instead of local time"
	FlagDescOffset = "fixed UTC offset in whole hours (ignored with --utc)"
	FlagDescDebug  = "enable debug logging"
	FlagDescPort   = "TCP port for the clock server"

	CmdRootUse    = AppName
	CmdRootShort  = "Print the current time in decimal form"
	CmdServeUse   = "serve"
	CmdServeShort = "Serve the current decimal time over HTTP"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort        = "18099"
	DefaultOffsetHours = 0

	// OffsetZoneFormat names the fixed zone built from --offset, e.g. "UTC+1".
	OffsetZoneFormat = "UTC%+d"

	MinPort = 1
	MaxPort = 65535

	SecondsPerHour = 3600
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderAllow        = "Allow"
	HeaderXContentType = "X-Content-Type-Options"

	MimeTextPlain = "text/plain; charset=utf-8"
	MimeNoSniff   = "nosniff"

	// CacheControlNoStore forbids caching entirely: the body is a live clock
	// reading and is stale the moment it is written.
	CacheControlNoStore = "no-store"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrPortRequired   = "server port is required"
	ErrPortNumber     = "server port must be a number"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrLogDir         = "could not determine user cache dir"
	ErrCreateDir      = "could not create app log dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"

	MsgLogWarning = "Warning: %s: %v\n"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting  = "Starting application"
	MsgAppStop      = "Application stopped gracefully"
	MsgServerListen = "HTTP clock server listening"
	MsgServerStop   = "Shutting down HTTP clock server..."
	MsgClockServed  = "Decimal time served"
	MsgClockPrinted = "Decimal time rendered"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyPort      = "port"
	LogKeyFormat    = "format"
	LogKeyZone      = "zone"
	LogKeyValue     = "value"
	LogKeyMethod    = "method"
	LogKeyRemote    = "remote_addr"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain   = "main"
	CompCLI    = "cli"
	CompServer = "server"
)
