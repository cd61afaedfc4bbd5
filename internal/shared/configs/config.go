package configs

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Sources SourcesConfig `mapstructure:"sources" validate:"required"`
	Refresh RefreshConfig `mapstructure:"refresh" validate:"required"`
	Export  ExportConfig  `mapstructure:"export"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
}

// SourcesConfig points at the nginx log files to tail.
type SourcesConfig struct {
	AccessLogPath   string `mapstructure:"access_log_path" validate:"required"`
	ErrorLogPath    string `mapstructure:"error_log_path" validate:"required"`
	AccessTailLines int    `mapstructure:"access_tail_lines" validate:"required,min=1"`
	ErrorTailLines  int    `mapstructure:"error_tail_lines" validate:"required,eq=1000"`
}

// RefreshConfig holds the collection scheduler settings.
type RefreshConfig struct {
	IntervalSeconds    int  `mapstructure:"interval_seconds" validate:"required,min=1,max=3600"`
	Paused             bool `mapstructure:"paused"`
	TailTimeoutSeconds int  `mapstructure:"tail_timeout_seconds" validate:"required,min=1,max=60"`
}

// ExportConfig controls writing every published snapshot to <dir>/snapshot.json.
type ExportConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir" validate:"required_if=Enabled true"`
}
