package configs

import "github.com/spf13/viper"

const (
	DefaultConfigPath = "./configs/configs.yml"
	EnvConfigPath     = "NGINX_MONITOR_CONFIG"
	envPrefix         = "NGINX_MONITOR"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("log.level", "info")

	v.SetDefault("sources.access_log_path", "/var/log/nginx/access.log")
	v.SetDefault("sources.error_log_path", "/var/log/nginx/error.log")
	v.SetDefault("sources.access_tail_lines", 10000)
	v.SetDefault("sources.error_tail_lines", 1000)

	v.SetDefault("refresh.interval_seconds", 2)
	v.SetDefault("refresh.paused", false)
	v.SetDefault("refresh.tail_timeout_seconds", 5)

	v.SetDefault("export.enabled", false)
	v.SetDefault("export.dir", "./.tmp/snapshots")
}
