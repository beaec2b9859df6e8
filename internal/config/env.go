package config

type Backend struct {
	Addr string `mapstructure:"BACKEND_ADDR" default:"http://localhost:8080/api"`
	// DynamicConfigPath points at the optional yaml overlay for endpoint
	// flavors and legacy research-lab ids.
	DynamicConfigPath string `mapstructure:"DYNAMIC_CONFIG_PATH" default:""`
}

type Session struct {
	StatePath string `mapstructure:"SESSION_STATE_PATH" default:".labdesk/session.json"`
}

type Client struct {
	TimeoutSec      int `mapstructure:"CLIENT_TIMEOUT_SEC" default:"15"`
	BreakerFailures int `mapstructure:"CLIENT_BREAKER_FAILURES" default:"3"`
	BreakerCooldown int `mapstructure:"CLIENT_BREAKER_COOLDOWN_SEC" default:"30"`
	FetchWorkers    int `mapstructure:"CLIENT_FETCH_WORKERS" default:"4"`
}

type Server struct {
	Platform string `mapstructure:"PLATFORM" default:"labdesk"`
	Service  string `mapstructure:"SERVICE" default:"cli"`
	Env      string `mapstructure:"ENV" default:"dev"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./labdesk.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}
