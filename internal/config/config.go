package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config 汇总两个可执行程序所需的全部环境配置。
type Config struct {
	// CMS server
	ListenAddr    string `envconfig:"LISTEN_ADDR" default:":1337"`
	DatabasePath  string `envconfig:"DATABASE_PATH" default:"casinohub.db"`
	GinMode       string `envconfig:"GIN_MODE" default:"release"`
	SessionSecret string `envconfig:"SESSION_SECRET" default:"casinohub-dev-secret"`
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"web/static/uploads"`
	UploadURLPath string `envconfig:"UPLOAD_URL_PATH" default:"/static/uploads"`
	CORSOrigins   string `envconfig:"CORS_ORIGINS" default:"*"`
	GaugeSchedule string `envconfig:"GAUGE_SCHEDULE" default:"@every 1h"`

	// Admin bootstrap
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`

	// Site server
	SiteListenAddr string `envconfig:"SITE_LISTEN_ADDR" default:":3000"`
	APIBaseURL     string `envconfig:"API_BASE_URL" default:"http://localhost:1337"`
	APIToken       string `envconfig:"API_TOKEN"`
	SiteBaseURL    string `envconfig:"SITE_BASE_URL" default:"http://localhost:3000"`
	TemplateGlob   string `envconfig:"TEMPLATE_GLOB" default:"web/template/site/*.html"`
}

// Load 从环境变量读取应用配置，.env 文件存在时优先加载。
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &c, nil
}
