package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	CORS     CORSConfig
	AI       AIConfig
	Tools    ToolsConfig
	Supabase SupabaseConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// IsDevelopment indica si se deben exponer detalles de errores internos al cliente.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT. Secret es el secreto compartido con Supabase Auth.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos, solo para tokens emitidos por bapesuctl
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig orígenes permitidos.
type CORSConfig struct {
	Origins []string
}

// AIConfig credenciales y parámetros de los proveedores LLM.
type AIConfig struct {
	DescriptionProvider string // "deepseek" | "anthropic"

	DeepSeekAPIKey      string
	DeepSeekURL         string
	DeepSeekModel       string
	DeepSeekTemperature float64
	DeepSeekMaxTokens   int

	AnthropicAPIKey string
	AnthropicModel  string

	GeminiAPIKey string
	GeminiModel  string
}

// ToolsConfig credenciales de las herramientas multimedia.
type ToolsConfig struct {
	RemoveBGAPIKey  string
	GoogleTTSAPIKey string
}

// SupabaseConfig acceso a la API admin de Supabase Auth.
type SupabaseConfig struct {
	URL        string
	ServiceKey string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATABASE_URL, SUPABASE_JWT_SECRET, etc.
func Load() (*Config, error) {
	// .env al entorno del proceso; no existe en producción
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "bapesu-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "postgres"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "SUPABASE_JWT_SECRET", getString(v, "JWT_SECRET", "")),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "bapesu-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", getInt(v, "PORT", 5000)),
		},
		CORS: CORSConfig{
			Origins: splitList(getString(v, "CORS_ORIGINS", "http://localhost:3000,http://localhost:5000,https://bapesu.vercel.app")),
		},
		AI: AIConfig{
			DescriptionProvider: getString(v, "DESCRIPTION_PROVIDER", "deepseek"),
			DeepSeekAPIKey:      getString(v, "DEEPSEEK_API_KEY", ""),
			DeepSeekURL:         getString(v, "DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions"),
			DeepSeekModel:       getString(v, "DEEPSEEK_MODEL", "deepseek-chat"),
			DeepSeekTemperature: getFloat(v, "DEEPSEEK_TEMPERATURE", 0.7),
			DeepSeekMaxTokens:   getInt(v, "DEEPSEEK_MAX_TOKENS", 200),
			AnthropicAPIKey:     getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:      getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			GeminiAPIKey:        getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:         getString(v, "GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Tools: ToolsConfig{
			RemoveBGAPIKey:  getString(v, "REMOVE_BG_API_KEY", ""),
			GoogleTTSAPIKey: getString(v, "GOOGLE_TTS_API_KEY", ""),
		},
		Supabase: SupabaseConfig{
			URL:        getString(v, "SUPABASE_URL", ""),
			ServiceKey: getString(v, "SUPABASE_SERVICE_KEY", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: SUPABASE_JWT_SECRET es obligatorio")
	}
	// CORS con credenciales no admite el comodín; fiber entra en pánico al arrancar.
	for _, o := range c.CORS.Origins {
		if o == "*" {
			return fmt.Errorf("config: CORS_ORIGINS no admite \"*\", liste los orígenes permitidos")
		}
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return def
	}
	return f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
