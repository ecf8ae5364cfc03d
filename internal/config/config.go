package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	TBOAirAuthURL   string `env:"TBO_AIR_AUTH_URL" envDefault:"http://api.tektravels.com/Authenticate/ValidateAgency"`
	TBOAirSearchURL string `env:"TBO_AIR_SEARCH_URL" envDefault:"http://api.tektravels.com/Search/"`
	TBOAirUsername  string `env:"TBO_AIR_USERNAME"`
	TBOAirPassword  string `env:"TBO_AIR_PASSWORD"`

	TBOHotelSearchURL string `env:"TBO_HOTEL_SEARCH_URL" envDefault:"http://api.tbotechnology.in/TBOHolidays_HotelAPI/search"`
	TBOHotelUsername  string `env:"TBO_HOTEL_USERNAME"`
	TBOHotelPassword  string `env:"TBO_HOTEL_PASSWORD"`
	TBOHotelCodes     string `env:"TBO_HOTEL_CODES" envDefault:"376565,1345318,1345320,1200255,1128760,1250333,1078234,1347149,1358855,1345321,1108025,1356271,1267547"`

	// Topes de resultados por proveedor; acotan el producto cartesiano.
	MaxFlightResults int `env:"MAX_FLIGHT_RESULTS" envDefault:"15"`
	MaxHotelResults  int `env:"MAX_HOTEL_RESULTS" envDefault:"20"`

	ProviderTimeoutSeconds int `env:"PROVIDER_TIMEOUT_SECONDS" envDefault:"20"`
	CacheTTLMinutes        int `env:"CACHE_TTL_MINUTES" envDefault:"10"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	APIClientID         string `env:"API_CLIENT_ID"`
	APIClientSecret     string `env:"API_CLIENT_SECRET"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
