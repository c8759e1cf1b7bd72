package config

type MapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func loadMapsConfig() *MapsConfig {
	return &MapsConfig{
		APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
	}
}
