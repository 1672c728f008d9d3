package config

import "os"

type Config struct {
	Addr          string
	DBPath        string
	AdminUsername string
	AdminPassword string
}

func Load() Config {
	return Config{
		Addr:          ":" + getenv("PORT", "8080"),
		DBPath:        getenv("DB_PATH", "gamefest.db"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
