package config

import "os"

type Config struct {
	ListenAddr string
	StorePath  string
	PublicDir  string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func Load() Config {
	return Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		StorePath:  getenv("STORE_PATH", "data/users.json"),
		PublicDir:  getenv("PUBLIC_DIR", "public"),
	}
}
