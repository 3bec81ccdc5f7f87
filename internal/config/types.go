package config

type Config struct {
	DatabaseURL     string
	GroqKey         string
	GroqModel       string
	EmbeddingsKey   string
	EmbeddingsURL   string
	EmbeddingsModel string
	VectorBackend   string
	Environment     string
}
