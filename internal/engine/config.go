package engine

import (
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	LLMClient          *llm.Client

	FetchTimeout time.Duration // per provider call, not per request

	// Provider credentials. An empty value switches the adapter off;
	// it then contributes an empty result instead of an error.
	AdzunaAppID         string
	AdzunaAppKey        string
	JoobleAPIKey        string
	TheMuseAPIKey       string
	RapidAPIKey         string
	RapidAPIHost        string
	DataGovInAPIKey     string
	APISetuClientID     string
	APISetuClientSecret string
	NCSAPIKey           string
	USAJobsEmail        string
	USAJobsAPIKey       string
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (jobs).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
