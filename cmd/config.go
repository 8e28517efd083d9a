package cmd

import "time"

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	NeshanAPIKey           string
	NeshanBaseURL          string
	EstimateTimeout        time.Duration
	KafkaHost              string
	KafkaOrderChangedTopic string
	MaxPendingAge          time.Duration
}
