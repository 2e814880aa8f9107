package config

// Runtime holds process settings that are not render options
type Runtime struct {
	LogLevel  string
	LogFormat string

	// OpenTelemetry; tracing is off when OTelEndpoint is empty
	OTelEndpoint    string
	OTelServiceName string
	OTelInsecure    bool

	// MetricsFile receives a prometheus textfile after each run when set
	MetricsFile string

	// S3 settings for s3:// output locations
	S3Region       string
	S3Endpoint     string
	S3UsePathStyle bool
	S3AccessKey    string
	S3SecretKey    string
}

// LoadRuntime loads runtime settings from the environment
func LoadRuntime() Runtime {
	return Runtime{
		LogLevel:        getEnv("DOCBOOK_LOG_LEVEL", "info"),
		LogFormat:       getEnv("DOCBOOK_LOG_FORMAT", "text"),
		OTelEndpoint:    getEnv("DOCBOOK_OTEL_ENDPOINT", ""),
		OTelServiceName: getEnv("DOCBOOK_OTEL_SERVICE_NAME", "spoke-docbook"),
		OTelInsecure:    getEnvBool("DOCBOOK_OTEL_INSECURE", true),
		MetricsFile:     getEnv("DOCBOOK_METRICS_FILE", ""),
		S3Region:        getEnv("DOCBOOK_S3_REGION", "us-east-1"),
		S3Endpoint:      getEnv("DOCBOOK_S3_ENDPOINT", ""),
		S3UsePathStyle:  getEnvBool("DOCBOOK_S3_USE_PATH_STYLE", false),
		S3AccessKey:     getEnv("DOCBOOK_S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("DOCBOOK_S3_SECRET_KEY", ""),
	}
}
