package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "CLUBCRM"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Exported env var names, used by tests and tooling.
const (
	EnvAppEnv   = "CLUBCRM_APP_ENV"
	EnvPort     = "CLUBCRM_APP_PORT"
	EnvLogLevel = "CLUBCRM_LOG_LEVEL"

	EnvDBDSN  = "CLUBCRM_DB_DSN"
	EnvDBHost = "CLUBCRM_DB_HOST"
	EnvDBUser = "CLUBCRM_DB_USER"
	EnvDBName = "CLUBCRM_DB_NAME"

	EnvRedisURL = "CLUBCRM_REDIS_URL"

	EnvJWTSecret              = "CLUBCRM_JWT_SECRET"
	EnvJWTIssuer              = "CLUBCRM_JWT_ISSUER"
	EnvJWTExpMins             = "CLUBCRM_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "CLUBCRM_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
