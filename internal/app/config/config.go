package config

import (
	"github.com/joho/godotenv"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/constvars"
	"github.com/tahmina28072008-ux/insurance-verification/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:             utils.GetEnvString("MONGODB_URI", ""),
			CredentialsFile: utils.GetEnvString("MONGODB_CREDENTIALS_FILE", ""),
			Port:            utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:            utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username:        utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:        utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:          utils.GetEnvString("MONGODB_DB_NAME", "insurance"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "UTC"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Webhook: Webhook{
			RequestShape:     utils.GetEnvString("WEBHOOK_REQUEST_SHAPE", constvars.RequestShapeQueryResult),
			ResponseEnvelope: utils.GetEnvString("WEBHOOK_RESPONSE_ENVELOPE", constvars.ResponseEnvelopeFlat),
			ProviderParam:    utils.GetEnvString("WEBHOOK_PROVIDER_PARAM", constvars.ProviderParamInsuranceProviderName),
			StoreFieldNaming: utils.GetEnvString("STORE_FIELD_NAMING", constvars.StoreFieldNamingCamel),
			TenantID:         utils.GetEnvString("STORE_TENANT_ID", ""),
		},
	}
}
