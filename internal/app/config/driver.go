package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Logger  Logger
	}
	MongoDB struct {
		// URI, when set, takes precedence over the discrete fields below.
		URI string
		// CredentialsFile points to a JSON service credentials file, the
		// second resolution strategy after the explicit URI.
		CredentialsFile string
		Port            string
		Host            string
		Username        string
		Password        string
		DbName          string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
