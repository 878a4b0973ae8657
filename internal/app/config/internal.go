package config

type InternalConfig struct {
	App     App
	Webhook Webhook
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	ShutdownTimeout int
}

// Webhook holds the static deployment selection: which inbound payload
// shape the dialog platform sends, which envelope it expects back, and
// the field-name conventions the administrative process wrote into the
// record store. These never change at runtime.
type Webhook struct {
	RequestShape     string
	ResponseEnvelope string
	ProviderParam    string
	StoreFieldNaming string
	TenantID         string
}
