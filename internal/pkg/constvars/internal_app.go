package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Static deployment selection values (see config.Webhook). The shape and
// envelope are fixed per deployment, never auto-detected per request.
const (
	RequestShapeQueryResult     = "query_result"
	RequestShapeSessionInfo     = "session_info"
	RequestShapeFulfillmentInfo = "fulfillment_info"

	ResponseEnvelopeFlat       = "flat"
	ResponseEnvelopeStructured = "structured"

	ProviderParamInsuranceProviderName = "insurance_provider_name"
	ProviderParamInsuranceProvider     = "insurance_provider"

	StoreFieldNamingCamel = "camel"
	StoreFieldNamingSnake = "snake"
)

const (
	ParamPolicyNumber = "policy_number"
	ParamDateOfBirth  = "date_of_birth"
)
