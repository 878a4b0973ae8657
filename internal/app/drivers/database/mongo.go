package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/tahmina28072008-ux/insurance-verification/internal/app/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// credentialResolver produces a connection URI from one credential
// source. Resolvers are tried in order at startup; the first one whose
// URI yields a reachable store wins.
type credentialResolver struct {
	name    string
	resolve func(driverConfig *config.DriverConfig) (string, error)
}

// NewMongoDB connects to the record store, trying each credential
// strategy in sequence. It never aborts the process: when every
// strategy is exhausted the service keeps running in degraded mode and
// returns nil, so the HTTP surface stays reachable and every lookup
// falls into the query-failed path.
func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	resolvers := []credentialResolver{
		{name: "environment_uri", resolve: resolveFromEnvironmentURI},
		{name: "credentials_file", resolve: resolveFromCredentialsFile},
		{name: "driver_config", resolve: resolveFromDriverConfig},
	}

	for _, resolver := range resolvers {
		uri, err := resolver.resolve(driverConfig)
		if err != nil {
			log.Warn("Credential resolution strategy failed",
				zap.String("strategy", resolver.name),
				zap.Error(err),
			)
			continue
		}

		client, err := connect(uri)
		if err != nil {
			log.Warn("Record store connection failed",
				zap.String("strategy", resolver.name),
				zap.Error(err),
			)
			continue
		}

		log.Info("Successfully connected to mongo record store",
			zap.String("strategy", resolver.name),
		)
		return client
	}

	log.Error("All credential resolution strategies exhausted, record store lookups will fail until restart")
	return nil
}

func connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func resolveFromEnvironmentURI(driverConfig *config.DriverConfig) (string, error) {
	if driverConfig.MongoDB.URI == "" {
		return "", fmt.Errorf("MONGODB_URI is not set")
	}
	return driverConfig.MongoDB.URI, nil
}

type storeCredentialsFile struct {
	URI      string `json:"uri"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func resolveFromCredentialsFile(driverConfig *config.DriverConfig) (string, error) {
	path := driverConfig.MongoDB.CredentialsFile
	if path == "" {
		return "", fmt.Errorf("MONGODB_CREDENTIALS_FILE is not set")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read credentials file: %w", err)
	}

	var creds storeCredentialsFile
	if err := json.Unmarshal(raw, &creds); err != nil {
		return "", fmt.Errorf("cannot parse credentials file: %w", err)
	}

	if creds.URI != "" {
		return creds.URI, nil
	}
	if creds.Host == "" {
		return "", fmt.Errorf("credentials file has neither uri nor host")
	}
	return buildURI(creds.Host, creds.Port, creds.Username, creds.Password), nil
}

func resolveFromDriverConfig(driverConfig *config.DriverConfig) (string, error) {
	if driverConfig.MongoDB.Host == "" {
		return "", fmt.Errorf("no mongo host configured")
	}
	return buildURI(
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
	), nil
}

func buildURI(host, port, username, password string) string {
	if username == "" {
		return fmt.Sprintf("mongodb://%s:%s", host, port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", username, password, host, port)
}
