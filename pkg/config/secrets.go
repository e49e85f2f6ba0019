package config

import (
	"context"
	"fmt"
	"log/slog"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// accessSecret is replaced in tests.
var accessSecret = accessSecretVersion

func resolveSecrets(ctx context.Context, cfg *Config) error {
	if cfg.GeminiAPIKey != "" || cfg.Gemini.SecretName == "" {
		return nil
	}
	if cfg.GCPProject == "" {
		return fmt.Errorf("gemini.secret_name is set but GOOGLE_CLOUD_PROJECT is empty")
	}

	key, err := accessSecret(ctx, cfg.GCPProject, cfg.Gemini.SecretName)
	if err != nil {
		return fmt.Errorf("load gemini api key from secret manager: %w", err)
	}
	slog.Debug("Loaded Gemini API key from Secret Manager", "secret", cfg.Gemini.SecretName)
	cfg.GeminiAPIKey = key
	return nil
}

func accessSecretVersion(ctx context.Context, project, name string) (string, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create secret manager client: %w", err)
	}
	defer func() { _ = client.Close() }()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", project, name),
	})
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", name, err)
	}
	return string(resp.GetPayload().GetData()), nil
}
