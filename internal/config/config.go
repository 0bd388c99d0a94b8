package config

import (
	"os"
)

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// Receipt attachment storage. "disk" keeps blobs under AttachmentDir,
	// "gcs" stores them in the AttachmentBucket bucket.
	AttachmentStore  string
	AttachmentDir    string
	AttachmentBucket string

	// Model used for the narrative financial report.
	GeminiModel string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		AttachmentStore:  "disk",
		AttachmentDir:    "receipts",
		AttachmentBucket: "",
		GeminiModel:      "gemini-2.0-flash",
	}

	envPort := os.Getenv("PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envAttachmentStore := os.Getenv("ATTACHMENT_STORE")
	envAttachmentDir := os.Getenv("ATTACHMENT_DIR")
	envAttachmentBucket := os.Getenv("ATTACHMENT_BUCKET")
	envGeminiModel := os.Getenv("GEMINI_MODEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envAttachmentStore) != 0 {
		env.AttachmentStore = envAttachmentStore
	}

	if len(envAttachmentDir) != 0 {
		env.AttachmentDir = envAttachmentDir
	}

	if len(envAttachmentBucket) != 0 {
		env.AttachmentBucket = envAttachmentBucket
	}

	if len(envGeminiModel) != 0 {
		env.GeminiModel = envGeminiModel
	}

	return &env, nil
}

// PostgresURL builds the connection string shared by the server and the
// migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
