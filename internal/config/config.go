package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	ServerPort      string
	OperatorWorkers int

	// DefaultTransactionPaid is applied when a create request omits the paid
	// flag on a non-installment transaction.
	DefaultTransactionPaid bool
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env file for local development; a missing file is fine.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:        "localhost",
		PostgresPort:           "5433",
		PostgresDB:             "postgres",
		PostgresUsername:       "postgres",
		PostgresPassword:       "testpassword",
		ServerPort:             "9446",
		OperatorWorkers:        1,
		DefaultTransactionPaid: true,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envServerPort := os.Getenv("SERVER_PORT")
	envOperatorWorkers := os.Getenv("OPERATOR_WORKERS")
	envDefaultPaid := os.Getenv("DEFAULT_TRANSACTION_PAID")

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

	if len(envServerPort) != 0 {
		env.ServerPort = envServerPort
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	if len(envDefaultPaid) != 0 {
		defaultPaid, err := strconv.ParseBool(envDefaultPaid)
		if err != nil {
			return nil, err
		}
		env.DefaultTransactionPaid = defaultPaid
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
