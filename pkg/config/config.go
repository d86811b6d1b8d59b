package config

import (
	"os"
	"strconv"
)

// Config carries everything the service reads from the environment. There is
// no hidden global: mains build one and pass it down.
type Config struct {
	// Server
	Port        string
	Environment string

	// DynamoDB tables
	TicketsTable      string
	PurchasesTable    string
	TransactionsTable string
	SellersTable      string
	WithdrawalsTable  string

	// Settlement queue
	SettlementQueueURL string

	// Withdrawal bounds, in the currency's minor unit
	MinWithdrawalAmount int64
	MaxWithdrawalAmount int64

	// Currency code reported to payment providers
	Currency string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:        getEnv("HTTP_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		TicketsTable:      getEnv("DYNAMODB_TICKETS_TABLE_NAME", ""),
		PurchasesTable:    getEnv("DYNAMODB_PURCHASES_TABLE_NAME", ""),
		TransactionsTable: getEnv("DYNAMODB_TRANSACTIONS_TABLE_NAME", ""),
		SellersTable:      getEnv("DYNAMODB_SELLERS_TABLE_NAME", ""),
		WithdrawalsTable:  getEnv("DYNAMODB_WITHDRAWALS_TABLE_NAME", ""),

		SettlementQueueURL: getEnv("SQS_SETTLEMENT_QUEUE_URL", ""),

		MinWithdrawalAmount: getEnvAsInt64("MIN_WITHDRAWAL_AMOUNT", 1000),
		MaxWithdrawalAmount: getEnvAsInt64("MAX_WITHDRAWAL_AMOUNT", 1000000),

		Currency: getEnv("CURRENCY", "XOF"),
	}
}

// TablesSet reports whether all table names are configured.
func (c *Config) TablesSet() bool {
	return c.TicketsTable != "" && c.PurchasesTable != "" && c.TransactionsTable != "" &&
		c.SellersTable != "" && c.WithdrawalsTable != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
