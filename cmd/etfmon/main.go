package main

import (
	"github.com/joho/godotenv"

	"github.com/rustyeddy/etfmon/internal/cli"
)

func main() {
	// Optional .env for things like ETFMON_SMTP_PASSWORD.
	_ = godotenv.Load()

	cli.Execute()
}
