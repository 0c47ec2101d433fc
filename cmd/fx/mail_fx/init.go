package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"botic/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),

		AppName:    "Botic",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	return services.NewSMTPMailService(cfg)
}
