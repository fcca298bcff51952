package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	cfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/caarlos0/env"
	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/adiazny/ms-calendar/internal/pkg/handler"
	"github.com/adiazny/ms-calendar/internal/pkg/notify"
)

type environmentVariables struct {
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
	SNSTopicARN        string `env:"SNS_TOPIC_ARN"`
	SNSSubject         string `env:"SNS_SUBJECT" envDefault:"ms-calendar"`
	Locale             string `env:"LOCALE" envDefault:"pt-BR"`
	StrictDates        bool   `env:"STRICT_DATES" envDefault:"false"`
}

func setup() (envVars *environmentVariables, err error) {
	_, err = maxprocs.Set()
	if err != nil {
		return nil, fmt.Errorf("error setting GOMAXPROCS %w", err)
	}

	envVars = &environmentVariables{}

	err = env.Parse(envVars)
	if err != nil {
		return nil, fmt.Errorf("error parsing environment variables %w", err)
	}

	return envVars, nil
}

func newLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}

	return logrus.NewEntry(logger)
}

func HandleRequest(ctx context.Context, event handler.Event) (handler.Response, error) {
	envVars, err := setup()
	if err != nil {
		return handler.Response{}, err
	}

	log := newLogger(envVars.LogLevel)
	log.WithField("component", "ms-calendar").Info("starting up")

	defer log.WithField("component", "ms-calendar").Info("shutting down")

	h := &handler.Handler{
		Log: log,
		Config: handler.Config{
			Locale: envVars.Locale,
			Strict: envVars.StrictDates,
		},
		HTTP: &http.Client{
			Timeout: time.Duration(envVars.HTTPTimeoutSeconds) * time.Second,
		},
	}

	if envVars.SNSTopicARN != "" {
		awsConfig, err := cfg.LoadDefaultConfig(ctx)
		if err != nil {
			log.WithError(err).Error()
			return handler.Response{}, fmt.Errorf("error loading aws config %w", err)
		}

		h.Notifier = &notify.SNS{
			Log:      log,
			TopicARN: envVars.SNSTopicARN,
			SNS:      sns.NewFromConfig(awsConfig),
			Subject:  envVars.SNSSubject,
		}
	} else {
		h.Notifier = &notify.Log{Log: log}
	}

	resp, err := h.Handle(ctx, event)
	if err != nil {
		log.WithError(err).Error()
		return handler.Response{}, err
	}

	return resp, nil
}

func main() {
	lambda.Start(HandleRequest)
}
