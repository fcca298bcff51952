package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sirupsen/logrus"
)

// Log writes messages to the structured log.
type Log struct {
	Log *logrus.Entry
}

func (n *Log) Notify(_ context.Context, message string) error {
	n.Log.WithField("component", "toast").Info(message)
	return nil
}

type SNSPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNS publishes every message to a topic.
type SNS struct {
	Log      *logrus.Entry
	TopicARN string
	SNS      SNSPublisher
	Subject  string
}

func (n *SNS) Notify(ctx context.Context, message string) error {
	input := &sns.PublishInput{
		Message:  &message,
		TopicArn: &n.TopicARN,
	}

	if n.Subject != "" {
		input.Subject = &n.Subject
	}

	_, err := n.SNS.Publish(ctx, input)
	if err != nil {
		if n.Log != nil {
			n.Log.WithError(err).Error()
		}
		return fmt.Errorf("error pusblishing to AWS SNS topic %s: %w", n.TopicARN, err)
	}

	return nil
}

// Collector keeps messages in memory in delivery order.
type Collector struct {
	mu       sync.Mutex
	messages []string
}

func (n *Collector) Notify(_ context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.messages = append(n.messages, message)

	return nil
}

func (n *Collector) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, len(n.messages))
	copy(out, n.messages)

	return out
}

// Notifier mirrors submit.Notifier so this package does not import it.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Multi delivers to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, message string) error {
	var errs []error

	for _, n := range m {
		if err := n.Notify(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
