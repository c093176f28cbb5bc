package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type Handler func(ctx context.Context, event Event) error

type Subscriber struct {
	client        *redis.Client
	group         string
	consumer      string
	stream        string
	handler       Handler
	batchSize     int64
	blockDuration time.Duration
}

type SubscriberConfig struct {
	Group         string
	Consumer      string
	Stream        string
	Handler       Handler
	BatchSize     int64
	BlockDuration time.Duration
}

func NewSubscriber(client *redis.Client, config SubscriberConfig) *Subscriber {
	if config.BatchSize == 0 {
		config.BatchSize = 10
	}
	if config.BlockDuration == 0 {
		config.BlockDuration = 5 * time.Second
	}

	return &Subscriber{
		client:        client,
		group:         config.Group,
		consumer:      config.Consumer,
		stream:        config.Stream,
		handler:       config.Handler,
		batchSize:     config.BatchSize,
		blockDuration: config.BlockDuration,
	}
}

// Start blocks reading the stream until ctx is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	err := s.client.XGroupCreateMkStream(ctx, s.stream, s.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	logger := log.With().Str("stream", s.stream).Str("group", s.group).Str("consumer", s.consumer).Logger()
	logger.Info().Msg("subscriber started")

	if err := s.drainPending(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("error replaying pending messages")
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("subscriber stopping")
			return ctx.Err()
		default:
			if _, err := s.readMessages(ctx, ">"); err != nil {
				if ctx.Err() != nil {
					continue
				}
				logger.Error().Err(err).Msg("error reading messages")
				time.Sleep(time.Second)
			}
		}
	}
}

// drainPending replays entries delivered to this consumer before a restart
// but never acknowledged. Entries that fail again stay pending until the next
// start.
func (s *Subscriber) drainPending(ctx context.Context) error {
	cursor := "0"
	for {
		last, err := s.readMessages(ctx, cursor)
		if err != nil {
			return err
		}
		if last == "" {
			return nil
		}
		cursor = last
	}
}

// readMessages reads one batch starting after id and returns the last entry id
// seen, or "" when the batch was empty.
func (s *Subscriber) readMessages(ctx context.Context, id string) (string, error) {
	args := &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{s.stream, id},
		Count:    s.batchSize,
		Block:    s.blockDuration,
	}
	if id != ">" {
		args.Block = -1
	}
	streams, err := s.client.XReadGroup(ctx, args).Result()

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read from stream: %w", err)
	}

	last := ""
	for _, stream := range streams {
		for _, message := range stream.Messages {
			last = message.ID
			if err := s.processMessage(ctx, message); err != nil {
				// left unacked in the pending list
				log.Error().Err(err).Str("message_id", message.ID).Msg("failed to process message")
				continue
			}

			if err := s.client.XAck(ctx, s.stream, s.group, message.ID).Err(); err != nil {
				log.Error().Err(err).Str("message_id", message.ID).Msg("failed to ack message")
			}
		}
	}

	return last, nil
}

func (s *Subscriber) processMessage(ctx context.Context, message redis.XMessage) error {
	eventData, ok := message.Values["event"].(string)
	if !ok {
		return fmt.Errorf("invalid message format")
	}

	var event Event
	if err := json.Unmarshal([]byte(eventData), &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return s.handler(ctx, event)
}
