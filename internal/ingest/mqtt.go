// Package ingest feeds sensor readings published over MQTT into the
// readings store.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/logger"
	"shelldon/internal/models"
	"shelldon/internal/timeseries"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout    = 10 * time.Second
	subscribeTimeout  = 5 * time.Second
	disconnectQuiesce = 250 // ms
	qos               = 1

	topicTemperature = "temperature"
	topicWater       = "water"
)

var ErrInvalidPayload = errors.New("invalid sensor payload")

// Recorder stores validated readings. service.Readings satisfies it.
type Recorder interface {
	RecordTemperature(ctx context.Context, p models.TemperaturePoint) (models.TemperaturePoint, error)
	RecordWater(ctx context.Context, p models.WaterQualityPoint) (models.WaterQualityPoint, error)
}

// Subscriber listens on <prefix>/temperature and <prefix>/water.
type Subscriber struct {
	client mqtt.Client
	prefix string
	rec    Recorder
	log    *logger.Logger
}

// NewSubscriber configures a client for cfg. It does not connect.
func NewSubscriber(cfg config.MQTTConfig, rec Recorder, log *logger.Logger) *Subscriber {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL(cfg.Broker))
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(connectTimeout)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	s := &Subscriber{
		prefix: strings.TrimSuffix(cfg.TopicPrefix, "/"),
		rec:    rec,
		log:    log,
	}
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		if s.log != nil {
			s.log.Warnw("mqtt_connection_lost", "err", err)
		}
	})
	s.client = mqtt.NewClient(opts)
	return s
}

// brokerURL accepts "host:port" or a full URL such as "ssl://host:8883".
func brokerURL(broker string) string {
	if strings.Contains(broker, "://") {
		return broker
	}
	return "tcp://" + broker
}

// Topics lists the subscribed topics.
func (s *Subscriber) Topics() []string {
	return []string{s.prefix + "/" + topicTemperature, s.prefix + "/" + topicWater}
}

// Run connects, subscribes and blocks until ctx is done.
func (s *Subscriber) Run(ctx context.Context) error {
	if tok := s.client.Connect(); !tok.WaitTimeout(connectTimeout) || tok.Error() != nil {
		return fmt.Errorf("connecting to MQTT broker: %w", tokenErr(tok))
	}
	defer s.client.Disconnect(disconnectQuiesce)

	filters := make(map[string]byte, 2)
	for _, topic := range s.Topics() {
		filters[topic] = qos
	}
	tok := s.client.SubscribeMultiple(filters, func(_ mqtt.Client, msg mqtt.Message) {
		s.handle(ctx, msg.Topic(), msg.Payload())
	})
	if !tok.WaitTimeout(subscribeTimeout) || tok.Error() != nil {
		return fmt.Errorf("subscribing to %v: %w", s.Topics(), tokenErr(tok))
	}
	if s.log != nil {
		s.log.Infow("mqtt_subscribed", "topics", s.Topics())
	}

	<-ctx.Done()
	return nil
}

func tokenErr(tok mqtt.Token) error {
	if err := tok.Error(); err != nil {
		return err
	}
	return errors.New("timed out")
}

// handle decodes one message and records it. Bad payloads are logged and dropped.
func (s *Subscriber) handle(ctx context.Context, topic string, payload []byte) {
	var err error
	switch strings.TrimPrefix(topic, s.prefix+"/") {
	case topicTemperature:
		var p models.TemperaturePoint
		if p, err = ParseTemperature(payload); err == nil {
			_, err = s.rec.RecordTemperature(ctx, p)
		}
	case topicWater:
		var p models.WaterQualityPoint
		if p, err = ParseWater(payload); err == nil {
			_, err = s.rec.RecordWater(ctx, p)
		}
	default:
		err = fmt.Errorf("unexpected topic %q", topic)
	}
	if err != nil && s.log != nil {
		s.log.Warnw("mqtt_message_dropped", "topic", topic, "err", err)
	}
}

type temperaturePayload struct {
	Timestamp string   `json:"timestamp"`
	Value     *float64 `json:"value"`
}

type waterPayload struct {
	Timestamp string   `json:"timestamp"`
	PH        *float64 `json:"ph"`
	Ammonia   *float64 `json:"ammonia"`
}

// ParseTemperature decodes {"timestamp": "...", "value": 72.1}. A missing
// timestamp is left zero for the recorder to fill.
func ParseTemperature(payload []byte) (models.TemperaturePoint, error) {
	var in temperaturePayload
	if err := json.Unmarshal(payload, &in); err != nil {
		return models.TemperaturePoint{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if in.Value == nil {
		return models.TemperaturePoint{}, fmt.Errorf("%w: missing value", ErrInvalidPayload)
	}
	ts, err := parseTimestamp(in.Timestamp)
	if err != nil {
		return models.TemperaturePoint{}, err
	}
	return models.TemperaturePoint{Timestamp: ts, Value: *in.Value}, nil
}

// ParseWater decodes {"timestamp": "...", "ph": 7.2, "ammonia": 0.01}.
func ParseWater(payload []byte) (models.WaterQualityPoint, error) {
	var in waterPayload
	if err := json.Unmarshal(payload, &in); err != nil {
		return models.WaterQualityPoint{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if in.PH == nil || in.Ammonia == nil {
		return models.WaterQualityPoint{}, fmt.Errorf("%w: ph and ammonia are required", ErrInvalidPayload)
	}
	ts, err := parseTimestamp(in.Timestamp)
	if err != nil {
		return models.WaterQualityPoint{}, err
	}
	return models.WaterQualityPoint{Timestamp: ts, PH: *in.PH, Ammonia: *in.Ammonia}, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	ts, err := timeseries.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return ts.UTC(), nil
}
