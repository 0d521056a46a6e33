package publisher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	model "courtbeat_backend/internals/features/analytics/model"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 5 * time.Second
	defaultDrainTimeout = 10 * time.Second
)

var (
	ErrQueueFull = errors.New("analytics publish queue full")
	ErrClosed    = errors.New("analytics publisher closed")
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaOption func(*KafkaPublisher)

// WithWriterFactory: ganti pembuat writer (test / writer custom)
func WithWriterFactory(f func(brokers []string, topic string) MessageWriter) KafkaOption {
	return func(p *KafkaPublisher) { p.newWriter = f }
}

func WithWriteTimeout(d time.Duration) KafkaOption {
	return func(p *KafkaPublisher) { p.writeTimeout = d }
}

func WithDrainTimeout(d time.Duration) KafkaOption {
	return func(p *KafkaPublisher) { p.drainTimeout = d }
}

func WithQueueSize(n int) KafkaOption {
	return func(p *KafkaPublisher) { p.queueSize = n }
}

// KafkaPublisher: Publish cuma enqueue, penulisan ke broker jalan di goroutine sendiri.
// Writer per topic dibuat saat pertama dipakai. Key pesan = club id supaya event
// satu club jatuh ke partisi yang sama.
type KafkaPublisher struct {
	brokers []string
	topic   string
	log     *logrus.Logger

	queueSize    int
	writeTimeout time.Duration
	drainTimeout time.Duration

	queue  chan kafka.Message
	done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc

	closeMu sync.RWMutex
	closed  bool

	mu        sync.Mutex
	writers   map[string]MessageWriter
	newWriter func(brokers []string, topic string) MessageWriter
}

func NewKafkaPublisher(brokers []string, topic string, log *logrus.Logger, opts ...KafkaOption) *KafkaPublisher {
	p := &KafkaPublisher{
		brokers:      brokers,
		topic:        topic,
		log:          log,
		queueSize:    defaultQueueSize,
		writeTimeout: defaultWriteTimeout,
		drainTimeout: defaultDrainTimeout,
		writers:      make(map[string]MessageWriter),
		newWriter:    newKafkaWriter,
	}
	for _, o := range opts {
		o(p)
	}
	if p.queueSize < 1 {
		p.queueSize = 1
	}

	p.queue = make(chan kafka.Message, p.queueSize)
	p.done = make(chan struct{})
	p.ctx, p.cancel = context.WithCancel(context.Background())
	go p.loop()
	return p
}

func newKafkaWriter(brokers []string, topic string) MessageWriter {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		MaxAttempts:  3,
	}
}

// Publish tidak pernah menunggu broker. Antrian penuh → ErrQueueFull (event di-drop).
func (p *KafkaPublisher) Publish(_ context.Context, ev model.AnalyticsEventModel) error {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(ev.ClubID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.EventType)},
		},
		Time: ev.Timestamp,
	}

	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	select {
	case p.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

func (p *KafkaPublisher) loop() {
	defer close(p.done)
	for msg := range p.queue {
		ctx, cancel := context.WithTimeout(p.ctx, p.writeTimeout)
		err := p.writerForTopic(p.topic).WriteMessages(ctx, msg)
		cancel()
		if err != nil && p.log != nil {
			p.log.WithError(err).WithField("topic", p.topic).WithField("club_id", string(msg.Key)).
				Warn("📨 kirim event analytics ke Kafka gagal")
		}
	}
}

func (p *KafkaPublisher) writerForTopic(topic string) MessageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}
	w := p.newWriter(p.brokers, topic)
	p.writers[topic] = w
	return w
}

// Close: tunggu antrian habis (maks drainTimeout), sisanya dibatalkan,
// lalu tutup semua writer. Error pertama yang dikembalikan.
func (p *KafkaPublisher) Close() error {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.closeMu.Unlock()

	select {
	case <-p.done:
	case <-time.After(p.drainTimeout):
		p.cancel()
		<-p.done
	}
	p.cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
