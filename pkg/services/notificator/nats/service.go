package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/notificator"
	"github.com/nspcc-dev/eigentrust-node/pkg/services/reputation/eigentrust"
	"go.uber.org/zap"
)

// Headers of the published messages.
const (
	HeaderEpoch        = "Eigentrust-Epoch"
	HeaderParticipants = "Eigentrust-Participants"
)

// Writer publishes computed global trust to the JetStream subject.
// Messages are deduplicated by epoch, so the same epoch is stored once
// even if published again.
//
// Writer must be created via New and connected via Connect before use.
type Writer struct {
	subject string

	opts

	nc *nats.Conn
	js nats.JetStreamContext

	streamMtx   sync.Mutex
	streamReady bool
}

type opts struct {
	log    *zap.Logger
	stream string
	nOpts  []nats.Option
}

// Option is an option for the Writer constructor.
type Option func(*opts)

var errConnIsClosed = errors.New("connection to the server is closed")

// New creates new Writer publishing to the subject.
func New(subject string, oo ...Option) *Writer {
	w := &Writer{
		subject: subject,
		opts: opts{
			log:    zap.L(),
			stream: "eigentrust",
		},
	}

	for _, o := range oo {
		o(&w.opts)
	}

	w.nOpts = append(w.nOpts,
		nats.NoCallbacksAfterClientClose(),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				w.log.Error("nats: connection was lost", zap.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(*nats.Conn) {
			w.log.Warn("nats: reconnected to the server")
		}),
	)

	return w
}

// Connect establishes connection to the NATS endpoint. Connection is
// closed once ctx is done.
func (w *Writer) Connect(ctx context.Context, endpoint string) error {
	nc, err := nats.Connect(endpoint, w.nOpts...)
	if err != nil {
		return fmt.Errorf("could not connect to server: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return fmt.Errorf("could not init JetStream: %w", err)
	}

	w.nc, w.js = nc, js

	context.AfterFunc(ctx, func() {
		w.log.Info("nats: closing connection as the context is done")
		nc.Close()
	})

	return nil
}

// ensureStream creates the stream bound to the subject unless it was
// done already. Failed attempt is repeated on the next call.
func (w *Writer) ensureStream() error {
	w.streamMtx.Lock()
	defer w.streamMtx.Unlock()

	if w.streamReady {
		return nil
	}

	_, err := w.js.AddStream(&nats.StreamConfig{
		Name:     w.stream,
		Subjects: []string{w.subject},
	})
	if err != nil {
		return fmt.Errorf("could not add stream %s: %w", w.stream, err)
	}

	w.streamReady = true

	return nil
}

// Notify publishes the result as JSON notificator.Notification and waits
// for the server acknowledgement.
func (w *Writer) Notify(ctx context.Context, res eigentrust.Result) error {
	if w.nc == nil || !w.nc.IsConnected() {
		return errConnIsClosed
	}

	if err := w.ensureStream(); err != nil {
		return err
	}

	data, err := json.Marshal(notificator.FromResult(res))
	if err != nil {
		return fmt.Errorf("could not encode notification: %w", err)
	}

	epoch := strconv.FormatUint(res.Epoch, 10)

	msg := nats.NewMsg(w.subject)
	msg.Data = data
	msg.Header.Set(HeaderEpoch, epoch)
	msg.Header.Set(HeaderParticipants, strconv.Itoa(len(res.Participants)))

	ack, err := w.js.PublishMsg(msg, nats.MsgId(epoch), nats.Context(ctx))
	if err != nil {
		return fmt.Errorf("could not publish epoch %s: %w", epoch, err)
	}

	w.log.Debug("nats: global trust published",
		zap.String("subject", w.subject),
		zap.Uint64("epoch", res.Epoch),
		zap.Uint64("sequence", ack.Sequence),
		zap.Bool("duplicate", ack.Duplicate),
	)

	return nil
}
