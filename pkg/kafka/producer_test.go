package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	written []kafka.Message
	err     error
	closed  int
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed++
	return nil
}

func TestPublish_ConvertsHeaders(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "bookings")

	msg, err := NewMessage().
		WithKey("provider-1").
		WithValue(map[string]string{"id": "abc"}).
		WithEventType("booking.confirmed").
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if err := p.Publish(context.Background(), msg); err != nil {
		t.Fatalf("unexpected publish error: %v", err)
	}
	if len(w.written) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.written))
	}

	got := w.written[0]
	if string(got.Key) != "provider-1" {
		t.Errorf("expected key provider-1, got %s", got.Key)
	}
	headers := map[string]string{}
	for _, h := range got.Headers {
		headers[h.Key] = string(h.Value)
	}
	if headers[HeaderEventType] != "booking.confirmed" {
		t.Errorf("expected event-type header, got %v", headers)
	}
	if headers[HeaderEventID] == "" {
		t.Errorf("expected generated event-id header")
	}
}

func TestPublish_RejectsInvalidMessages(t *testing.T) {
	p := newProducer(&fakeWriter{}, "bookings")

	tests := []struct {
		name string
		msg  Message
		want error
	}{
		{name: "empty key", msg: Message{Value: []byte("{}")}, want: ErrEmptyKey},
		{name: "empty value", msg: Message{Key: "k"}, want: ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Publish(context.Background(), tt.msg); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPublish_WrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := newProducer(&fakeWriter{err: boom}, "bookings")

	err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}

func TestClose_Idempotent(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "bookings")

	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if w.closed != 1 {
		t.Errorf("expected writer closed once, got %d", w.closed)
	}
	if err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")}); !errors.Is(err, ErrProducerClosed) {
		t.Errorf("expected ErrProducerClosed, got %v", err)
	}
}

func TestBuild_ReportsEncodingError(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	if err == nil {
		t.Fatal("expected encoding error")
	}
}
