package kafka_config

import "time"

const (
	DefaultBookingsTopic        = "carebook.bookings"
	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1
	DefaultProducerCompression  = "snappy"
	DefaultProducerWriteTimeout = 5 * time.Second
)
