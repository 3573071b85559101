package kafka

// Config holds Kafka connection configuration.
type Config struct {
	// Brokers is the list of bootstrap broker addresses.
	Brokers []string
}
