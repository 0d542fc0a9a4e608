package config

// StatsdConfig controls the optional StatsD metrics sink.
type StatsdConfig struct {
	// Enabled toggles metric emission. The address must also be set for
	// metrics to flow.
	Enabled bool `env:"ENABLED" envDefault:"false"`

	// Address is the host:port of the UDP StatsD endpoint.
	Address string `env:"ADDRESS" envDefault:""`

	// Prefix is prepended to every metric name.
	Prefix string `env:"PREFIX" envDefault:"volunteer_api"`
}
