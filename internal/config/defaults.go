package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "easybites",
	Pass: "easybites",
	Name: "easybites_dispatch",
}

var defaultKafka = Kafka{
	Brokers:       nil,
	OrdersTopic:   "order-events",
	GroupID:       "dispatch-worker",
	CourierTopic:  "courier-notifications",
	CustomerTopic: "customer-notifications",
}

var defaultRedis = Redis{
	Addr: "",
	TTL:  7 * 24 * time.Hour,
}

var defaultGeocode = Geocode{
	APIKey:      "",
	Timeout:     2 * time.Second,
	MaxAttempts: 3,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    500 * time.Millisecond,
}

var defaultDispatch = Dispatch{
	RadiusKm:         5.0,
	OperationTimeout: 3 * time.Second,
	EarningsRate:     0.10,
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka { return defaultKafka }

// DefaultRedis returns the default Redis settings.
func DefaultRedis() Redis { return defaultRedis }

// DefaultGeocode returns the default geocoding gateway settings.
func DefaultGeocode() Geocode { return defaultGeocode }

// DefaultDispatch returns the default matching engine settings.
func DefaultDispatch() Dispatch { return defaultDispatch }
