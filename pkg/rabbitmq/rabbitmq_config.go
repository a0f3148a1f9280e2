package rabbitmq

type RabbimqConfigJson struct {
	Enabled        bool   `json:"enabled"`
	URL            string `json:"url"`
	Exchange       string `json:"exchange"`
	RoutingKey     string `json:"routing_key"`
	ConnectRetries uint64 `json:"connect_retries"`
}

type RabbitmqConfig struct {
	Enabled        bool
	URL            string
	Exchange       string
	RoutingKey     string
	ConnectRetries uint64
}

const defaultConnectRetries = 5

func (rcj RabbimqConfigJson) ConvertToDomain() RabbitmqConfig {
	retries := rcj.ConnectRetries
	if retries == 0 {
		retries = defaultConnectRetries
	}

	return RabbitmqConfig{
		Enabled:        rcj.Enabled,
		URL:            rcj.URL,
		Exchange:       rcj.Exchange,
		RoutingKey:     rcj.RoutingKey,
		ConnectRetries: retries,
	}
}
