package app

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес публичного HTTP API.
	HTTPAddr string
	// MetricsAddr — адрес служебного сервера метрик и health-проверок.
	MetricsAddr string
	// DatabaseURL пустой, когда хранилище не сконфигурировано;
	// сервис тогда работает в режиме деградации.
	DatabaseURL  string
	DatabaseName string
	// KafkaBrokers — список брокеров через запятую; пусто выключает события.
	KafkaBrokers string
	// StrictPersistence превращает ошибку сохранения заказа в отказ запроса.
	StrictPersistence bool
}

// DefaultConfig возвращает базовые адреса HTTP API и метрик.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:     ":8000",
		MetricsAddr:  ":9090",
		DatabaseName: "giftnama",
	}
}
