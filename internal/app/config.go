package app

// Config описывает настройки запуска сервиса витрины.
type Config struct {
	// HTTPAddr — адрес API сервиса заказов.
	HTTPAddr string
	// MetricsAddr — адрес служебного HTTP-сервера (метрики и health).
	MetricsAddr string
	// DatabaseURL — DSN PostgreSQL; пустое значение включает in-memory хранилище.
	DatabaseURL string
	// KafkaBrokers — список брокеров через запятую; пустое значение отключает события.
	KafkaBrokers string
	// RedisAddr — адрес Redis для кэша налогового справочника; опционально.
	RedisAddr string
	// SeedDemo включает наполнение хранилища демо-данными при старте.
	SeedDemo bool
}

// DefaultConfig возвращает базовые адреса API и служебного сервера.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
	}
}
