package domain

import "time"

// Стартовые данные магазина
// Используются репозиториями, когда в хранилище отсутствует соответствующий ключ

// SeedSettings возвращает настройки магазина по умолчанию
func SeedSettings() ShopSettings {
	return ShopSettings{
		Name:    "БАРБЕРШОП НЕОН",
		Tagline: "Будущее стиля",
	}
}

// SeedServices возвращает стартовый каталог услуг
func SeedServices(now time.Time) []*Service {
	return []*Service{
		{
			ID:              "1",
			Name:            "Неоновый фейд",
			Description:     "Точный fade под кожу, окантовка бритвой и укладка.",
			Price:           45,
			DurationMinutes: 45,
			Image:           "https://images.unsplash.com/photo-1559526324-4b87b5e36e44?q=80&w=800&auto=format&fit=crop",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "2",
			Name:            "Классический джентльмен",
			Description:     "Стрижка ножницами, горячее полотенце и коррекция бороды.",
			Price:           55,
			DurationMinutes: 60,
			Image:           "https://images.unsplash.com/photo-1621605815971-fbc98d665033?q=80&w=800&auto=format&fit=crop",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "3",
			Name:            "Скульптура бороды",
			Description:     "Детальная моделировка бороды с уходом горячим маслом.",
			Price:           30,
			DurationMinutes: 30,
			Image:           "https://images.unsplash.com/photo-1622286342621-4bd786c2447c?q=80&w=800&auto=format&fit=crop",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              "4",
			Name:            "Быстрая машинка",
			Description:     "Стандартная стрижка машинкой. Без изысков, просто чисто.",
			Price:           25,
			DurationMinutes: 20,
			Image:           "https://images.unsplash.com/photo-1599351431202-1e0f0137899a?q=80&w=800&auto=format&fit=crop",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

// SeedBookings возвращает стартовые записи: две подтвержденные на сегодня
// и две завершенные исторические с отзывами
func SeedBookings(now time.Time) []*Booking {
	today := now.Format(DateFormat)

	return []*Booking{
		{
			ID:            "101",
			ServiceID:     "1",
			ServiceName:   "Неоновый фейд",
			CustomerName:  "Джон Уик",
			CustomerPhone: "555-0101",
			Date:          today,
			Time:          "10:00",
			Status:        StatusConfirmed,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "102",
			ServiceID:     "3",
			ServiceName:   "Скульптура бороды",
			CustomerName:  "Тони Старк",
			CustomerPhone: "555-0102",
			Date:          today,
			Time:          "14:30",
			Status:        StatusConfirmed,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            "99",
			ServiceID:     "2",
			ServiceName:   "Классический джентльмен",
			CustomerName:  "Брюс Уэйн",
			CustomerPhone: "555-0099",
			Date:          "2023-10-25",
			Time:          "18:00",
			Status:        StatusCompleted,
			Review: &Review{
				Rating:  5,
				Comment: "Безупречный сервис. Атмосфера потрясающая.",
				Date:    "2023-10-25",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:            "98",
			ServiceID:     "4",
			ServiceName:   "Быстрая машинка",
			CustomerName:  "Кларк Кент",
			CustomerPhone: "555-0098",
			Date:          "2023-10-24",
			Time:          "09:00",
			Status:        StatusCompleted,
			Review: &Review{
				Rating:  4,
				Comment: "Быстро и качественно, как и обещали.",
				Date:    "2023-10-24",
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
