package infrastructure

import (
	"time"

	"mesaYaApi/internal/modules/reservations/domain"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// SeedReservations returns the demo bookings loaded at startup. Customer id 1
// matches the demo identity issued by the mock login.
func SeedReservations() []domain.Reservation {
	return []domain.Reservation{
		{
			ID:              "101",
			RestaurantID:    "1",
			RestaurantName:  "Bella Italia",
			RestaurantImage: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
			CustomerID:      "1",
			Date:            "15/05/2023",
			Time:            "19:30",
			StartsAt:        at(2023, time.May, 15, 19, 30),
			PartySize:       2,
			Status:          domain.StatusConfirmed,
			Notes:           "Mesa próxima à janela, por favor",
			CustomerName:    "João Silva",
			CustomerEmail:   "joao.silva@example.com",
			CustomerPhone:   "(11) 98765-4321",
		},
		{
			ID:              "102",
			RestaurantID:    "5",
			RestaurantName:  "Le Bistro",
			RestaurantImage: "https://images.unsplash.com/photo-1544148103-0773bf10d330?w=800",
			CustomerID:      "1",
			Date:            "22/05/2023",
			Time:            "20:00",
			StartsAt:        at(2023, time.May, 22, 20, 0),
			PartySize:       4,
			Status:          domain.StatusPending,
			CustomerName:    "Maria Oliveira",
			CustomerEmail:   "maria.oliveira@example.com",
			CustomerPhone:   "(11) 91234-5678",
		},
		{
			ID:              "103",
			RestaurantID:    "2",
			RestaurantName:  "Sushi Zen",
			RestaurantImage: "https://images.unsplash.com/photo-1579027989536-b7b1f875659b?w=800",
			CustomerID:      "1",
			Date:            "03/06/2023",
			Time:            "13:00",
			StartsAt:        at(2023, time.June, 3, 13, 0),
			PartySize:       3,
			Status:          domain.StatusCanceled,
			Notes:           "Aniversário",
			CustomerName:    "Pedro Santos",
			CustomerEmail:   "pedro.santos@example.com",
			CustomerPhone:   "(11) 95555-6666",
		},
		{
			ID:              "104",
			RestaurantID:    "1",
			RestaurantName:  "Bella Italia",
			RestaurantImage: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
			CustomerID:      "1",
			Date:            "18/05/2023",
			Time:            "20:30",
			StartsAt:        at(2023, time.May, 18, 20, 30),
			PartySize:       5,
			Status:          domain.StatusPending,
			CustomerName:    "Ana Rodrigues",
			CustomerEmail:   "ana.rodrigues@example.com",
			CustomerPhone:   "(11) 98888-7777",
		},
		{
			ID:              "105",
			RestaurantID:    "1",
			RestaurantName:  "Bella Italia",
			RestaurantImage: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
			CustomerID:      "1",
			Date:            "20/05/2023",
			Time:            "19:00",
			StartsAt:        at(2023, time.May, 20, 19, 0),
			PartySize:       2,
			Status:          domain.StatusConfirmed,
			CustomerName:    "Lucas Ferreira",
			CustomerEmail:   "lucas.ferreira@example.com",
			CustomerPhone:   "(11) 97777-8888",
		},
	}
}
