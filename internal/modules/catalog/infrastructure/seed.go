package infrastructure

import "mesaYaApi/internal/modules/catalog/domain"

// SeedRestaurants returns the demo catalog loaded at startup.
func SeedRestaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:           "1",
			Name:         "Bella Italia",
			Description:  "Autêntica culinária italiana com massas artesanais e ingredientes importados.",
			Image:        "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
			Cuisine:      "Italiana",
			Rating:       4.7,
			PriceLevel:   3,
			Address:      "Rua das Flores, 123 - Centro",
			Phone:        "(11) 3456-7890",
			OpeningHours: domain.OpeningHours{Opens: "18:00", Closes: "23:00"},
			Featured:     true,
			OwnerID:      "1",
		},
		{
			ID:           "2",
			Name:         "Sushi Zen",
			Description:  "O melhor da culinária japonesa com peixes frescos selecionados diariamente.",
			Image:        "https://images.unsplash.com/photo-1579027989536-b7b1f875659b?w=800",
			Cuisine:      "Japonesa",
			Rating:       4.9,
			PriceLevel:   4,
			Address:      "Av. Paulista, 1500 - Bela Vista",
			Phone:        "(11) 9876-5432",
			OpeningHours: domain.OpeningHours{Opens: "12:00", Closes: "22:30"},
			Featured:     true,
		},
		{
			ID:           "3",
			Name:         "Sabor Mineiro",
			Description:  "Comida típica mineira com aquele gostinho de fazenda.",
			Image:        "https://images.unsplash.com/photo-1551632436-cbf8dd35adfa?w=800",
			Cuisine:      "Brasileira",
			Rating:       4.5,
			PriceLevel:   2,
			Address:      "Rua dos Pinheiros, 578 - Pinheiros",
			Phone:        "(11) 2345-6789",
			OpeningHours: domain.OpeningHours{Opens: "11:30", Closes: "15:00"},
		},
		{
			ID:           "4",
			Name:         "Tandoor House",
			Description:  "Especiarias e sabores autênticos da Índia em um ambiente aconchegante.",
			Image:        "https://images.unsplash.com/photo-1600891964599-f61ba0e24092?w=800",
			Cuisine:      "Indiana",
			Rating:       4.3,
			PriceLevel:   3,
			Address:      "Alameda Santos, 45 - Jardim Paulista",
			Phone:        "(11) 3333-4444",
			OpeningHours: domain.OpeningHours{Opens: "19:00", Closes: "23:30"},
		},
		{
			ID:           "5",
			Name:         "Le Bistro",
			Description:  "Gastronomia francesa tradicional com toques contemporâneos.",
			Image:        "https://images.unsplash.com/photo-1544148103-0773bf10d330?w=800",
			Cuisine:      "Francesa",
			Rating:       4.8,
			PriceLevel:   4,
			Address:      "Rua Oscar Freire, 985 - Jardins",
			Phone:        "(11) 5555-6666",
			OpeningHours: domain.OpeningHours{Opens: "19:30", Closes: "00:00"},
		},
		{
			ID:           "6",
			Name:         "Burger Joint",
			Description:  "Hambúrgueres artesanais com ingredientes selecionados e batatas fritas crocantes.",
			Image:        "https://images.unsplash.com/photo-1466978913421-dad2ebd01d17?w=800",
			Cuisine:      "Americana",
			Rating:       4.4,
			PriceLevel:   2,
			Address:      "Rua Augusta, 256 - Consolação",
			Phone:        "(11) 7777-8888",
			OpeningHours: domain.OpeningHours{Opens: "12:00", Closes: "00:00"},
		},
		{
			ID:           "7",
			Name:         "Tapas & Vino",
			Description:  "Bar de tapas espanholas com uma extensa carta de vinhos importados.",
			Image:        "https://images.unsplash.com/photo-1590846406792-0adc7f938f1d?w=800",
			Cuisine:      "Espanhola",
			Rating:       4.6,
			PriceLevel:   3,
			Address:      "Rua Amauri, 328 - Itaim Bibi",
			Phone:        "(11) 9999-0000",
			OpeningHours: domain.OpeningHours{Opens: "18:30", Closes: "01:00"},
		},
		{
			ID:           "8",
			Name:         "Cantina do Porto",
			Description:  "Frutos do mar frescos preparados com receitas tradicionais portuguesas.",
			Image:        "https://images.unsplash.com/photo-1576300291608-d13ed7afb771?w=800",
			Cuisine:      "Portuguesa",
			Rating:       4.5,
			PriceLevel:   3,
			Address:      "Rua Joaquim Távora, 456 - Vila Mariana",
			Phone:        "(11) 2222-3333",
			OpeningHours: domain.OpeningHours{Opens: "12:00", Closes: "16:00"},
		},
	}
}
