// Package seed holds the built-in demo dataset used to initialize any
// collection that has no persisted state yet. First run lands on a populated
// studio instead of empty screens.
package seed

import "haverststudio-backend/models"

// Clients returns the demo client roster.
func Clients() []models.Client {
	return []models.Client{
		{
			ID:          "1",
			Name:        "María González",
			Phone:       "+52 555-0101",
			Email:       "maria.g@email.com",
			Notes:       "Prefiere productos sin amoniaco",
			Birthday:    "1985-03-15",
			LastVisit:   "2026-01-15",
			TotalVisits: 24,
			TotalSpent:  12500,
			Preferences: []string{"Tinte sin amoniaco", "Corte en capas", "Productos orgánicos"},
			History: []models.ServiceHistory{
				{
					ID:       "h1",
					Date:     "2026-01-15",
					Services: []string{"Corte", "Tinte", "Tratamiento"},
					Total:    850,
					Notes:    "Cliente muy satisfecha con el resultado",
				},
				{
					ID:       "h2",
					Date:     "2025-12-20",
					Services: []string{"Alaciado", "Hidratación"},
					Total:    950,
					Notes:    "Aplicar keratina suave",
				},
			},
		},
		{
			ID:          "2",
			Name:        "Ana Martínez",
			Phone:       "+52 555-0102",
			Email:       "ana.m@email.com",
			Notes:       "Cuero cabelludo sensible",
			Birthday:    "1990-07-22",
			LastVisit:   "2026-01-18",
			TotalVisits: 18,
			TotalSpent:  9800,
			Preferences: []string{"Productos hipoalergénicos", "Peinados recogidos"},
			History: []models.ServiceHistory{
				{
					ID:       "h3",
					Date:     "2026-01-18",
					Services: []string{"Manicure", "Pedicure"},
					Total:    450,
					Notes:    "Le encantó el color nude",
				},
			},
		},
		{
			ID:          "3",
			Name:        "Laura Ramírez",
			Phone:       "+52 555-0103",
			Email:       "laura.r@email.com",
			Notes:       "Prefiere citas por la tarde",
			Birthday:    "1988-11-30",
			LastVisit:   "2026-01-12",
			TotalVisits: 32,
			TotalSpent:  18900,
			Preferences: []string{"Balayage", "Tratamientos capilares", "Maquillaje de noche"},
			History: []models.ServiceHistory{
				{
					ID:       "h4",
					Date:     "2026-01-12",
					Services: []string{"Balayage", "Corte", "Peinado"},
					Total:    1200,
					Notes:    "Resultado espectacular, cliente fiel",
				},
			},
		},
		{
			ID:          "4",
			Name:        "Carmen Silva",
			Phone:       "+52 555-0104",
			Notes:       "Cliente VIP",
			Birthday:    "1982-05-10",
			LastVisit:   "2026-01-19",
			TotalVisits: 45,
			TotalSpent:  28500,
			Preferences: []string{"Mechas californianas", "Tratamientos premium", "Faciales"},
			History: []models.ServiceHistory{
				{
					ID:       "h5",
					Date:     "2026-01-19",
					Services: []string{"Facial", "Depilación"},
					Total:    750,
					Notes:    "Siempre puntual",
				},
			},
		},
		{
			ID:          "5",
			Name:        "Patricia López",
			Phone:       "+52 555-0105",
			Email:       "paty.l@email.com",
			Notes:       "Le gusta probar nuevos estilos",
			Birthday:    "1995-09-18",
			LastVisit:   "2026-01-10",
			TotalVisits: 15,
			TotalSpent:  7200,
			Preferences: []string{"Cortes modernos", "Colores vibrantes"},
			History: []models.ServiceHistory{
				{
					ID:       "h6",
					Date:     "2026-01-10",
					Services: []string{"Corte pixie", "Color fantasía"},
					Total:    980,
					Notes:    "Color rosa pastel, le encantó",
				},
			},
		},
	}
}

// Appointments returns the demo agenda.
func Appointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:         "a1",
			ClientID:   "1",
			ClientName: "María González",
			Date:       "2026-01-20",
			Time:       "10:00",
			Services:   []string{"Corte", "Tinte"},
			Duration:   120,
			Status:     models.StatusConfirmed,
			Notes:      "Retoque de raíz",
			Reminder:   true,
		},
		{
			ID:         "a2",
			ClientID:   "2",
			ClientName: "Ana Martínez",
			Date:       "2026-01-20",
			Time:       "14:00",
			Services:   []string{"Manicure", "Pedicure"},
			Duration:   90,
			Status:     models.StatusConfirmed,
			Reminder:   true,
		},
		{
			ID:         "a3",
			ClientID:   "3",
			ClientName: "Laura Ramírez",
			Date:       "2026-01-21",
			Time:       "11:00",
			Services:   []string{"Balayage", "Tratamiento"},
			Duration:   180,
			Status:     models.StatusConfirmed,
			Notes:      "Tonos caramelo",
			Reminder:   true,
		},
		{
			ID:         "a4",
			ClientID:   "4",
			ClientName: "Carmen Silva",
			Date:       "2026-01-21",
			Time:       "16:00",
			Services:   []string{"Facial", "Maquillaje"},
			Duration:   120,
			Status:     models.StatusPending,
			Notes:      "Evento especial",
		},
		{
			ID:         "a5",
			ClientID:   "5",
			ClientName: "Patricia López",
			Date:       "2026-01-22",
			Time:       "09:00",
			Services:   []string{"Corte", "Peinado"},
			Duration:   90,
			Status:     models.StatusConfirmed,
			Reminder:   true,
		},
		{
			ID:         "a6",
			ClientID:   "1",
			ClientName: "María González",
			Date:       "2026-01-23",
			Time:       "15:00",
			Services:   []string{"Hidratación profunda"},
			Duration:   60,
			Status:     models.StatusPending,
		},
	}
}

// Services returns the demo catalog.
func Services() []models.Service {
	return []models.Service{
		{ID: "s1", Name: "Corte Dama", Category: "Corte", Price: 250, Duration: 45, Description: "Corte de cabello con técnica personalizada", IsActive: true},
		{ID: "s2", Name: "Corte Caballero", Category: "Corte", Price: 180, Duration: 30, Description: "Corte de cabello masculino", IsActive: true},
		{ID: "s3", Name: "Tinte Completo", Category: "Color", Price: 450, Duration: 120, Description: "Aplicación de color en todo el cabello", IsActive: true},
		{ID: "s4", Name: "Retoque de Raíz", Category: "Color", Price: 320, Duration: 90, Description: "Aplicación de color solo en raíz", IsActive: true},
		{ID: "s5", Name: "Balayage", Category: "Color", Price: 850, Duration: 180, Description: "Técnica de mechas naturales", IsActive: true},
		{ID: "s6", Name: "Mechas Californianas", Category: "Color", Price: 750, Duration: 150, Description: "Mechas con efecto degradado", IsActive: true},
		{ID: "s7", Name: "Alaciado", Category: "Tratamiento", Price: 600, Duration: 180, Description: "Tratamiento de alaciado permanente", IsActive: true},
		{ID: "s8", Name: "Hidratación Profunda", Category: "Tratamiento", Price: 350, Duration: 60, Description: "Tratamiento intensivo de hidratación", IsActive: true},
		{ID: "s9", Name: "Keratina", Category: "Tratamiento", Price: 900, Duration: 180, Description: "Tratamiento con keratina para alisar", IsActive: true},
		{ID: "s10", Name: "Manicure", Category: "Uñas", Price: 200, Duration: 45, Description: "Manicure completo con esmaltado", IsActive: true},
		{ID: "s11", Name: "Pedicure", Category: "Uñas", Price: 250, Duration: 60, Description: "Pedicure completo con esmaltado", IsActive: true},
		{ID: "s12", Name: "Uñas Acrílicas", Category: "Uñas", Price: 450, Duration: 120, Description: "Aplicación de uñas acrílicas", IsActive: true},
		{ID: "s13", Name: "Peinado Casual", Category: "Peinado", Price: 280, Duration: 45, Description: "Peinado para uso diario", IsActive: true},
		{ID: "s14", Name: "Peinado de Novia", Category: "Peinado", Price: 800, Duration: 120, Description: "Peinado elaborado para eventos", IsActive: true},
		{ID: "s15", Name: "Maquillaje Social", Category: "Maquillaje", Price: 350, Duration: 60, Description: "Maquillaje para eventos", IsActive: true},
		{ID: "s16", Name: "Maquillaje de Novia", Category: "Maquillaje", Price: 650, Duration: 90, Description: "Maquillaje profesional para bodas", IsActive: true},
		{ID: "s17", Name: "Facial Básico", Category: "Facial", Price: 400, Duration: 60, Description: "Limpieza facial profunda", IsActive: true},
		{ID: "s18", Name: "Depilación Ceja", Category: "Depilación", Price: 80, Duration: 15, Description: "Depilación y diseño de cejas", IsActive: true},
		{ID: "s19", Name: "Depilación Facial", Category: "Depilación", Price: 180, Duration: 30, Description: "Depilación completa de rostro", IsActive: true},
		{ID: "s20", Name: "Permanente", Category: "Tratamiento", Price: 550, Duration: 150, Description: "Permanente rizado o ondulado", IsActive: true},
	}
}

// Transactions returns the demo ledger.
func Transactions() []models.Transaction {
	return []models.Transaction{
		{ID: "t1", Date: "2026-01-19", Type: models.TypeIncome, Amount: 750, Category: "Servicios", Description: "Facial + Depilación - Carmen Silva", ClientID: "4"},
		{ID: "t2", Date: "2026-01-18", Type: models.TypeIncome, Amount: 450, Category: "Servicios", Description: "Manicure + Pedicure - Ana Martínez", ClientID: "2"},
		{ID: "t3", Date: "2026-01-18", Type: models.TypeExpense, Amount: 1200, Category: "Inventario", Description: "Compra de tintes y productos"},
		{ID: "t4", Date: "2026-01-17", Type: models.TypeIncome, Amount: 980, Category: "Servicios", Description: "Corte + Color - Nueva cliente"},
		{ID: "t5", Date: "2026-01-16", Type: models.TypeExpense, Amount: 450, Category: "Servicios", Description: "Pago de luz"},
		{ID: "t6", Date: "2026-01-15", Type: models.TypeIncome, Amount: 850, Category: "Servicios", Description: "Corte + Tinte + Tratamiento - María González", ClientID: "1"},
		{ID: "t7", Date: "2026-01-15", Type: models.TypeIncome, Amount: 600, Category: "Servicios", Description: "Alaciado - Nueva cliente"},
		{ID: "t8", Date: "2026-01-14", Type: models.TypeExpense, Amount: 800, Category: "Inventario", Description: "Productos de uñas y esmaltes"},
		{ID: "t9", Date: "2026-01-14", Type: models.TypeIncome, Amount: 1200, Category: "Servicios", Description: "Balayage + Corte + Peinado - Laura Ramírez", ClientID: "3"},
		{ID: "t10", Date: "2026-01-13", Type: models.TypeIncome, Amount: 550, Category: "Servicios", Description: "Permanente - Cliente regular"},
		{ID: "t11", Date: "2026-01-13", Type: models.TypeIncome, Amount: 350, Category: "Servicios", Description: "Maquillaje social - Evento"},
		{ID: "t12", Date: "2026-01-12", Type: models.TypeExpense, Amount: 250, Category: "Gastos", Description: "Internet y teléfono"},
	}
}

// Inventory returns the demo stock list.
func Inventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "i1", Name: "Tinte Rubio Ceniza", Category: "Tintes", Quantity: 8, Unit: "unidades", MinStock: 5, Price: 120, LastPurchase: "2026-01-18"},
		{ID: "i2", Name: "Tinte Castaño Oscuro", Category: "Tintes", Quantity: 12, Unit: "unidades", MinStock: 5, Price: 120, LastPurchase: "2026-01-18"},
		{ID: "i3", Name: "Oxidante 20vol", Category: "Tintes", Quantity: 15, Unit: "litros", MinStock: 10, Price: 85, LastPurchase: "2026-01-18"},
		{ID: "i4", Name: "Shampoo Hidratante", Category: "Productos", Quantity: 6, Unit: "unidades", MinStock: 8, Price: 180, LastPurchase: "2026-01-10"},
		{ID: "i5", Name: "Acondicionador Reparador", Category: "Productos", Quantity: 4, Unit: "unidades", MinStock: 8, Price: 180, LastPurchase: "2026-01-10"},
		{ID: "i6", Name: "Keratina Brasileña", Category: "Tratamientos", Quantity: 3, Unit: "unidades", MinStock: 2, Price: 450, LastPurchase: "2025-12-28"},
		{ID: "i7", Name: "Mascarilla Hidratante", Category: "Tratamientos", Quantity: 10, Unit: "unidades", MinStock: 5, Price: 200, LastPurchase: "2026-01-15"},
		{ID: "i8", Name: "Esmalte Permanente - Nude", Category: "Uñas", Quantity: 15, Unit: "unidades", MinStock: 10, Price: 95, LastPurchase: "2026-01-14"},
		{ID: "i9", Name: "Esmalte Permanente - Rojo", Category: "Uñas", Quantity: 12, Unit: "unidades", MinStock: 10, Price: 95, LastPurchase: "2026-01-14"},
		{ID: "i10", Name: "Base coat", Category: "Uñas", Quantity: 7, Unit: "unidades", MinStock: 5, Price: 110, LastPurchase: "2026-01-14"},
		{ID: "i11", Name: "Top coat", Category: "Uñas", Quantity: 8, Unit: "unidades", MinStock: 5, Price: 110, LastPurchase: "2026-01-14"},
		{ID: "i12", Name: "Guantes desechables", Category: "Consumibles", Quantity: 3, Unit: "cajas", MinStock: 2, Price: 85, LastPurchase: "2026-01-05"},
		{ID: "i13", Name: "Toallas desechables", Category: "Consumibles", Quantity: 25, Unit: "paquetes", MinStock: 15, Price: 45, LastPurchase: "2026-01-12"},
		{ID: "i14", Name: "Capa de corte", Category: "Herramientas", Quantity: 8, Unit: "unidades", MinStock: 6, Price: 120, LastPurchase: "2025-11-20"},
	}
}

// Notifications returns the demo notification feed.
func Notifications() []models.Notification {
	return []models.Notification{
		{
			ID:      "n1",
			Type:    models.NotifyAppointment,
			Title:   "Cita próxima",
			Message: "María González tiene cita mañana a las 10:00",
			Date:    "2026-01-20T08:00:00",
		},
		{
			ID:      "n2",
			Type:    models.NotifyLowStock,
			Title:   "Stock bajo",
			Message: "Shampoo Hidratante por debajo del stock mínimo",
			Date:    "2026-01-19T14:00:00",
		},
		{
			ID:      "n3",
			Type:    models.NotifyLowStock,
			Title:   "Stock bajo",
			Message: "Acondicionador Reparador por debajo del stock mínimo",
			Date:    "2026-01-19T14:00:00",
		},
		{
			ID:      "n4",
			Type:    models.NotifyBirthday,
			Title:   "Cumpleaños próximo",
			Message: "Carmen Silva cumple años el 10 de Mayo",
			Date:    "2026-01-19T09:00:00",
			Read:    true,
		},
		{
			ID:      "n5",
			Type:    models.NotifyReminder,
			Title:   "Cliente inactiva",
			Message: "Patricia López no ha visitado en 10 días",
			Date:    "2026-01-18T10:00:00",
			Read:    true,
		},
	}
}
