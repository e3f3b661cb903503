package store

import (
	"github.com/google/uuid"

	"haverststudio-backend/models"
)

// Add operations assign a fresh id, append (collections keep insertion
// order) and write the collection through. They never validate fields;
// binding validation is the controllers' job.

func (s *Store) AddClient(client models.Client) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client.ID = uuid.NewString()
	s.clients = append(s.clients, client)
	if err := saveCollection(s.backend, CollectionClients, s.clients); err != nil {
		return models.Client{}, err
	}
	return client, nil
}

func (s *Store) AddAppointment(apt models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apt.ID = uuid.NewString()
	s.appointments = append(s.appointments, apt)
	if err := saveCollection(s.backend, CollectionAppointments, s.appointments); err != nil {
		return models.Appointment{}, err
	}
	return apt, nil
}

func (s *Store) AddService(svc models.Service) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc.ID = uuid.NewString()
	s.services = append(s.services, svc)
	if err := saveCollection(s.backend, CollectionServices, s.services); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Store) AddTransaction(tx models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = uuid.NewString()
	s.transactions = append(s.transactions, tx)
	if err := saveCollection(s.backend, CollectionTransactions, s.transactions); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func (s *Store) AddInventoryItem(item models.InventoryItem) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	s.inventory = append(s.inventory, item)
	if err := saveCollection(s.backend, CollectionInventory, s.inventory); err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}

// AddNotification is used by the notifier service; notifications are not
// created through the public API.
func (s *Store) AddNotification(n models.Notification) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.NewString()
	s.notifications = append(s.notifications, n)
	if err := saveCollection(s.backend, CollectionNotifications, s.notifications); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// Partial update payloads. A nil field means "leave unchanged"; a set field
// is applied exactly. Last writer wins, there is no version check.

type AppointmentUpdate struct {
	ClientID   *string                   `json:"clientId"`
	ClientName *string                   `json:"clientName"`
	Date       *string                   `json:"date"`
	Time       *string                   `json:"time"`
	Services   []string                  `json:"services"`
	Duration   *int                      `json:"duration"`
	Status     *models.AppointmentStatus `json:"status"`
	Notes      *string                   `json:"notes"`
	Reminder   *bool                     `json:"reminder"`
}

type ServiceUpdate struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"isActive"`
}

type InventoryItemUpdate struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Quantity     *int     `json:"quantity"`
	Unit         *string  `json:"unit"`
	MinStock     *int     `json:"minStock"`
	Price        *float64 `json:"price"`
	LastPurchase *string  `json:"lastPurchase"`
}

// UpdateAppointment merges the set fields of update into the appointment
// with the given id. Returns ErrNotFound, with the collection untouched,
// when the id does not exist.
func (s *Store) UpdateAppointment(id string, update AppointmentUpdate) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		apt := &s.appointments[i]
		if update.ClientID != nil {
			apt.ClientID = *update.ClientID
		}
		if update.ClientName != nil {
			apt.ClientName = *update.ClientName
		}
		if update.Date != nil {
			apt.Date = *update.Date
		}
		if update.Time != nil {
			apt.Time = *update.Time
		}
		if update.Services != nil {
			apt.Services = update.Services
		}
		if update.Duration != nil {
			apt.Duration = *update.Duration
		}
		if update.Status != nil {
			apt.Status = *update.Status
		}
		if update.Notes != nil {
			apt.Notes = *update.Notes
		}
		if update.Reminder != nil {
			apt.Reminder = *update.Reminder
		}
		if err := saveCollection(s.backend, CollectionAppointments, s.appointments); err != nil {
			return models.Appointment{}, err
		}
		return *apt, nil
	}
	return models.Appointment{}, ErrNotFound
}

// SetAppointmentStatus is a status-only specialization of UpdateAppointment.
func (s *Store) SetAppointmentStatus(id string, status models.AppointmentStatus) (models.Appointment, error) {
	return s.UpdateAppointment(id, AppointmentUpdate{Status: &status})
}

func (s *Store) UpdateService(id string, update ServiceUpdate) (models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.services {
		if s.services[i].ID != id {
			continue
		}
		svc := &s.services[i]
		if update.Name != nil {
			svc.Name = *update.Name
		}
		if update.Category != nil {
			svc.Category = *update.Category
		}
		if update.Price != nil {
			svc.Price = *update.Price
		}
		if update.Duration != nil {
			svc.Duration = *update.Duration
		}
		if update.Description != nil {
			svc.Description = *update.Description
		}
		if update.IsActive != nil {
			svc.IsActive = *update.IsActive
		}
		if err := saveCollection(s.backend, CollectionServices, s.services); err != nil {
			return models.Service{}, err
		}
		return *svc, nil
	}
	return models.Service{}, ErrNotFound
}

// SetServiceActive is an active-flag specialization of UpdateService.
func (s *Store) SetServiceActive(id string, active bool) (models.Service, error) {
	return s.UpdateService(id, ServiceUpdate{IsActive: &active})
}

func (s *Store) UpdateInventoryItem(id string, update InventoryItemUpdate) (models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.inventory {
		if s.inventory[i].ID != id {
			continue
		}
		item := &s.inventory[i]
		if update.Name != nil {
			item.Name = *update.Name
		}
		if update.Category != nil {
			item.Category = *update.Category
		}
		if update.Quantity != nil {
			item.Quantity = *update.Quantity
		}
		if update.Unit != nil {
			item.Unit = *update.Unit
		}
		if update.MinStock != nil {
			item.MinStock = *update.MinStock
		}
		if update.Price != nil {
			item.Price = *update.Price
		}
		if update.LastPurchase != nil {
			item.LastPurchase = *update.LastPurchase
		}
		if err := saveCollection(s.backend, CollectionInventory, s.inventory); err != nil {
			return models.InventoryItem{}, err
		}
		return *item, nil
	}
	return models.InventoryItem{}, ErrNotFound
}

func (s *Store) MarkNotificationRead(id string) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID != id {
			continue
		}
		s.notifications[i].Read = true
		if err := saveCollection(s.backend, CollectionNotifications, s.notifications); err != nil {
			return models.Notification{}, err
		}
		return s.notifications[i], nil
	}
	return models.Notification{}, ErrNotFound
}

func (s *Store) MarkAllNotificationsRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	return saveCollection(s.backend, CollectionNotifications, s.notifications)
}
