// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"haverststudio-backend/analytics"
	"haverststudio-backend/models"
	"haverststudio-backend/store"
	"haverststudio-backend/utils"
)

// Notifier derives the notification feed from the other collections once a
// day: tomorrow's reminded appointments, upcoming birthdays, low stock and
// clients going inactive. When Twilio credentials are configured it also
// messages clients about tomorrow's appointments.
type Notifier struct {
	store  *store.Store
	client *twilio.RestClient
}

func NewNotifier(s *store.Store) *Notifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	n := &Notifier{store: s}
	if accountSid != "" && authToken != "" {
		n.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
	return n
}

func (n *Notifier) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		n.Run(time.Now())
	})

	c.Start()
	log.Println("Notification scheduler started")
}

// Run generates the day's notifications. Notifications whose message is
// already present in the feed are skipped so the daily job does not stack
// duplicates.
func (n *Notifier) Run(now time.Time) {
	log.Println("Starting daily notification processing...")

	n.appointmentReminders(now)
	n.birthdayReminders(now)
	n.lowStockAlerts(now)
	n.inactiveClientReminders(now)

	log.Println("Daily notification processing completed")
}

func (n *Notifier) publish(notification models.Notification) {
	for _, existing := range n.store.Notifications() {
		if existing.Message == notification.Message {
			return
		}
	}
	if _, err := n.store.AddNotification(notification); err != nil {
		log.Printf("Failed to store notification: %v", err)
	}
}

func (n *Notifier) appointmentReminders(now time.Time) {
	tomorrow := now.AddDate(0, 0, 1).Format(utils.DateLayout)
	stamp := now.Format(utils.TimestampLayout)

	for _, apt := range analytics.AppointmentsOn(n.store.Appointments(), tomorrow, "", "") {
		if !apt.Reminder || apt.Status == models.StatusCancelled {
			continue
		}
		n.publish(models.Notification{
			Type:    models.NotifyAppointment,
			Title:   "Cita próxima",
			Message: fmt.Sprintf("%s tiene cita mañana a las %s", apt.ClientName, apt.Time),
			Date:    stamp,
		})
		n.messageClient(apt)
	}
}

func (n *Notifier) birthdayReminders(now time.Time) {
	stamp := now.Format(utils.TimestampLayout)

	for _, client := range n.store.Clients() {
		if client.Birthday == "" {
			continue
		}
		birthday, err := time.Parse(utils.DateLayout, client.Birthday)
		if err != nil {
			continue
		}
		// Project the birthday onto the current year for comparison.
		event := time.Date(now.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, now.Location())
		daysUntil := utils.DaysBetween(now, event)
		if daysUntil < 0 || daysUntil > 6 {
			continue
		}
		n.publish(models.Notification{
			Type:    models.NotifyBirthday,
			Title:   "Cumpleaños próximo",
			Message: fmt.Sprintf("%s cumple años el %d de %s", client.Name, birthday.Day(), utils.ShortMonth(birthday.Month())),
			Date:    stamp,
		})
	}
}

func (n *Notifier) lowStockAlerts(now time.Time) {
	stamp := now.Format(utils.TimestampLayout)

	for _, item := range analytics.LowStock(n.store.Inventory()) {
		n.publish(models.Notification{
			Type:    models.NotifyLowStock,
			Title:   "Stock bajo",
			Message: fmt.Sprintf("%s por debajo del stock mínimo", item.Name),
			Date:    stamp,
		})
	}
}

func (n *Notifier) inactiveClientReminders(now time.Time) {
	stamp := now.Format(utils.TimestampLayout)

	for _, client := range n.store.Clients() {
		lastVisit, err := time.Parse(utils.DateLayout, client.LastVisit)
		if err != nil {
			continue
		}
		days := utils.DaysBetween(lastVisit, now)
		if days <= 30 {
			continue
		}
		n.publish(models.Notification{
			Type:    models.NotifyReminder,
			Title:   "Cliente inactiva",
			Message: fmt.Sprintf("%s no ha visitado en %d días", client.Name, days),
			Date:    stamp,
		})
	}
}

// messageClient sends the appointment reminder to the client's phone,
// WhatsApp when the number is in E.164 form, SMS otherwise.
func (n *Notifier) messageClient(apt models.Appointment) {
	if n.client == nil {
		return
	}

	var phone string
	for _, client := range n.store.Clients() {
		if client.ID == apt.ClientID {
			phone = client.Phone
			break
		}
	}
	if phone == "" {
		return
	}

	message := fmt.Sprintf("Hola %s, te recordamos tu cita mañana a las %s en Haverst Studio.", apt.ClientName, apt.Time)

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(message)
	if strings.HasPrefix(phone, "+") {
		params.SetTo("whatsapp:" + strings.ReplaceAll(phone, " ", ""))
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetTo(phone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", phone)
	}
}
