package mailer

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client sends booking notification emails over SMTP. All sends are
// fire-and-forget from the caller's perspective: a failed send is logged
// and never fails the booking operation that triggered it.
type Client struct {
	dialer *gomail.Dialer
	from   string
	log    Logger
}

// NewClient creates an SMTP mailer client
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		log:    log,
	}
}

const dateLayout = "02 Jan 2006"

// SendBookingRequested notifies a listing owner about a new booking request
func (c *Client) SendBookingRequested(n BookingNotification) error {
	subject := "New Booking Request - RoomsOnRent"
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"You have received a new booking request for your listing %q.\n\n"+
			"Check-in:  %s\n"+
			"Check-out: %s\n"+
			"Amount:    %d\n\n"+
			"Please log in to your dashboard to confirm or reject this booking.\n",
		n.RecipientName, n.ListingTitle,
		n.CheckInDate.Format(dateLayout), n.CheckOutDate.Format(dateLayout), n.Amount,
	)
	return c.send(n.RecipientEmail, subject, body)
}

// SendStatusChanged notifies a renter that the owner changed their booking status
func (c *Client) SendStatusChanged(n BookingNotification) error {
	subject := fmt.Sprintf("Booking %s - RoomsOnRent", capitalize(n.Status))
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking for %q is now %s.\n\n"+
			"Check-in:  %s\n"+
			"Check-out: %s\n"+
			"Amount:    %d\n\n"+
			"You can view your booking details in your account dashboard.\n",
		n.RecipientName, n.ListingTitle, n.Status,
		n.CheckInDate.Format(dateLayout), n.CheckOutDate.Format(dateLayout), n.Amount,
	)
	return c.send(n.RecipientEmail, subject, body)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c *Client) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.log.Info("Sent %q to %s", subject, to)
	return nil
}
