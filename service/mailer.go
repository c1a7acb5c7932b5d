package service

import (
	"fmt"
	"strings"

	"github.com/bookverse/backend/models"
	mail "github.com/go-mail/mail/v2"
)

// Mailer sends order-confirmation mail over SMTP.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

func (m *Mailer) SendOrderConfirmation(to string, order *models.Order) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Thanks for your order %s.\n\n", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %d x %s @ %.2f\n", item.Quantity, item.BookID, item.Price)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f\nStatus: %s\n", order.TotalAmount, order.Status)
	fmt.Fprintf(&b, "Shipping to: %s, %s, %s %s\n",
		order.ShippingAddress.Street, order.ShippingAddress.City,
		order.ShippingAddress.State, order.ShippingAddress.ZipCode)

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Order confirmation "+order.ID)
	msg.SetBody("text/plain", b.String())

	d := mail.NewDialer(m.host, m.port, m.user, m.pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	return d.DialAndSend(msg)
}
