package utils

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"log"

	"dinebook/model"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var confirmationTemplate = template.Must(template.ParseFS(templateFS, "templates/booking_confirmation.html"))

const qrContentID = "booking_qr"

type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends booking confirmations over SMTP.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

func NewMailer(cfg MailerConfig) *Mailer {
	return &Mailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

type confirmationData struct {
	model.BookingDetails
	HasQR bool
}

// BuildConfirmation renders the confirmation email with the booking id as an inline QR code.
// A QR failure only drops the image.
func (m *Mailer) BuildConfirmation(to string, details model.BookingDetails) (*gomail.Message, error) {
	qr, err := GenerateQRCode(details.BookingID, 400)
	if err != nil {
		log.Printf("email: qr for booking %s: %v", details.BookingID, err)
	}

	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, confirmationData{BookingDetails: details, HasQR: qr != nil}); err != nil {
		return nil, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Booking confirmed at "+details.RestaurantName)
	msg.SetBody("text/html", body.String())

	if qr != nil {
		msg.Embed("booking_qr.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qr)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<" + qrContentID + ">"},
				"Content-Disposition": {"inline"},
			}),
		)
	}
	return msg, nil
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, to string, details model.BookingDetails) error {
	msg, err := m.BuildConfirmation(to, details)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err == nil {
			log.Printf("email: confirmation for booking %s sent to %s", details.BookingID, to)
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
