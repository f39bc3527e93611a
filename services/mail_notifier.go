package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"

	"laptop-service-center/config"
)

// mailSender is satisfied by *mail.Dialer
type mailSender interface {
	DialAndSend(m ...*mail.Message) error
}

// MailNotifier emails the customer when their complaint is submitted or changes status
type MailNotifier struct {
	sender   mailSender
	from     string
	shopName string
	logger   *zap.Logger
}

func NewMailNotifier(cfg config.MailConfig, logger *zap.Logger) *MailNotifier {
	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return newMailNotifier(dialer, cfg, logger)
}

func newMailNotifier(sender mailSender, cfg config.MailConfig, logger *zap.Logger) *MailNotifier {
	return &MailNotifier{
		sender:   sender,
		from:     cfg.From,
		shopName: cfg.ShopName,
		logger:   logger,
	}
}

var mailTemplates = template.Must(template.New("complaint_submitted").Parse(`<p>Dear {{.CustomerName}},</p>
<p>We have received your repair request for your {{.LaptopModel}}.</p>
<p>Your complaint ID is <strong>{{.ComplaintID}}</strong>. Use it to track the repair status on our website.</p>
<p>{{.ShopName}}</p>`))

func init() {
	template.Must(mailTemplates.New("complaint_status_changed").Parse(`<p>Dear {{.CustomerName}},</p>
<p>The status of complaint <strong>{{.ComplaintID}}</strong> ({{.LaptopModel}}) is now <strong>{{.Status}}</strong>.</p>
<p>{{.ShopName}}</p>`))
}

// Notify sends a message for submitted and status changed events and ignores the rest
func (n *MailNotifier) Notify(ctx context.Context, event ComplaintEvent) error {
	var subject string
	switch event.Type {
	case EventComplaintSubmitted:
		subject = fmt.Sprintf("Complaint %s received", event.ComplaintID)
	case EventComplaintStatusChanged:
		subject = fmt.Sprintf("Complaint %s is now %s", event.ComplaintID, event.Status)
	default:
		return nil
	}
	if event.Email == "" {
		return nil
	}

	var body bytes.Buffer
	data := struct {
		ComplaintEvent
		ShopName string
	}{event, n.shopName}
	if err := mailTemplates.ExecuteTemplate(&body, string(event.Type), data); err != nil {
		return fmt.Errorf("failed to render %s email: %w", event.Type, err)
	}

	m := mail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", n.shopName, n.from))
	m.SetHeader("To", event.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := n.sender.DialAndSend(m); err != nil {
		n.logger.Error("Failed to send email", zap.Error(err),
			zap.String("to", event.Email),
			zap.String("complaint_id", event.ComplaintID))
		return fmt.Errorf("failed to send email: %w", err)
	}

	n.logger.Info("Email sent successfully",
		zap.String("to", event.Email),
		zap.String("complaint_id", event.ComplaintID),
		zap.String("type", string(event.Type)))
	return nil
}
