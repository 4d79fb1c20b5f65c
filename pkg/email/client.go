package email

import (
	"time"

	"gopkg.in/mail.v2"
)

// Client sends email over SMTP. It implements the delivery worker's transport
// contract; any returned error is treated as transient by the worker's retry
// accounting.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	timeout  time.Duration
}

func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		timeout:  timeout,
	}
}

// Send delivers one message. The dial/send timeout is bounded so a hung SMTP
// server cannot stall the worker's tick indefinitely.
func (c *Client) Send(to, subject, body string) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)
	dialer.Timeout = c.timeout

	return dialer.DialAndSend(message)
}
