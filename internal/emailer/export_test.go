package emailer

import "net/smtp"

func (e *SMTPService) SetSendFunc(fn func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) {
	e.send = fn
}
