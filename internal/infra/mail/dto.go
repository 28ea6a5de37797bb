package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

type dealClosedEmailData struct {
	Name      string
	Quote     string
	EventType string
	ClosedAt  string
}
