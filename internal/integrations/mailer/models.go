package mailer

// Message письмо в ящик консьерж-службы
type Message struct {
	Subject   string
	ReplyName string // клиент, ответ уходит ему
	ReplyTo   string
	PlainText string
	HTML      string
}

// Config параметры отправителя и получателя
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
	ToEmail   string // ящик консьерж-службы
	ToName    string
}
