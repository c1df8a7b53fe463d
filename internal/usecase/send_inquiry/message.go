package send_inquiry

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ConciergeBooking/internal/integrations/mailer"
)

type detail struct {
	label string
	value string
}

// details непустые поля запроса в порядке вывода
func details(req *Request) []detail {
	list := []detail{
		{"Service", req.ServiceName},
		{"Service type", req.ServiceType},
		{"Name", req.CustomerName},
		{"Email", req.CustomerEmail},
		{"Phone", req.CustomerPhone},
	}

	optional := []struct {
		label string
		value *string
	}{
		{"Date", req.TourDate},
		{"Time", req.TimeSlot},
		{"Location", req.Location},
	}
	for _, o := range optional {
		if o.value != nil {
			list = append(list, detail{o.label, *o.value})
		}
	}

	counts := []struct {
		label string
		value *int
	}{
		{"Adults", req.AdultCount},
		{"Children", req.ChildCount},
		{"Total guests", req.TotalGuests},
	}
	for _, c := range counts {
		if c.value != nil {
			list = append(list, detail{c.label, strconv.Itoa(*c.value)})
		}
	}

	if req.TotalPrice != nil {
		list = append(list, detail{"Estimated total", fmt.Sprintf("$%.2f", *req.TotalPrice)})
	}
	if req.Message != nil {
		list = append(list, detail{"Message", *req.Message})
	}
	if req.SpecialRequests != nil {
		list = append(list, detail{"Special requests", *req.SpecialRequests})
	}

	filtered := list[:0]
	for _, d := range list {
		if strings.TrimSpace(d.value) != "" {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// buildMessage письмо консьержу; все пользовательские значения экранируются в HTML
func buildMessage(req *Request) mailer.Message {
	subject := "New inquiry"
	if req.ServiceName != "" {
		subject += ": " + req.ServiceName
	}

	var plain, body strings.Builder
	body.WriteString("<h2>" + html.EscapeString(subject) + "</h2>\n<table>\n")
	for _, d := range details(req) {
		fmt.Fprintf(&plain, "%s: %s\n", d.label, d.value)
		fmt.Fprintf(&body, "<tr><th align=\"left\">%s</th><td>%s</td></tr>\n",
			html.EscapeString(d.label), html.EscapeString(d.value))
	}
	body.WriteString("</table>\n")

	return mailer.Message{
		Subject:   subject,
		ReplyName: req.CustomerName,
		ReplyTo:   req.CustomerEmail,
		PlainText: plain.String(),
		HTML:      body.String(),
	}
}
