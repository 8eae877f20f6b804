package email

import (
	"context"
	"fmt"
)

// BookingConfirmation is the data shown in a booking confirmation email.
type BookingConfirmation struct {
	ServiceTitle string
	Category     string
	BookingDate  string
	Price        float64
	Location     string
}

// SendWelcomeEmail greets a user on their first sync.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, name string) error {
	if name == "" {
		name = "there"
	}

	return c.SendEmail(ctx, to,
		"Welcome to HomeHero!",
		TemplateWelcome,
		map[string]string{"UserName": name},
	)
}

// SendBookingConfirmationEmail tells a customer their booking was recorded.
func (c *Client) SendBookingConfirmationEmail(ctx context.Context, to string, b BookingConfirmation) error {
	return c.SendEmail(ctx, to,
		fmt.Sprintf("Your booking for %s is confirmed", b.ServiceTitle),
		TemplateBookingConfirmation,
		BookingConfirmationData(b),
	)
}

// BookingConfirmationData flattens b into template variables.
func BookingConfirmationData(b BookingConfirmation) map[string]string {
	location := b.Location
	if location == "" {
		location = "To be arranged with your provider"
	}

	return map[string]string{
		"ServiceTitle": b.ServiceTitle,
		"Category":     b.Category,
		"BookingDate":  b.BookingDate,
		"Price":        fmt.Sprintf("$%.2f", b.Price),
		"Location":     location,
	}
}
