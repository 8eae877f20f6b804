package email

// PreviewData contains sample template data for local preview and tests,
// keyed by template name then template variable.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Jamie",
	},
	TemplateBookingConfirmation: BookingConfirmationData(BookingConfirmation{
		ServiceTitle: "Deep Clean",
		Category:     "Cleaning",
		BookingDate:  "2026-03-14T10:00",
		Price:        25,
		Location:     "Dhaka",
	}),
}
