package domain

import "time"

// BookDonation represents one donated-book offer submitted through the
// public form.
type BookDonation struct {
	ID          int64
	Name        string
	Email       string
	BookTitle   string
	Description string
	DateAdded   time.Time
}

// VolunteerApplication represents a volunteer sign-up. ResumePath is nil
// when no résumé was stored for the application.
type VolunteerApplication struct {
	ID             int64
	FullName       string
	Email          string
	AreaOfInterest string
	Bio            string
	ResumePath     *string
	DateAdded      time.Time
}

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	DateAdded time.Time
}

// AdminUser is the single reviewer credential row seeded at startup.
type AdminUser struct {
	ID       int64
	Username string
	Password string
}
