package handlers

import (
	"errors"
	"io"
	"net/http"

	"server/internal/sqlinline"
)

const (
	msgMissingFields = "Please fill in all required fields."
	maxResumeBytes   = 10 << 20
)

// DonateBook records a book-donation offer submitted from the public form.
func (a *App) DonateBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.result(w, http.StatusBadRequest, "error", "Invalid form submission.")
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	bookTitle := r.PostFormValue("book_title")
	description := r.PostFormValue("description")

	if name == "" || email == "" || bookTitle == "" {
		a.result(w, http.StatusOK, "error", msgMissingFields)
		return
	}

	if _, err := a.SQL.Exec(r.Context(), sqlinline.QInsertBookDonation, name, email, bookTitle, description); err != nil {
		a.Logger.Error().Err(err).Msg("insert book donation failed")
		a.result(w, http.StatusInternalServerError, "error", "Failed to record donation. Please try again.")
		return
	}
	a.result(w, http.StatusOK, "success", "Book donation recorded successfully!")
}

// ApplyVolunteer records a volunteer application with an optional résumé.
// Résumés outside the accepted types are skipped without failing the
// application; the record is stored with no resume_path.
func (a *App) ApplyVolunteer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		a.result(w, http.StatusBadRequest, "error", "Invalid form submission.")
		return
	}
	fullName := r.PostFormValue("full_name")
	email := r.PostFormValue("email")
	areaOfInterest := r.PostFormValue("area_of_interest")
	bio := r.PostFormValue("bio")

	if fullName == "" || email == "" || areaOfInterest == "" {
		a.result(w, http.StatusOK, "error", msgMissingFields)
		return
	}

	var resumePath *string
	file, header, err := r.FormFile("resume")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		a.result(w, http.StatusBadRequest, "error", "Invalid form submission.")
		return
	default:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			a.result(w, http.StatusBadRequest, "error", "Invalid form submission.")
			return
		}
		path, attached, err := a.Resumes.Save(r.Context(), fullName, header.Filename, data)
		if err != nil {
			a.Logger.Error().Err(err).Msg("store resume failed")
			a.result(w, http.StatusInternalServerError, "error", "Failed to store resume. Please try again.")
			return
		}
		if attached {
			resumePath = &path
		} else {
			a.Logger.Debug().Msgf("resume %q skipped: extension not accepted", header.Filename)
		}
	}

	if _, err := a.SQL.Exec(r.Context(), sqlinline.QInsertVolunteerApplication, fullName, email, areaOfInterest, bio, resumePath); err != nil {
		a.Logger.Error().Err(err).Msg("insert volunteer application failed")
		a.result(w, http.StatusInternalServerError, "error", "Failed to record application. Please try again.")
		return
	}
	a.result(w, http.StatusOK, "success", "Application submitted successfully!")
}

// Contact records a contact-form message.
func (a *App) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.result(w, http.StatusBadRequest, "error", "Invalid form submission.")
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	message := r.PostFormValue("message")

	if name == "" || email == "" || message == "" {
		a.result(w, http.StatusOK, "error", msgMissingFields)
		return
	}

	if _, err := a.SQL.Exec(r.Context(), sqlinline.QInsertContactMessage, name, email, message); err != nil {
		a.Logger.Error().Err(err).Msg("insert contact message failed")
		a.result(w, http.StatusInternalServerError, "error", "Failed to send message. Please try again.")
		return
	}
	a.result(w, http.StatusOK, "success", "Message sent successfully!")
}
