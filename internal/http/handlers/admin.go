package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/sqlinline"
)

// Index renders the public landing page.
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	a.render(w, "index.html", map[string]any{})
}

// AdminLoginPage renders the credential form.
func (a *App) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, "admin_login.html", map[string]any{})
}

// AdminLogin checks the submitted credentials against the admin table and
// establishes a signed session cookie. Unknown username and wrong password
// produce the same notice.
func (a *App) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		a.render(w, "admin_login.html", map[string]any{"Error": "Bad request"})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	admin, err := a.authenticateAdmin(r, username, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			a.Logger.Error().Err(err).Msg("admin credential lookup failed")
		}
		w.WriteHeader(http.StatusUnauthorized)
		a.render(w, "admin_login.html", map[string]any{
			"Error":    "Invalid credentials",
			"Username": username,
		})
		return
	}

	token, err := middleware.SignSession(a.Cfg.SecretKey, middleware.SessionClaims{
		Sub:    admin.Username,
		Exp:    time.Now().Add(a.Cfg.SessionTTL).Unix(),
		Issuer: "pageforward",
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign session failed")
		w.WriteHeader(http.StatusInternalServerError)
		a.render(w, "admin_login.html", map[string]any{"Error": "Failed to establish session"})
		return
	}
	middleware.SetSessionCookie(w, token, a.Cfg.SessionTTL)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// authenticateAdmin matches the credential pair against the admin table by
// exact equality. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (a *App) authenticateAdmin(r *http.Request, username, password string) (domain.AdminUser, error) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QSelectAdminByCredentials, username, password)
	var admin domain.AdminUser
	if err := row.Scan(&admin.ID, &admin.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AdminUser{}, domain.ErrInvalidCredentials
		}
		return domain.AdminUser{}, err
	}
	return admin, nil
}

// Logout clears the session cookie and returns to the landing page.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AdminDashboard lists every submission table newest-first for the
// authenticated reviewer.
func (a *App) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	donations, err := a.listBookDonations(r)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load book donations failed")
		http.Error(w, "Failed to load submissions", http.StatusInternalServerError)
		return
	}
	applications, err := a.listVolunteerApplications(r)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load volunteer applications failed")
		http.Error(w, "Failed to load submissions", http.StatusInternalServerError)
		return
	}
	messages, err := a.listContactMessages(r)
	if err != nil {
		a.Logger.Error().Err(err).Msg("load contact messages failed")
		http.Error(w, "Failed to load submissions", http.StatusInternalServerError)
		return
	}

	a.render(w, "admin_dashboard.html", map[string]any{
		"Admin":                 middleware.AdminFromContext(r.Context()),
		"BookDonations":         donations,
		"VolunteerApplications": applications,
		"ContactMessages":       messages,
	})
}

func (a *App) listBookDonations(r *http.Request) ([]domain.BookDonation, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListBookDonations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.BookDonation
	for rows.Next() {
		var d domain.BookDonation
		var description sql.NullString
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.BookTitle, &description, &d.DateAdded); err != nil {
			return nil, err
		}
		d.Description = description.String
		items = append(items, d)
	}
	return items, rows.Err()
}

func (a *App) listVolunteerApplications(r *http.Request) ([]domain.VolunteerApplication, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListVolunteerApplications)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.VolunteerApplication
	for rows.Next() {
		var v domain.VolunteerApplication
		var bio, resumePath sql.NullString
		if err := rows.Scan(&v.ID, &v.FullName, &v.Email, &v.AreaOfInterest, &bio, &resumePath, &v.DateAdded); err != nil {
			return nil, err
		}
		v.Bio = bio.String
		if resumePath.Valid {
			path := resumePath.String
			v.ResumePath = &path
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (a *App) listContactMessages(r *http.Request) ([]domain.ContactMessage, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QListContactMessages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.DateAdded); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
