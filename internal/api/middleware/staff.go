package middleware

import (
	"net/http"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
)

const (
	// HeaderRole заголовок переключения режима интерфейса
	// Это переключатель роли, а не аутентификация
	HeaderRole = "X-Role"

	RoleStaff = "staff"

	msgStaffOnly = "Доступно только персоналу"
)

// StaffOnly пропускает запросы только с заголовком X-Role: staff
func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(HeaderRole) != RoleStaff {
			handlers.RespondForbidden(w, msgStaffOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}
