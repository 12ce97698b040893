package middleware

import (
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateLastActiveMiddleware stamps the student's last activity time on
// every authenticated request. Failures are ignored.
func UpdateLastActiveMiddleware(studentService *services.StudentService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetUserFromContext(r.Context())
			if claims != nil {
				studentID, err := primitive.ObjectIDFromHex(claims.UserID)
				if err == nil {
					_ = studentService.UpdateLastActive(r.Context(), studentID)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
