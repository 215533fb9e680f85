package middleware

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/Miraku17/PowerSystems-sub003/models"
)

func TestCanEditReport(t *testing.T) {
	creatorID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name       string
		user       models.User
		creator    uuid.UUID
		allowed    bool
		wantStatus int
	}{
		{"creator edits own report", models.User{ID: creatorID, Role: models.RoleTechnician}, creatorID, true, 0},
		{"technician cannot edit others", models.User{ID: otherID, Role: models.RoleTechnician}, creatorID, false, http.StatusForbidden},
		{"admin edits anyone's report", models.User{ID: otherID, Role: models.RoleAdmin}, creatorID, true, 0},
		{"supervisor edits anyone's report", models.User{ID: otherID, Role: models.RoleSupervisor}, creatorID, true, 0},
		{"anonymous is rejected", models.User{}, creatorID, false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanEditReport(tt.user, tt.creator)
			if result.Allowed != tt.allowed {
				t.Errorf("Allowed = %v, expected %v", result.Allowed, tt.allowed)
			}
			if !tt.allowed {
				if result.Status != tt.wantStatus {
					t.Errorf("Status = %d, expected %d", result.Status, tt.wantStatus)
				}
				if result.Message == "" {
					t.Error("denied result must carry a message")
				}
			}
		})
	}
}
