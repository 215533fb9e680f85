package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Miraku17/PowerSystems-sub003/models"
)

// PermissionResult is the outcome of an edit-permission check. When Allowed
// is false, Status and Message carry the ready-to-send error response.
type PermissionResult struct {
	Allowed bool
	Status  int
	Message string
}

// CanEditReport decides whether the acting user may edit a report created by
// creatorID. Creators edit their own reports; admins and supervisors edit
// anyone's.
func CanEditReport(user models.User, creatorID uuid.UUID) PermissionResult {
	if user.ID == uuid.Nil {
		return PermissionResult{Allowed: false, Status: http.StatusUnauthorized, Message: "not authenticated"}
	}
	if user.CanManageReports() || user.ID == creatorID {
		return PermissionResult{Allowed: true}
	}
	return PermissionResult{Allowed: false, Status: http.StatusForbidden, Message: "you do not have permission to edit this report"}
}
