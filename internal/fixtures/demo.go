package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/kimce-studio/workday-backend-go/internal/domain/collaborator"
	"github.com/kimce-studio/workday-backend-go/internal/domain/request"
	"github.com/kimce-studio/workday-backend-go/internal/domain/review"
	"github.com/kimce-studio/workday-backend-go/internal/domain/timesheet"
	"golang.org/x/crypto/bcrypt"
)

// Services bundles the application services the demo seed drives. Seeding
// goes through the services, not the repositories, so the seeded state is
// exactly what the real flows would have produced.
type Services struct {
	Collaborators collaborator.CollaboratorRepository
	Attendance    timesheet.AttendanceService
	Requests      request.RequestService
	Approvals     review.ApprovalService
}

// Seed loads two collaborators, a full worked day for each, and an approved
// vacation and overtime request. Returns the seeded collaborators.
func Seed(ctx context.Context, svc Services) ([]collaborator.Collaborator, error) {
	ana, err := seedCollaborator(ctx, svc, "Ana López", "ana@example.com", "demo1234", true)
	if err != nil {
		return nil, err
	}
	luis, err := seedCollaborator(ctx, svc, "Luis García", "luis@example.com", "demo1234", false)
	if err != nil {
		return nil, err
	}

	// A complete shift for each: 09:00 in, lunch 13:00-14:00, out at 18:00.
	today := time.Now()
	for _, c := range []collaborator.Collaborator{ana, luis} {
		if err := seedShift(ctx, svc, c.ID, today); err != nil {
			return nil, fmt.Errorf("failed to seed shift for %s: %w", c.FullName, err)
		}
	}

	if _, err := svc.Requests.Create(ctx, ana.ID, request.CreateRequestRequest{
		Type: string(request.TypeVacation),
		Payload: map[string]string{
			"inicio": today.Format(time.RFC3339),
			"fin":    today.AddDate(0, 0, 3).Format(time.RFC3339),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to seed vacation request: %w", err)
	}

	if _, err := svc.Requests.Create(ctx, luis.ID, request.CreateRequestRequest{
		Type: string(request.TypeOvertime),
		Payload: map[string]string{
			"horas":  "2",
			"motivo": "Evento",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to seed overtime request: %w", err)
	}

	pending, err := svc.Approvals.PendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range pending {
		if _, err := svc.Approvals.Review(ctx, request.ReviewRequest{
			RequestID: p.ID,
			Action:    request.ActionApprove,
			Reviewer:  "RRHH",
		}); err != nil {
			return nil, fmt.Errorf("failed to approve request %s: %w", p.ID, err)
		}
	}

	return []collaborator.Collaborator{ana, luis}, nil
}

func seedCollaborator(ctx context.Context, svc Services, fullName, email, password string, isAdmin bool) (collaborator.Collaborator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return collaborator.Collaborator{}, err
	}

	c, err := svc.Collaborators.Create(ctx, collaborator.Collaborator{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		Schedule:     collaborator.DefaultWeeklySchedule(),
	})
	if err != nil {
		return collaborator.Collaborator{}, fmt.Errorf("failed to create %s: %w", fullName, err)
	}
	return c, nil
}

func seedShift(ctx context.Context, svc Services, collaboratorID string, day time.Time) error {
	at := func(hour int) string {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()).Format(time.RFC3339)
	}

	if _, err := svc.Attendance.CheckIn(ctx, collaboratorID, timesheet.MarkRequest{Timestamp: at(9)}); err != nil {
		return err
	}
	if _, err := svc.Attendance.StartBreak(ctx, collaboratorID, timesheet.MarkRequest{Timestamp: at(13)}); err != nil {
		return err
	}
	if _, err := svc.Attendance.EndBreak(ctx, collaboratorID, timesheet.MarkRequest{Timestamp: at(14)}); err != nil {
		return err
	}
	if _, err := svc.Attendance.CheckOut(ctx, collaboratorID, timesheet.MarkRequest{Timestamp: at(18)}); err != nil {
		return err
	}
	return nil
}
