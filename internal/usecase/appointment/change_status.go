package appointment

import (
	"context"
	"time"

	"github.com/NavalhaStudio/barbearia-api/internal/audit"
	domain "github.com/NavalhaStudio/barbearia-api/internal/domain/appointment"
	"github.com/NavalhaStudio/barbearia-api/internal/httperr"
	"github.com/NavalhaStudio/barbearia-api/internal/models"
	"github.com/NavalhaStudio/barbearia-api/internal/timezone"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewChangeStatus(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: auditDisp,
		now:   timezone.Now,
	}
}

// Execute aplica uma transição de status. A legalidade da transição é
// regra de domínio; a autorização do ator é checada aqui por posse:
// admin pode tudo, barbeiro mexe nos próprios atendimentos, cliente
// só cancela os seus.
func (uc *ChangeStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	actorRole string,
	to domain.Status,
) (*models.Appointment, error) {

	if !domain.ValidStatus(to) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	switch actorRole {
	case models.RoleAdmin:
		// sem restrição
	case models.RoleBarber:
		if ap.BarberID != actorID {
			return nil, httperr.ErrBusiness("not_allowed")
		}
	case models.RoleClient:
		if ap.ClientID != actorID || to != domain.StatusCancelled {
			return nil, httperr.ErrBusiness("not_allowed")
		}
	default:
		return nil, httperr.ErrBusiness("not_allowed")
	}

	if err := domain.Transition(ap, to, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &actorID,
			Action:   "appointment_" + string(to),
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return ap, nil
}
