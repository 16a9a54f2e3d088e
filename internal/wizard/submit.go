package wizard

import (
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/client"
	"github.com/pablotanner/RocketRealtor/internal/domain"
)

// BuildSubmission converts a completed wizard into the create-tenant payload.
// Steps one to three must be complete. A new lease carries the selected unit;
// an existing lease keeps its own unit and the selection is ignored.
func BuildSubmission(s State) (client.CreateTenantInput, error) {
	for step := StepTenantInfo; step <= StepUnit; step++ {
		if s.Status(step) != Complete {
			return client.CreateTenantInput{}, fmt.Errorf("%s incomplete: %w", step.Title(), domain.ErrValidation)
		}
	}

	p, errs := s.Form.parse(s.Location)
	if len(errs) > 0 {
		return client.CreateTenantInput{}, errs
	}

	in := client.CreateTenantInput{Tenant: p.tenant}
	switch s.Form.LeaseOption {
	case LeaseExisting:
		in.LeaseID = p.leaseID
	default:
		lease := p.lease
		lease.UnitID = p.unitID
		in.Lease = &lease
	}
	return in, nil
}
