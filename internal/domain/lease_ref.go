package domain

// LeaseRef says how a new tenant gets its lease: either LeaseConnect or LeaseCreate.
// It is resolved before the store is touched so both branches go through the same
// ownership checks.
type LeaseRef interface {
	leaseRef()
}

// LeaseConnect attaches the tenant to an existing lease
type LeaseConnect struct {
	LeaseID uint
}

// LeaseCreate creates a lease for the tenant inside the same transaction
type LeaseCreate struct {
	Input LeaseInput
}

func (LeaseConnect) leaseRef() {}
func (LeaseCreate) leaseRef()  {}
