package usecase

import (
	"context"
	"fmt"
	"time"

	"hotelier-service/internal/domain/entity"
	"hotelier-service/internal/domain/repository"
	"hotelier-service/pkg/logger"
	"hotelier-service/pkg/metrics"
	"hotelier-service/pkg/validate"
)

// Operation names, used for metrics labels and the audit trail.
const (
	opReserve  = "reserve"
	opCheckin  = "checkin"
	opCheckout = "checkout"
)

const arrivalDateLayout = "02/01/2006"

// CreateReservationRequest carries the guest supplied fields of a new
// reservation. NumDays stays a string until validated: a non-numeric value
// is a format error, not a transport concern.
type CreateReservationRequest struct {
	IDCard      string
	CreditCard  string
	NameSurname string
	Phone       string
	RoomType    string
	ArrivalDate string
	NumDays     string
}

// LifecycleManager drives a reservation through its three stages:
// reservation, guest arrival, guest checkout. No backward transitions and
// no cancellation path; every stage only appends to its own store, and a
// store is written only after all checks for the operation have passed.
type LifecycleManager struct {
	reservations repository.ReservationRepository
	stays        repository.StayRepository
	checkouts    repository.CheckoutRepository
	audit        repository.AuditRepository
	verifier     *IntegrityVerifier
	metrics      *metrics.Metrics
	logger       logger.Logger
	now          func() time.Time
}

// NewLifecycleManager creates a new lifecycle manager. audit may be nil to
// disable the audit trail.
func NewLifecycleManager(
	reservations repository.ReservationRepository,
	stays repository.StayRepository,
	checkouts repository.CheckoutRepository,
	audit repository.AuditRepository,
	m *metrics.Metrics,
	log logger.Logger,
) *LifecycleManager {
	return &LifecycleManager{
		reservations: reservations,
		stays:        stays,
		checkouts:    checkouts,
		audit:        audit,
		verifier:     NewIntegrityVerifier(),
		metrics:      m,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock replaces the manager's clock. Date gating compares calendar
// days against this clock; tests pin it.
func (m *LifecycleManager) WithClock(now func() time.Time) *LifecycleManager {
	m.now = now
	return m
}

// CreateReservation validates the request, derives the localizer and
// appends the reservation to its store. Returns the localizer.
func (m *LifecycleManager) CreateReservation(ctx context.Context, req CreateReservationRequest) (string, error) {
	if err := validate.IDCard(req.IDCard); err != nil {
		return "", m.fail(ctx, opReserve, req.IDCard, err)
	}
	if err := validate.RoomType(req.RoomType); err != nil {
		return "", m.fail(ctx, opReserve, req.IDCard, err)
	}
	if err := validate.NameSurname(req.NameSurname); err != nil {
		return "", m.fail(ctx, opReserve, req.IDCard, err)
	}
	if err := validate.CardNumber(req.CreditCard); err != nil {
		return "", m.fail(ctx, opReserve, req.IDCard, err)
	}
	if err := validate.ArrivalDate(req.ArrivalDate); err != nil {
		return "", m.fail(ctx, opReserve, req.IDCard, err)
	}
	days, err := validate.NumDays(req.NumDays)
	if err != nil {
		return "", m.fail(ctx, opReserve, req.IDCard, err)
	}
	if err := validate.Phone(req.Phone); err != nil {
		return "", m.fail(ctx, opReserve, req.IDCard, err)
	}

	reservation := entity.NewReservation(
		req.IDCard,
		req.CreditCard,
		req.NameSurname,
		req.Phone,
		req.RoomType,
		req.ArrivalDate,
		days,
		m.now(),
	)
	if err := m.reservations.Append(ctx, reservation); err != nil {
		return "", m.fail(ctx, opReserve, reservation.Localizer, err)
	}

	m.metrics.ReservationsCreated.Inc()
	m.recordAudit(ctx, opReserve, reservation.Localizer, entity.AuditOK, "")
	m.logger.Info("reservation created",
		"localizer", reservation.Localizer,
		"idCard", reservation.IDCard,
		"arrivalDate", reservation.ArrivalDate)
	return reservation.Localizer, nil
}

// GuestArrival checks a guest in against an existing reservation: the
// localizer must exist, belong to the supplied id card, pass integrity
// verification, and its arrival date must be today. Returns the room key of
// the new stay.
func (m *LifecycleManager) GuestArrival(ctx context.Context, localizer, idCard string) (string, error) {
	if err := validate.IDCard(idCard); err != nil {
		return "", m.fail(ctx, opCheckin, localizer, err)
	}
	if err := validate.Localizer(localizer); err != nil {
		return "", m.fail(ctx, opCheckin, localizer, err)
	}

	reservation, err := m.reservations.FindByLocalizer(ctx, localizer)
	if err != nil {
		return "", m.fail(ctx, opCheckin, localizer, err)
	}
	if reservation.IDCard != idCard {
		return "", m.fail(ctx, opCheckin, localizer,
			fmt.Errorf("localizer does not correspond to this id card: %w", entity.ErrOwnership))
	}
	if err := m.verifier.Verify(reservation); err != nil {
		return "", m.fail(ctx, opCheckin, localizer, err)
	}

	arrival, err := time.Parse(arrivalDateLayout, reservation.ArrivalDate)
	if err != nil {
		return "", m.fail(ctx, opCheckin, localizer,
			fmt.Errorf("invalid date format: %w", entity.ErrFormat))
	}
	if !sameCalendarDay(arrival, m.now().UTC()) {
		return "", m.fail(ctx, opCheckin, localizer,
			fmt.Errorf("today is not the arrival date: %w", entity.ErrDateMismatch))
	}

	stay := entity.NewStay(idCard, localizer, reservation.NumDays, reservation.RoomType, m.now())
	if err := m.stays.Append(ctx, stay); err != nil {
		return "", m.fail(ctx, opCheckin, stay.RoomKey, err)
	}

	m.metrics.Checkins.Inc()
	m.recordAudit(ctx, opCheckin, stay.RoomKey, entity.AuditOK, "")
	m.logger.Info("guest checked in",
		"localizer", localizer,
		"roomKey", stay.RoomKey,
		"numDays", stay.NumDays)
	return stay.RoomKey, nil
}

// GuestCheckout checks a guest out: the room key must identify a stay whose
// departure date is today, and the room key must not have checked out
// before.
func (m *LifecycleManager) GuestCheckout(ctx context.Context, roomKey string) error {
	if err := validate.RoomKey(roomKey); err != nil {
		return m.fail(ctx, opCheckout, roomKey, err)
	}

	stay, err := m.stays.FindByRoomKey(ctx, roomKey)
	if err != nil {
		return m.fail(ctx, opCheckout, roomKey, err)
	}
	if !sameCalendarDay(time.Unix(stay.DepartsAt, 0).UTC(), m.now().UTC()) {
		return m.fail(ctx, opCheckout, roomKey,
			fmt.Errorf("today is not the departure day: %w", entity.ErrDateMismatch))
	}

	checkout := &entity.Checkout{
		RoomKey:      roomKey,
		CheckedOutAt: m.now().Unix(),
	}
	if err := m.checkouts.Append(ctx, checkout); err != nil {
		return m.fail(ctx, opCheckout, roomKey, err)
	}

	m.metrics.Checkouts.Inc()
	m.recordAudit(ctx, opCheckout, roomKey, entity.AuditOK, "")
	m.logger.Info("guest checked out", "roomKey", roomKey)
	return nil
}

// fail counts, audits and logs an operation failure, then hands the error
// back unchanged.
func (m *LifecycleManager) fail(ctx context.Context, operation, key string, err error) error {
	m.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	m.recordAudit(ctx, operation, key, entity.AuditFailed, err.Error())
	m.logger.Warn("operation rejected",
		"operation", operation,
		"key", key,
		"error", err)
	return err
}

// recordAudit appends to the audit trail. Best effort: a failed audit write
// is logged and never fails the operation.
func (m *LifecycleManager) recordAudit(ctx context.Context, operation, key, outcome, detail string) {
	if m.audit == nil {
		return
	}
	entry := &entity.AuditEntry{
		Operation: operation,
		Key:       key,
		Outcome:   outcome,
		Detail:    detail,
		CreatedAt: m.now(),
	}
	if err := m.audit.Record(ctx, entry); err != nil {
		m.logger.Error("failed to record audit entry", "operation", operation, "error", err)
	}
}

// sameCalendarDay compares two instants by calendar date, ignoring the time
// of day.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
