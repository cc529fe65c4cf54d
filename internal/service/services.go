package service

import (
	"time"

	"github.com/deppfellow/vbapi/internal/server"
)

// Clock returns the current instant. Validators only use its calendar date.
type Clock func() time.Time

// Services groups the validators handed to the HTTP layer.
type Services struct {
	Employee *EmployeeValidator
	Staff    *StaffValidator
}

// Option customizes NewServices.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock replaces time.Now as the source of "today".
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewServices builds the validators using the configured validation timezone.
func NewServices(s *server.Server, opts ...Option) (*Services, error) {
	o := &options{clock: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	loc, err := s.Config.Validation.Location()
	if err != nil {
		return nil, err
	}

	return &Services{
		Employee: NewEmployeeValidator(o.clock, loc),
		Staff:    NewStaffValidator(),
	}, nil
}
