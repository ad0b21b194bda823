package contact

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hydroavia/showcase/internal/logger"
)

// Controller owns the form fields and the submission status.
// It is safe for concurrent use.
type Controller struct {
	sub Submitter
	log *zap.Logger

	mu     sync.Mutex
	form   Form
	status Status
}

// NewController creates an idle controller with empty fields.
func NewController(sub Submitter) *Controller {
	return &Controller{sub: sub, log: logger.Named("contact")}
}

// Set updates one field. Editing is allowed in every state.
func (c *Controller) Set(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Set(field, value)
}

// Form returns a copy of the current fields.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Status returns the current submission status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Banner returns the message for the current status.
func (c *Controller) Banner() string {
	return c.Status().Banner()
}

// Submit validates and sends the current fields. On success the fields are
// cleared; on failure they are kept so the user can retry by hand. There is
// no automatic retry.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	form := c.form
	if err := form.Validate(); err != nil {
		c.status = StatusError
		c.mu.Unlock()
		c.log.Debug("contact form rejected", zap.Error(err))
		return err
	}
	c.status = StatusSubmitting
	c.mu.Unlock()

	err := c.sub.Submit(ctx, form)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusError
		return err
	}
	c.status = StatusSuccess
	c.form = Form{}
	return nil
}
