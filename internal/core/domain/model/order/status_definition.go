package order

import (
	"errors"
	"fmt"
	"slices"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/pkg/errs"
)

const maxStatusNameLength = 50

var ErrStatusDefinitionIsNotConstructed = errors.New("StatusDefinition must be created via RestoreStatusDefinition")

// StatusDefinition is a row of the order status table: a localized display name
// plus the lifecycle state it stands for.
type StatusDefinition struct {
	id          kernel.ID
	status      Status
	name        string
	description string
	orderIndex  int

	isConstructed bool
}

func RestoreStatusDefinition(
	id kernel.ID,
	status Status,
	name, description string,
	orderIndex int,
) (StatusDefinition, error) {
	def := StatusDefinition{id: id, status: status, description: description, isConstructed: true}

	var idErr, indexErr error
	if id.IsZero() {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if orderIndex < 0 {
		indexErr = errs.NewValueIsOutOfRangeError("order_index", orderIndex, 0, "unbounded")
	}
	def.orderIndex = orderIndex

	n, nameErr := kernel.RequiredText("name", name, maxStatusNameLength)
	def.name = n

	if err := errors.Join(idErr, status.Validate(), nameErr, indexErr); err != nil {
		return StatusDefinition{}, err
	}
	return def, nil
}

func (d StatusDefinition) ID() kernel.ID       { return d.id }
func (d StatusDefinition) Status() Status      { return d.status }
func (d StatusDefinition) Name() string        { return d.name }
func (d StatusDefinition) Description() string { return d.description }
func (d StatusDefinition) OrderIndex() int     { return d.orderIndex }

func (d StatusDefinition) Is(s Status) bool {
	return d.status == s
}

func (d StatusDefinition) Validate() error {
	if !d.isConstructed {
		return ErrStatusDefinitionIsNotConstructed
	}
	return nil
}

// StatusCatalog indexes the configured status rows.
type StatusCatalog struct {
	byID      map[kernel.ID]StatusDefinition
	lifecycle map[Status]StatusDefinition
	ordered   []StatusDefinition
}

// NewStatusCatalog builds a catalog. When several rows share a lifecycle state the
// one with the lowest order index (then id) represents that state.
func NewStatusCatalog(defs []StatusDefinition) StatusCatalog {
	ordered := slices.Clone(defs)
	slices.SortFunc(ordered, func(a, b StatusDefinition) int {
		if a.orderIndex != b.orderIndex {
			return a.orderIndex - b.orderIndex
		}
		return int(a.id - b.id)
	})

	c := StatusCatalog{
		byID:      make(map[kernel.ID]StatusDefinition, len(ordered)),
		lifecycle: make(map[Status]StatusDefinition, len(statusCodes)),
		ordered:   ordered,
	}
	for _, d := range ordered {
		c.byID[d.id] = d
		if _, seen := c.lifecycle[d.status]; !seen {
			c.lifecycle[d.status] = d
		}
	}
	return c
}

// ByID resolves a status reference from a request. An unknown id is a caller error.
func (c StatusCatalog) ByID(id kernel.ID) (StatusDefinition, error) {
	d, ok := c.byID[id]
	if !ok {
		return StatusDefinition{}, errs.NewValueIsInvalidErrorWithCause(
			"status_id",
			fmt.Errorf("status %d does not exist", id),
		)
	}
	return d, nil
}

// Lifecycle returns the row the engine uses for a lifecycle state. A missing row
// is a server misconfiguration.
func (c StatusCatalog) Lifecycle(s Status) (StatusDefinition, error) {
	d, ok := c.lifecycle[s]
	if !ok {
		return StatusDefinition{}, errs.NewMisconfigurationErrorWithCause(
			"order status "+s.Code(),
			errors.New("no status row is mapped to this lifecycle state"),
		)
	}
	return d, nil
}

// All returns the rows ordered for display.
func (c StatusCatalog) All() []StatusDefinition {
	return slices.Clone(c.ordered)
}
