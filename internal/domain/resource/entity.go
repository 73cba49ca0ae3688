package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a shared, indivisible asset such as a vehicle.
type Resource struct {
	id        uuid.UUID
	name      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewResource(id uuid.UUID, name string) (*Resource, error) {
	if err := validateResourceName(name); err != nil {
		return nil, err
	}

	return &Resource{
		id:       id,
		name:     strings.TrimSpace(name),
		isActive: true,
	}, nil
}

func ReconstructResource(id uuid.UUID, name string, isActive bool, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:        id,
		name:      name,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) IsActive() bool       { return r.isActive }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
