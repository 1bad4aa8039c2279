package guest

import (
	"errors"
	"time"
)

var ErrEmptyName = errors.New("guest name cannot be empty")

type VIPLevel string

const (
	VIPNormal   VIPLevel = "normal"
	VIPSilver   VIPLevel = "silver"
	VIPGold     VIPLevel = "gold"
	VIPPlatinum VIPLevel = "platinum"
)

func (v VIPLevel) IsValid() bool {
	switch v {
	case VIPNormal, VIPSilver, VIPGold, VIPPlatinum:
		return true
	default:
		return false
	}
}

// Guest is the registry's identity record. It is created at registration,
// outside the check-in/check-out core, and is read-only here. IDNumber holds
// the masked document number, never the full one.
type Guest struct {
	id           string
	name         string
	phone        string
	idNumber     string
	vipLevel     VIPLevel
	registeredAt time.Time
}

func Reconstruct(id, name, phone, idNumber string, vipLevel VIPLevel, registeredAt time.Time) (*Guest, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !vipLevel.IsValid() {
		vipLevel = VIPNormal
	}
	return &Guest{
		id:           id,
		name:         name,
		phone:        phone,
		idNumber:     idNumber,
		vipLevel:     vipLevel,
		registeredAt: registeredAt,
	}, nil
}

func (g *Guest) ID() string              { return g.id }
func (g *Guest) Name() string            { return g.name }
func (g *Guest) Phone() string           { return g.phone }
func (g *Guest) IDNumber() string        { return g.idNumber }
func (g *Guest) VIPLevel() VIPLevel      { return g.vipLevel }
func (g *Guest) RegisteredAt() time.Time { return g.registeredAt }
