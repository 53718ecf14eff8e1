package entity

import "time"

// Estados derivados de una invitación.
const (
	InviteStatePending = "pending"
	InviteStateUsed    = "used"
	InviteStateExpired = "expired"
)

// InviteTTL vigencia de una invitación desde su emisión.
const InviteTTL = 7 * 24 * time.Hour

// Invite es una invitación para unirse a una Company.
// El token es la única credencial: quien lo tenga puede canjearla.
// Used muta exactamente una vez (false→true) al canjear; una invitación
// expirada queda muerta aunque Used siga en false.
type Invite struct {
	ID        string
	CompanyID string
	InvitedBy string // ID del usuario emisor
	Token     string // 32 bytes aleatorios en hex (64 chars), único
	Role      string // rol que recibirá el usuario al canjear
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Redeemable indica si la invitación sigue viva en el instante dado.
func (i *Invite) Redeemable(now time.Time) bool {
	return !i.Used && now.Before(i.ExpiresAt)
}

// State devuelve el estado derivado: used gana sobre expired.
func (i *Invite) State(now time.Time) string {
	if i.Used {
		return InviteStateUsed
	}
	if !now.Before(i.ExpiresAt) {
		return InviteStateExpired
	}
	return InviteStatePending
}
