package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Stay records a completed check-in. Departure is fixed at creation time as
// the arrival instant plus the reserved number of days.
type Stay struct {
	IDCard    string `json:"id_card"`
	Localizer string `json:"localizer"`
	NumDays   int    `json:"num_days"`
	RoomType  string `json:"room_type"`
	ArrivedAt int64  `json:"arrived_at"`
	DepartsAt int64  `json:"departs_at"`
	RoomKey   string `json:"room_key"`
}

// NewStay builds a stay for an arrival at the given instant and derives its
// room key.
func NewStay(idCard, localizer string, numDays int, roomType string, arrivedAt time.Time) *Stay {
	s := &Stay{
		IDCard:    idCard,
		Localizer: localizer,
		NumDays:   numDays,
		RoomType:  roomType,
		ArrivedAt: arrivedAt.Unix(),
		DepartsAt: arrivedAt.Add(time.Duration(numDays) * 24 * time.Hour).Unix(),
	}
	s.RoomKey = s.deriveRoomKey()
	return s
}

// deriveRoomKey computes the 64 hex digit SHA-256 digest of the stay's
// signature string. The alg/typ framing keeps the input domain apart from
// the reservation's localizer derivation.
func (s *Stay) deriveRoomKey() string {
	signature := fmt.Sprintf("{alg:SHA-256,typ:%s,localizer:%s,arrival:%d,departure:%d}",
		s.RoomType, s.Localizer, s.ArrivedAt, s.DepartsAt)
	sum := sha256.Sum256([]byte(signature))
	return hex.EncodeToString(sum[:])
}
