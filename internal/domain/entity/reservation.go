package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// Reservation is a guest's booking as persisted in the reservation store.
// The localizer is derived from the record content plus the creation instant,
// so rebuilding the reservation with NewReservation at the stored ReservedAt
// must reproduce the stored localizer. That property is what guest arrival
// uses to detect records edited after creation.
type Reservation struct {
	IDCard      string `json:"id_card"`
	CreditCard  string `json:"credit_card_number"`
	NameSurname string `json:"name_surname"`
	Phone       string `json:"phone_number"`
	RoomType    string `json:"room_type"`
	ArrivalDate string `json:"arrival_date"`
	NumDays     int    `json:"num_days"`
	ReservedAt  int64  `json:"reserved_at"`
	Localizer   string `json:"localizer"`
}

// NewReservation builds a reservation created at the given instant and
// derives its localizer. Fields are assumed to be validated already.
func NewReservation(idCard, creditCard, nameSurname, phone, roomType, arrivalDate string, numDays int, reservedAt time.Time) *Reservation {
	r := &Reservation{
		IDCard:      idCard,
		CreditCard:  creditCard,
		NameSurname: nameSurname,
		Phone:       phone,
		RoomType:    roomType,
		ArrivalDate: arrivalDate,
		NumDays:     numDays,
		ReservedAt:  reservedAt.Unix(),
	}
	r.Localizer = r.deriveLocalizer()
	return r
}

// deriveLocalizer computes the 32 hex digit MD5 digest of the reservation's
// signature string. The "Reservation:" prefix keeps the input domain apart
// from the stay's room key derivation.
func (r *Reservation) deriveLocalizer() string {
	signature := fmt.Sprintf(
		"Reservation:{credit_card:%s,id_card:%s,name:%s,phone:%s,room_type:%s,arrival:%s,num_days:%d,reserved_at:%d}",
		r.CreditCard, r.IDCard, r.NameSurname, r.Phone, r.RoomType, r.ArrivalDate, r.NumDays, r.ReservedAt)
	sum := md5.Sum([]byte(signature))
	return hex.EncodeToString(sum[:])
}
