package entity

// Checkout records a guest leaving; one per room key.
type Checkout struct {
	RoomKey      string `json:"room_key"`
	CheckedOutAt int64  `json:"checkout_time"`
}
