package model

import "time"

// PushSubscription holds the information for a browser push subscription.
// Every subscriber is notified whenever any spot becomes available; the lot
// is small enough that per-spot subscriptions are not worth the mapping table.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
