package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Transitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingConfirmed, BookingCheckedIn, true},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingNoShow, true},
		{BookingCheckedIn, BookingCheckedOut, true},
		{BookingCheckedIn, BookingCancelled, false},
		{BookingCheckedOut, BookingCheckedIn, false},
		{BookingCancelled, BookingConfirmed, false},
		{BookingNoShow, BookingCheckedIn, false},
		{BookingCancelled, BookingCancelled, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatus_Active(t *testing.T) {
	assert.True(t, BookingConfirmed.Active())
	assert.True(t, BookingCheckedIn.Active())
	assert.False(t, BookingCheckedOut.Active())
	assert.False(t, BookingCancelled.Active())
	assert.False(t, BookingNoShow.Active())
	assert.False(t, BookingStatus("pending").Valid())
}

func TestRoomStatus_ManualTransitions(t *testing.T) {
	assert.True(t, RoomAvailable.CanTransition(RoomMaintenance))
	assert.True(t, RoomOccupied.CanTransition(RoomMaintenance))
	assert.True(t, RoomMaintenance.CanTransition(RoomAvailable))
	assert.False(t, RoomMaintenance.CanTransition(RoomOccupied))
	assert.False(t, RoomAvailable.CanTransition(RoomOccupied))
}

func TestMessageStatus_Transitions(t *testing.T) {
	assert.True(t, MessageNew.CanTransition(MessageRead))
	assert.True(t, MessageReplied.CanTransition(MessageRead))
	assert.False(t, MessageRead.CanTransition(MessageNew))
	assert.False(t, MessageClosed.CanTransition(MessageRead))
	assert.True(t, MessageClosed.CanTransition(MessageClosed))
}

func TestTicketStatus_Transitions(t *testing.T) {
	assert.True(t, TicketConfirmed.CanTransition(TicketUsed))
	assert.True(t, TicketConfirmed.CanTransition(TicketCancelled))
	assert.False(t, TicketUsed.CanTransition(TicketCancelled))
	assert.False(t, TicketCancelled.CanTransition(TicketConfirmed))
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, PaymentPending, PaymentStatusFor(0, 100))
	assert.Equal(t, PaymentPartial, PaymentStatusFor(40, 100))
	assert.Equal(t, PaymentPaid, PaymentStatusFor(100, 100))
	assert.Equal(t, PaymentPaid, PaymentStatusFor(120, 100))
}

func TestPromotion_IsExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Promotion{}.IsExpired(now), "no end date")
	assert.False(t, Promotion{ValidUntil: now.Add(time.Hour)}.IsExpired(now))
	assert.True(t, Promotion{ValidUntil: now.Add(-time.Hour)}.IsExpired(now))
}
