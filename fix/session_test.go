package fix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionSequence(t *testing.T) {

	session := NewSession(" CLIENT1 ", "SERVER1")
	assert.Equal(t, "CLIENT1", session.SenderCompID)
	assert.Equal(t, "SERVER1", session.TargetCompID)

	assert.Equal(t, 1, session.Next())
	assert.Equal(t, 2, session.Next())
	assert.Equal(t, 3, session.Next())

	session.Reset()
	assert.Equal(t, 1, session.Next())

}

func TestSessionDefaults(t *testing.T) {

	session := NewSession("CLIENT1", "SERVER1")
	assert.NotEqual(t, "", session.ClOrdID())
	assert.NotEqual(t, session.ClOrdID(), session.ClOrdID())
	assert.False(t, session.Stamp().IsZero())

}

func TestSessionInjection(t *testing.T) {

	stamp := time.Date(2025, time.March, 7, 14, 30, 9, 0, time.UTC)
	session := NewSession("CLIENT1", "SERVER1")
	session.Now = func() time.Time { return stamp }
	session.NewClOrdID = func() string { return "ORD-1" }

	assert.Equal(t, stamp, session.Stamp())
	assert.Equal(t, "ORD-1", session.ClOrdID())

}
