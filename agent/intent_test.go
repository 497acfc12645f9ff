package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowmedspa/medspa-backend/config"
	"github.com/glowmedspa/medspa-backend/integrations"
)

func TestParseIntentRoutesMessages(t *testing.T) {
	assert.Equal(t, "check_availability", ParseIntent("What times are available?"))
	assert.Equal(t, "create_appointment", ParseIntent("Can we book it?"))
	assert.Equal(t, "collect_payment", ParseIntent("How do I pay?"))
	assert.Equal(t, "general_inquiry", ParseIntent("Hello!"))
}

func TestToolboxDispatch(t *testing.T) {
	tb := NewToolbox(integrations.NewSMSSender(config.Settings{}))

	result, err := tb.Call("send_message", map[string]any{"to": "+15551234567", "body": "Hello"})
	require.NoError(t, err)
	sms := result.(integrations.SMSResult)
	assert.Equal(t, "sent", sms.Status)
	assert.Equal(t, "+15551234567", sms.To)

	result, err = tb.Call("create_appointment", map[string]any{
		"client_id":  float64(1),
		"service_id": float64(2),
		"staff_id":   float64(3),
	})
	require.NoError(t, err)
	appointment := result.(map[string]any)
	assert.Equal(t, uint(2), appointment["service_id"])

	result, err = tb.Call("search_availability", map[string]any{})
	require.NoError(t, err)
	slots := result.([]integrations.Slot)
	require.Len(t, slots, 3)
	assert.Equal(t, uint(1), slots[0].StaffID)

	result, err = tb.Call("create_payment", map[string]any{"amount_cents": float64(2500)})
	require.NoError(t, err)
	intent := result.(integrations.PaymentIntent)
	assert.Equal(t, "pi_test_123", intent.ID)
	assert.Equal(t, "usd", intent.Currency)
	assert.Equal(t, "requires_confirmation", intent.Status)
}

func TestToolboxUnknownTool(t *testing.T) {
	tb := NewToolbox(integrations.NewSMSSender(config.Settings{}))
	_, err := tb.Call("launch_rocket", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
