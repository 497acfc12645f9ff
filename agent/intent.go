package agent

import (
	"fmt"
	"strings"

	"github.com/glowmedspa/medspa-backend/integrations"
)

// ToolFunc executes one registered tool with free-form parameters.
type ToolFunc func(params map[string]any) (any, error)

// Toolbox routes tool invocations to the integration layer.
type Toolbox struct {
	tools map[string]ToolFunc
}

func NewToolbox(sms *integrations.SMSSender) *Toolbox {
	return &Toolbox{tools: map[string]ToolFunc{
		"search_availability": func(params map[string]any) (any, error) {
			return integrations.SearchAvailability(uintParam(params, "staff_id")), nil
		},
		"create_appointment": func(params map[string]any) (any, error) {
			return integrations.BookAppointment(
				uintParam(params, "client_id"),
				uintParam(params, "service_id"),
				uintParam(params, "staff_id"),
			), nil
		},
		"send_message": func(params map[string]any) (any, error) {
			to, _ := params["to"].(string)
			body, _ := params["body"].(string)
			return sms.Send(to, body)
		},
		"create_payment": func(params map[string]any) (any, error) {
			currency, _ := params["currency"].(string)
			return integrations.CreatePaymentIntent(intParam(params, "amount_cents"), currency), nil
		},
	}}
}

// Call dispatches to a registered tool by name.
func (t *Toolbox) Call(name string, params map[string]any) (any, error) {
	tool, ok := t.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool '%s' not found", name)
	}
	return tool(params)
}

// ParseIntent is a very small heuristic to infer intent.
func ParseIntent(messageText string) string {
	text := strings.ToLower(messageText)
	if strings.Contains(text, "availability") || strings.Contains(text, "time") {
		return "check_availability"
	}
	if strings.Contains(text, "book") || strings.Contains(text, "schedule") {
		return "create_appointment"
	}
	if strings.Contains(text, "pay") || strings.Contains(text, "card") {
		return "collect_payment"
	}
	return "general_inquiry"
}

func uintParam(params map[string]any, key string) uint {
	switch v := params[key].(type) {
	case float64:
		return uint(v)
	case int:
		return uint(v)
	case uint:
		return v
	default:
		return 0
	}
}

func intParam(params map[string]any, key string) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
