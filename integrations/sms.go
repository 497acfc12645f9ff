package integrations

import (
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/glowmedspa/medspa-backend/config"
)

type SMSResult struct {
	SID    string `json:"sid"`
	To     string `json:"to"`
	Body   string `json:"body"`
	Status string `json:"status"`
}

// SMSSender sends messages through Twilio. Without credentials it degrades
// to a canned success payload so the tool path stays exercisable in dev.
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewSMSSender(cfg config.Settings) *SMSSender {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return &SMSSender{}
	}
	return &SMSSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from: cfg.TwilioFromNumber,
	}
}

func (s *SMSSender) Send(to, body string) (SMSResult, error) {
	if s.client == nil {
		return SMSResult{SID: "SM123", To: to, Body: body, Status: "sent"}, nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return SMSResult{}, err
	}

	result := SMSResult{To: to, Body: body}
	if resp.Sid != nil {
		result.SID = *resp.Sid
	}
	if resp.Status != nil {
		result.Status = *resp.Status
	}
	return result, nil
}
