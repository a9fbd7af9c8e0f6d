package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PatientContext is the patient information forwarded to the AI service so
// replies can reference the record being discussed.
type PatientContext struct {
	Name         string  `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	DateOfBirth  *string `json:"date_of_birth"`
	MedicalNotes *string `json:"medical_notes"`
}

// Fallback reasons attached to canned replies.
const (
	FallbackReasonDisabled    = "disabled"
	FallbackReasonUnreachable = "unreachable"
)

// Reply distinguishes a delivered assistant response from a canned fallback,
// so callers and tests can tell real from degraded replies.
type Reply struct {
	Text     string
	Fallback bool
	Reason   string
}

// Client produces assistant reply text for a staff message about a patient.
type Client interface {
	Generate(ctx context.Context, message string, patient PatientContext) Reply
}

type HTTPClient struct {
	BaseURL string
	Enabled bool
	Client  *http.Client
}

var _ Client = &HTTPClient{}

func NewHTTPClient(baseURL string, enabled bool, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		Enabled: enabled,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

type generateRequest struct {
	Message        string         `json:"message"`
	PatientContext PatientContext `json:"patient_context"`
}

type generateResponse struct {
	Response string `json:"response"`
	Message  string `json:"message"`
}

// Generate never returns an error: when the integration is disabled or the
// service is unreachable it substitutes a canned reply instead. Availability
// over correctness.
func (c *HTTPClient) Generate(ctx context.Context, message string, patient PatientContext) Reply {
	if !c.Enabled {
		return Reply{
			Text:     disabledReply(patient.Name),
			Fallback: true,
			Reason:   FallbackReasonDisabled,
		}
	}

	text, err := c.generate(ctx, message, patient)
	if err != nil {
		return Reply{
			Text:     unreachableReply(patient.Name),
			Fallback: true,
			Reason:   FallbackReasonUnreachable,
		}
	}
	return Reply{Text: text}
}

func (c *HTTPClient) generate(ctx context.Context, message string, patient PatientContext) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Message:        message,
		PatientContext: patient,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.BaseURL + "/generate"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai service request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai service error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var genResp generateResponse
	if err := json.Unmarshal(bodyBytes, &genResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	switch {
	case genResp.Response != "":
		return genResp.Response, nil
	case genResp.Message != "":
		return genResp.Message, nil
	default:
		return "No response from AI service", nil
	}
}

func disabledReply(patientName string) string {
	return fmt.Sprintf("Hello! Thank you for your inquiry about patient %s. As a dental assistant, I'd be happy to help you with any questions about dental care, appointments, or general information. Please note: For specific medical advice, always consult with a licensed dentist.", patientName)
}

func unreachableReply(patientName string) string {
	return fmt.Sprintf("Thank you for your message regarding %s. As a dental assistant, I'm here to help. However, I'm currently experiencing technical difficulties connecting to our AI service. Please try again in a moment, or contact our support team for immediate assistance.", patientName)
}
