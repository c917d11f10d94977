package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"profmeet/config"
	"profmeet/infras/otel"
	"profmeet/shared/constant"
)

// BookingMessage is the payload for a booking confirmation email pair.
type BookingMessage struct {
	ProfessorEmail string `json:"professorEmail"`
	ProfessorName  string `json:"professorName,omitempty"`
	StudentEmail   string `json:"studentEmail"`
	StudentName    string `json:"studentName,omitempty"`
	MeetingTitle   string `json:"meetingTitle,omitempty"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location,omitempty"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}

// CancellationMessage is the payload for a cancellation email pair.
type CancellationMessage struct {
	ProfessorEmail string `json:"professorEmail"`
	ProfessorName  string `json:"professorName,omitempty"`
	StudentEmail   string `json:"studentEmail"`
	StudentName    string `json:"studentName,omitempty"`
	MeetingTitle   string `json:"meetingTitle,omitempty"`
	StartTime      string `json:"startTime"`
	Reason         string `json:"reason,omitempty"`
}

// Sender delivers notification requests to the notification service.
// Delivery is fire and forget from the caller's point of view; the
// service owns retries and templating.
type Sender interface {
	SendBooking(ctx context.Context, message BookingMessage) error
	SendCancellation(ctx context.Context, message CancellationMessage) error
}

type senderImpl struct {
	client  *http.Client
	baseURL string
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Sender {
	return &senderImpl{
		client:  &http.Client{Timeout: time.Duration(cfg.External.TimeoutSeconds) * time.Second},
		baseURL: cfg.External.Notification.URL,
		otel:    otel,
	}
}

func (s *senderImpl) SendBooking(ctx context.Context, message BookingMessage) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".notification.SendBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.post(ctx, s.baseURL+"/notifications/booking", message)
}

func (s *senderImpl) SendCancellation(ctx context.Context, message CancellationMessage) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".notification.SendCancellation")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.post(ctx, s.baseURL+"/notifications/cancellation", message)
}

func (s *senderImpl) post(ctx context.Context, endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	response, err := s.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call notification service: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service returned status %d", response.StatusCode)
	}

	return nil
}
