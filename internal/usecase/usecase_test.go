package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-landing-mailer/config"
	"go-landing-mailer/internal/domain"
	"go-landing-mailer/internal/usecase"
	"go-landing-mailer/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg domain.RenderedMessage) bool {
	return m.Called(ctx, msg).Bool(0)
}

type MockSystemMetrics struct {
	mock.Mock
}

func (m *MockSystemMetrics) Snapshot(ctx context.Context) (domain.SystemSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SystemSnapshot), args.Error(1)
}

func (m *MockSystemMetrics) Platform(ctx context.Context) domain.PlatformInfo {
	return m.Called(ctx).Get(0).(domain.PlatformInfo)
}

func appointment() domain.NotificationRequest {
	return domain.NotificationRequest{
		Kind:        domain.KindAppointment,
		Name:        "Ana",
		Phone:       "555-1234",
		Email:       "ana@x.com",
		Day:         "2024-01-10",
		Hour:        "10:00",
		Description: "leak",
	}
}

func contactMessage() domain.NotificationRequest {
	return domain.NotificationRequest{
		Kind:        domain.KindMessage,
		Name:        "Bob",
		Phone:       "555",
		Email:       "b@x.com",
		Description: "noise",
	}
}

func TestComposeAppointment(t *testing.T) {
	msg, err := usecase.Compose(domain.KindAppointment, appointment())
	require.NoError(t, err)

	assert.Equal(t, "Agenda cliente Ana", msg.Subject)
	for _, want := range []string{"Ana", "555-1234", "ana@x.com", "2024-01-10", "10:00", "leak"} {
		assert.Contains(t, msg.Body, want)
	}
	assert.Equal(t,
		"El usuario Ana con teléfono 555-1234 y su email ana@x.com\n"+
			"Realizó una cita el día 2024-01-10 en la hora 10:00 por el siguiente problema: leak",
		msg.Body)
}

func TestComposeContactMessage(t *testing.T) {
	msg, err := usecase.Compose(domain.KindMessage, contactMessage())
	require.NoError(t, err)

	assert.Equal(t, "Notificación cliente", msg.Subject)
	for _, want := range []string{"Bob", "555", "b@x.com", "noise"} {
		assert.Contains(t, msg.Body, want)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	first, err := usecase.Compose(domain.KindAppointment, appointment())
	require.NoError(t, err)
	second, err := usecase.Compose(domain.KindAppointment, appointment())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComposeTrimsInput(t *testing.T) {
	req := contactMessage()
	req.Name = "  Bob  "

	msg, err := usecase.Compose(domain.KindMessage, req)
	require.NoError(t, err)
	assert.Contains(t, msg.Body, "El usuario Bob con")
}

func TestComposeDoesNotRequireScheduleForMessages(t *testing.T) {
	req := contactMessage()
	req.Day = ""
	req.Hour = ""

	_, err := usecase.Compose(domain.KindMessage, req)
	assert.NoError(t, err)
}

func TestComposeRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.NotificationKind
		field string
		clear func(*domain.NotificationRequest)
	}{
		{"appointment without name", domain.KindAppointment, "Name", func(r *domain.NotificationRequest) { r.Name = "" }},
		{"appointment without phone", domain.KindAppointment, "Phone", func(r *domain.NotificationRequest) { r.Phone = "" }},
		{"appointment without email", domain.KindAppointment, "Email", func(r *domain.NotificationRequest) { r.Email = "" }},
		{"appointment without description", domain.KindAppointment, "Description", func(r *domain.NotificationRequest) { r.Description = "" }},
		{"appointment without day", domain.KindAppointment, "Day", func(r *domain.NotificationRequest) { r.Day = "" }},
		{"appointment without hour", domain.KindAppointment, "Hour", func(r *domain.NotificationRequest) { r.Hour = "" }},
		{"appointment with blank hour", domain.KindAppointment, "Hour", func(r *domain.NotificationRequest) { r.Hour = "   " }},
		{"message without name", domain.KindMessage, "Name", func(r *domain.NotificationRequest) { r.Name = "" }},
		{"message without phone", domain.KindMessage, "Phone", func(r *domain.NotificationRequest) { r.Phone = "" }},
		{"message without email", domain.KindMessage, "Email", func(r *domain.NotificationRequest) { r.Email = "" }},
		{"message with blank description", domain.KindMessage, "Description", func(r *domain.NotificationRequest) { r.Description = "\t " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := appointment()
			if tt.kind == domain.KindMessage {
				req = contactMessage()
			}
			tt.clear(&req)

			msg, err := usecase.Compose(tt.kind, req)
			require.Error(t, err)
			assert.Empty(t, msg.Subject)
			assert.Empty(t, msg.Body)

			var vErr *usecase.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, []string{tt.field}, vErr.Fields)
		})
	}
}

func TestComposeRejectsUnknownKind(t *testing.T) {
	_, err := usecase.Compose(domain.NotificationKind("newsletter"), contactMessage())
	assert.Error(t, err)
}

func TestSubmitSendsComposedMessage(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecase.NewNotificationUsecase(nil, mailer, logger.Discard())

	expected := domain.RenderedMessage{
		Subject: "Agenda cliente Ana",
		Body: "El usuario Ana con teléfono 555-1234 y su email ana@x.com\n" +
			"Realizó una cita el día 2024-01-10 en la hora 10:00 por el siguiente problema: leak",
	}
	mailer.On("Send", mock.Anything, expected).Return(true).Once()

	req := appointment()
	outcome := uc.Submit(context.Background(), &req)

	assert.Equal(t, domain.OutcomeSent, outcome)
	mailer.AssertExpectations(t)
}

func TestSubmitReportsTransportFailure(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecase.NewNotificationUsecase(nil, mailer, logger.Discard())
	mailer.On("Send", mock.Anything, mock.AnythingOfType("domain.RenderedMessage")).Return(false).Once()

	req := contactMessage()
	outcome := uc.Submit(context.Background(), &req)

	assert.Equal(t, domain.OutcomeFailed, outcome)
	mailer.AssertExpectations(t)
}

func TestSubmitNeverSendsInvalidRequests(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecase.NewNotificationUsecase(nil, mailer, logger.Discard())

	req := appointment()
	req.Email = ""
	outcome := uc.Submit(context.Background(), &req)

	assert.Equal(t, domain.OutcomeInvalid, outcome)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func healthConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "landing-mailer",
			Version:     "1.2.3",
			Environment: "test",
		},
		Health: config.HealthConfig{
			CPUThreshold:    90,
			MemoryThreshold: 90,
		},
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   domain.SystemSnapshot
		err        error
		wantStatus domain.HealthStatus
		wantSystem bool
	}{
		{
			name:       "nominal usage is healthy",
			snapshot:   domain.SystemSnapshot{CPUPercent: 12, MemoryPercent: 40, DiskPercent: 55},
			wantStatus: domain.StatusHealthy,
			wantSystem: true,
		},
		{
			name:       "usage at the threshold is still healthy",
			snapshot:   domain.SystemSnapshot{CPUPercent: 90, MemoryPercent: 90},
			wantStatus: domain.StatusHealthy,
			wantSystem: true,
		},
		{
			name:       "cpu over threshold is degraded",
			snapshot:   domain.SystemSnapshot{CPUPercent: 97, MemoryPercent: 40},
			wantStatus: domain.StatusDegraded,
			wantSystem: true,
		},
		{
			name:       "memory over threshold is degraded",
			snapshot:   domain.SystemSnapshot{CPUPercent: 10, MemoryPercent: 95.5},
			wantStatus: domain.StatusDegraded,
			wantSystem: true,
		},
		{
			name:       "collection failure is unhealthy",
			err:        errors.New("cpu usage: permission denied"),
			wantStatus: domain.StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := new(MockSystemMetrics)
			sys.On("Snapshot", mock.Anything).Return(tt.snapshot, tt.err)
			uc := usecase.NewHealthUsecase(sys, healthConfig(), logger.Discard())

			report := uc.Check(context.Background())

			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, tt.wantStatus == domain.StatusHealthy, report.Healthy())
			assert.Equal(t, "1.2.3", report.Version)
			assert.WithinDuration(t, time.Now(), report.Timestamp, time.Minute)
			if tt.wantSystem {
				require.NotNil(t, report.System)
				assert.Equal(t, tt.snapshot, *report.System)
			} else {
				assert.Nil(t, report.System)
				assert.NotEmpty(t, report.Error)
			}
		})
	}
}

func TestHealthStatusAndInfo(t *testing.T) {
	sys := new(MockSystemMetrics)
	sys.On("Platform", mock.Anything).Return(domain.PlatformInfo{OS: "linux", Arch: "amd64", GoVersion: "go1.25"})
	uc := usecase.NewHealthUsecase(sys, healthConfig(), logger.Discard())

	status := uc.Status(context.Background())
	assert.Equal(t, "running", status.APIStatus)
	assert.Equal(t, "1.2.3", status.Version)
	assert.GreaterOrEqual(t, status.UptimeSeconds, int64(0))

	info := uc.Info(context.Background())
	assert.Equal(t, "landing-mailer", info.Application)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "test", info.Environment)
	assert.Equal(t, "linux", info.Platform.OS)
}

func TestHealthMetricsPropagatesFailure(t *testing.T) {
	sys := new(MockSystemMetrics)
	sys.On("Snapshot", mock.Anything).Return(domain.SystemSnapshot{}, errors.New("boom"))
	uc := usecase.NewHealthUsecase(sys, healthConfig(), logger.Discard())

	_, err := uc.Metrics(context.Background())
	assert.EqualError(t, err, "boom")
}
