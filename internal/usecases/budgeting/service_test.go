package budgeting

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var referenceTime = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BudgetRules = config.BudgetRules{
		MaxIncreasePercent: 20,
		MaxDecreasePercent: 50,
		MinBudget:          5,
		MaxBudget:          10000,
		MaxPerHour:         4,
		CooldownMinutes:    15,
		LowBudgetWarning:   10,
		PendingGraceAge:    15,
	}
	return cfg
}

func activeAdSet() *domain.AdSet {
	return &domain.AdSet{
		ExternalID:      "SET001",
		CampaignID:      "CMP001",
		Name:            "Conjunto A",
		Status:          domain.StatusActive,
		EffectiveStatus: domain.StatusActive,
		DailyBudget:     10000, // 100.00
		BudgetRemaining: 8000,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func newTestService(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository, adSetRepo *mocks.MockAdSetRepository) *Service {
	service := NewService(testConfig(), client, logRepo, adSetRepo)
	service.now = func() time.Time { return referenceTime }
	return service
}

// TestService_Adjust_Validacao cobre as rejeições de entrada que não chegam a
// consultar o Meta nem a gerar registro de auditoria.
func TestService_Adjust_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidStatus := "ARCHIVED"

	tests := []struct {
		name         string
		adsetID      string
		request      *domain.AdjustBudgetRequest
		expectedCode string
	}{
		{
			name:         "Identificador do conjunto ausente",
			adsetID:      "",
			request:      &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Nenhum campo de orçamento informado",
			adsetID:      "SET001",
			request:      &domain.AdjustBudgetRequest{},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "Dois campos de orçamento na mesma solicitação",
			adsetID: "SET001",
			request: &domain.AdjustBudgetRequest{
				DailyBudget:    floatPtr(110),
				LifetimeBudget: floatPtr(5000),
			},
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "Valor não positivo",
			adsetID:      "SET001",
			request:      &domain.AdjustBudgetRequest{DailyBudget: floatPtr(-10)},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "Status fora do conjunto permitido",
			adsetID: "SET001",
			request: &domain.AdjustBudgetRequest{
				DailyBudget: floatPtr(110),
				Status:      &invalidStatus,
			},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma expectativa: validação de entrada não toca Meta nem banco.
			service := newTestService(
				metamocks.NewMockBudgetClient(ctrl),
				mocks.NewMockBudgetLogRepository(ctrl),
				mocks.NewMockAdSetRepository(ctrl),
			)

			result, err := service.Adjust(context.Background(), tt.adsetID, tt.request)
			assert.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.expectedCode, result.Error.Code)
			assert.Nil(t, result.Log)
		})
	}
}

func TestService_Adjust_ConjuntoNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockBudgetClient(ctrl)
	mockClient.EXPECT().
		GetAdSet(gomock.Any(), "SET404").
		Return(nil, &metadomain.APIError{StatusCode: 404, Code: 100, Message: "Unsupported get request"})

	service := newTestService(mockClient, mocks.NewMockBudgetLogRepository(ctrl), mocks.NewMockAdSetRepository(ctrl))

	result, err := service.Adjust(context.Background(), "SET404", &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)})
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, apiErrors.ErrNotFound, result.Error.Code)
}

// TestService_Adjust_Rejeicoes cobre as rejeições de negócio: elegibilidade,
// limites de variação e frequência. Todas geram registro cancelled e nenhuma
// chega a chamar a mutação no Meta.
func TestService_Adjust_Rejeicoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		request      *domain.AdjustBudgetRequest
		setup        func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository)
		expectedCode string
		expectedType string
	}{
		{
			name:    "Conjunto em estado final é inelegível",
			request: &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)},
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository) {
				adset := activeAdSet()
				adset.Status = domain.StatusDeleted
				adset.EffectiveStatus = domain.StatusDeleted
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(adset, nil)
			},
			expectedCode: apiErrors.ErrBudgetIneligible,
			expectedType: "ineligible",
		},
		{
			name:    "Conjunto sem orçamento próprio é inelegível",
			request: &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)},
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository) {
				adset := activeAdSet()
				adset.DailyBudget = 0
				adset.BudgetRemaining = 0
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(adset, nil)
			},
			expectedCode: apiErrors.ErrBudgetIneligible,
			expectedType: "ineligible",
		},
		{
			name:    "Ajuste do tipo lifetime sem orçamento lifetime configurado",
			request: &domain.AdjustBudgetRequest{LifetimeBudget: floatPtr(500)},
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository) {
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)
			},
			expectedCode: apiErrors.ErrBudgetIneligible,
			expectedType: "ineligible",
		},
		{
			name:    "Aumento acima do limite percentual",
			request: &domain.AdjustBudgetRequest{DailyBudget: floatPtr(135)}, // 100.00 -> 135.00 = +35%
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository) {
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)
			},
			expectedCode: apiErrors.ErrBudgetRuleViolation,
			expectedType: "rule_violation",
		},
		{
			name:    "Redução acima do limite percentual",
			request: &domain.AdjustBudgetRequest{DailyBudget: floatPtr(40)}, // 100.00 -> 40.00 = -60%
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository) {
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)
			},
			expectedCode: apiErrors.ErrBudgetRuleViolation,
			expectedType: "rule_violation",
		},
		{
			name:    "Limite de ajustes por hora atingido",
			request: &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)},
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository) {
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)
				logRepo.EXPECT().
					CountAppliedSince("SET001", referenceTime.Add(-time.Hour)).
					Return(4, nil)
			},
			expectedCode: apiErrors.ErrBudgetRateLimited,
			expectedType: "rate_limited",
		},
		{
			name:    "Intervalo mínimo entre ajustes não respeitado",
			request: &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)},
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository) {
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)
				logRepo.EXPECT().
					CountAppliedSince("SET001", referenceTime.Add(-time.Hour)).
					Return(1, nil)
				lastApplied := referenceTime.Add(-5 * time.Minute)
				logRepo.EXPECT().LastAppliedAt("SET001").Return(&lastApplied, nil)
			},
			expectedCode: apiErrors.ErrBudgetRateLimited,
			expectedType: "rate_limited",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := metamocks.NewMockBudgetClient(ctrl)
			mockLogRepo := mocks.NewMockBudgetLogRepository(ctrl)

			tt.setup(mockClient, mockLogRepo)

			// Toda rejeição de negócio fica registrada como cancelled.
			mockLogRepo.EXPECT().
				Create(gomock.Any()).
				DoAndReturn(func(log *domain.BudgetAdjustmentLog) error {
					assert.Equal(t, domain.AdjustmentCancelled, log.Status)
					assert.NotNil(t, log.ErrorMessage)
					return nil
				})

			service := newTestService(mockClient, mockLogRepo, mocks.NewMockAdSetRepository(ctrl))

			result, err := service.Adjust(context.Background(), "SET001", tt.request)
			assert.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.expectedCode, result.Error.Code)
			assert.Equal(t, tt.expectedType, result.Error.Type)
		})
	}
}

func TestService_Adjust_CaminhoFeliz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockBudgetClient(ctrl)
	mockLogRepo := mocks.NewMockBudgetLogRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)

	mockClient.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)

	mockLogRepo.EXPECT().
		CountAppliedSince("SET001", referenceTime.Add(-time.Hour)).
		Return(0, nil)
	mockLogRepo.EXPECT().LastAppliedAt("SET001").Return(nil, nil)

	var logID string
	mockLogRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *domain.BudgetAdjustmentLog) error {
			logID = log.ID
			assert.NotEmpty(t, log.ID)
			assert.Equal(t, domain.AdjustmentPending, log.Status)
			assert.Equal(t, domain.BudgetTypeDaily, log.BudgetType)
			assert.Equal(t, int64(10000), log.OldBudget)
			assert.Equal(t, int64(11000), log.NewBudget)
			assert.Equal(t, int64(1000), log.AdjustmentAmount)
			assert.InDelta(t, 10.0, log.AdjustmentPercent, 0.001)
			return nil
		})

	// O valor transmitido ao Meta é o inteiro em centavos.
	mockClient.EXPECT().
		UpdateAdSetBudget(gomock.Any(), "SET001", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, form url.Values) (json.RawMessage, error) {
			assert.Equal(t, "11000", form.Get("daily_budget"))
			assert.Empty(t, form.Get("lifetime_budget"))
			return json.RawMessage(`{"success":true}`), nil
		})

	mockLogRepo.EXPECT().
		SetStatus(gomock.Any(), domain.AdjustmentApplied, gomock.Any(), nil).
		DoAndReturn(func(id string, _ domain.AdjustmentStatus, _ json.RawMessage, _ *string) error {
			assert.Equal(t, logID, id)
			return nil
		})

	// Espelho local atualizado em melhor esforço.
	mockAdSetRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(adset *domain.AdSet) error {
			assert.Equal(t, int64(11000), adset.DailyBudget)
			return nil
		})

	service := newTestService(mockClient, mockLogRepo, mockAdSetRepo)

	result, err := service.Adjust(context.Background(), "SET001", &domain.AdjustBudgetRequest{
		DailyBudget: floatPtr(110),
		Reason:      "escala de campanha com bom CPL",
	})
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, domain.AdjustmentApplied, result.Log.Status)
	assert.NotNil(t, result.Log.AppliedAt)
	assert.Empty(t, result.Warnings)
}

func TestService_Adjust_FalhaNoMeta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockBudgetClient(ctrl)
	mockLogRepo := mocks.NewMockBudgetLogRepository(ctrl)

	mockClient.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)

	mockLogRepo.EXPECT().
		CountAppliedSince("SET001", gomock.Any()).
		Return(0, nil)
	mockLogRepo.EXPECT().LastAppliedAt("SET001").Return(nil, nil)
	mockLogRepo.EXPECT().Create(gomock.Any()).Return(nil)

	mockClient.EXPECT().
		UpdateAdSetBudget(gomock.Any(), "SET001", gomock.Any()).
		Return(nil, &metadomain.APIError{StatusCode: 400, Code: 100, Message: "Invalid parameter"})

	mockLogRepo.EXPECT().
		SetStatus(gomock.Any(), domain.AdjustmentFailed, nil, gomock.Not(gomock.Nil())).
		Return(nil)

	service := newTestService(mockClient, mockLogRepo, mocks.NewMockAdSetRepository(ctrl))

	result, err := service.Adjust(context.Background(), "SET001", &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)})
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, apiErrors.ErrExternalService, result.Error.Code)
	assert.Equal(t, "upstream_error", result.Error.Type)
	assert.Equal(t, domain.AdjustmentFailed, result.Log.Status)
}

// TestService_Adjust_RegistroPresoEmPending cobre o caso em que a mutação teve
// sucesso mas a atualização do registro falhou: o ajuste é reportado como
// aplicado, com aviso, e o registro fica para a varredura de reconciliação.
func TestService_Adjust_RegistroPresoEmPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockBudgetClient(ctrl)
	mockLogRepo := mocks.NewMockBudgetLogRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)

	mockClient.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(activeAdSet(), nil)
	mockLogRepo.EXPECT().CountAppliedSince("SET001", gomock.Any()).Return(0, nil)
	mockLogRepo.EXPECT().LastAppliedAt("SET001").Return(nil, nil)
	mockLogRepo.EXPECT().Create(gomock.Any()).Return(nil)

	mockClient.EXPECT().
		UpdateAdSetBudget(gomock.Any(), "SET001", gomock.Any()).
		Return(json.RawMessage(`{"success":true}`), nil)

	mockLogRepo.EXPECT().
		SetStatus(gomock.Any(), domain.AdjustmentApplied, gomock.Any(), nil).
		Return(fmt.Errorf("conexão com o banco perdida"))

	mockAdSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := newTestService(mockClient, mockLogRepo, mockAdSetRepo)

	result, err := service.Adjust(context.Background(), "SET001", &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)})
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, domain.AdjustmentPending, result.Log.Status)
	assert.Nil(t, result.Log.AppliedAt)
	assert.NotEmpty(t, result.Warnings)
}

func TestService_Rollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appliedLog := &domain.BudgetAdjustmentLog{
		ID:         "LOG001",
		AdSetID:    "SET001",
		BudgetType: domain.BudgetTypeDaily,
		OldBudget:  10000,
		NewBudget:  11000,
		Status:     domain.AdjustmentApplied,
	}

	tests := []struct {
		name     string
		logID    string
		setup    func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository, adSetRepo *mocks.MockAdSetRepository)
		validate func(t *testing.T, result *domain.AdjustBudgetResult, err error)
	}{
		{
			name:  "Registro inexistente",
			logID: "LOG404",
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository, adSetRepo *mocks.MockAdSetRepository) {
				logRepo.EXPECT().GetByID("LOG404").Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.AdjustBudgetResult, err error) {
				assert.NoError(t, err)
				assert.False(t, result.Success)
				assert.Equal(t, apiErrors.ErrNotFound, result.Error.Code)
			},
		},
		{
			name:  "Apenas registros aplicados podem ser revertidos",
			logID: "LOG002",
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository, adSetRepo *mocks.MockAdSetRepository) {
				logRepo.EXPECT().GetByID("LOG002").Return(&domain.BudgetAdjustmentLog{
					ID:     "LOG002",
					Status: domain.AdjustmentFailed,
				}, nil)
			},
			validate: func(t *testing.T, result *domain.AdjustBudgetResult, err error) {
				assert.NoError(t, err)
				assert.False(t, result.Success)
				assert.Equal(t, apiErrors.ErrInvalidRequest, result.Error.Code)
			},
		},
		{
			name:  "Rollback emite ajuste compensatório com o orçamento anterior",
			logID: "LOG001",
			setup: func(client *metamocks.MockBudgetClient, logRepo *mocks.MockBudgetLogRepository, adSetRepo *mocks.MockAdSetRepository) {
				logRepo.EXPECT().GetByID("LOG001").Return(appliedLog, nil)

				// O ajuste compensatório percorre o caminho normal de validação.
				adset := activeAdSet()
				adset.DailyBudget = 11000
				client.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(adset, nil)

				logRepo.EXPECT().CountAppliedSince("SET001", gomock.Any()).Return(1, nil)
				lastApplied := referenceTime.Add(-30 * time.Minute)
				logRepo.EXPECT().LastAppliedAt("SET001").Return(&lastApplied, nil)

				logRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(log *domain.BudgetAdjustmentLog) error {
						assert.Equal(t, int64(11000), log.OldBudget)
						assert.Equal(t, int64(10000), log.NewBudget)
						assert.Equal(t, domain.TriggerAPI, log.TriggerType)
						assert.Contains(t, log.Reason, "LOG001")
						return nil
					})

				client.EXPECT().
					UpdateAdSetBudget(gomock.Any(), "SET001", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, form url.Values) (json.RawMessage, error) {
						assert.Equal(t, "10000", form.Get("daily_budget"))
						return json.RawMessage(`{"success":true}`), nil
					})

				logRepo.EXPECT().
					SetStatus(gomock.Any(), domain.AdjustmentApplied, gomock.Any(), nil).
					Return(nil)

				adSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result *domain.AdjustBudgetResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, domain.AdjustmentApplied, result.Log.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := metamocks.NewMockBudgetClient(ctrl)
			mockLogRepo := mocks.NewMockBudgetLogRepository(ctrl)
			mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)

			tt.setup(mockClient, mockLogRepo, mockAdSetRepo)

			service := newTestService(mockClient, mockLogRepo, mockAdSetRepo)

			result, err := service.Rollback(context.Background(), tt.logID, "")
			tt.validate(t, result, err)
		})
	}
}

func TestService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockBudgetClient(ctrl)
	mockLogRepo := mocks.NewMockBudgetLogRepository(ctrl)

	pending := []*domain.BudgetAdjustmentLog{
		{ID: "LOG001", AdSetID: "SET001", BudgetType: domain.BudgetTypeDaily, OldBudget: 10000, NewBudget: 11000, Status: domain.AdjustmentPending},
		{ID: "LOG002", AdSetID: "SET002", BudgetType: domain.BudgetTypeDaily, OldBudget: 5000, NewBudget: 6000, Status: domain.AdjustmentPending},
		{ID: "LOG003", AdSetID: "SET003", BudgetType: domain.BudgetTypeLifetime, OldBudget: 50000, NewBudget: 60000, Status: domain.AdjustmentPending},
	}

	mockLogRepo.EXPECT().
		ListPendingOlderThan(15 * time.Minute).
		Return(pending, nil)

	// LOG001: o orçamento corrente já reflete o ajuste; confirma como applied.
	confirmed := activeAdSet()
	confirmed.DailyBudget = 11000
	mockClient.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(confirmed, nil)
	mockLogRepo.EXPECT().SetStatus("LOG001", domain.AdjustmentApplied, nil, nil).Return(nil)

	// LOG002: o orçamento corrente diverge; encerra como failed.
	diverged := activeAdSet()
	diverged.ExternalID = "SET002"
	diverged.DailyBudget = 5000
	mockClient.EXPECT().GetAdSet(gomock.Any(), "SET002").Return(diverged, nil)
	mockLogRepo.EXPECT().
		SetStatus("LOG002", domain.AdjustmentFailed, nil, gomock.Not(gomock.Nil())).
		Return(nil)

	// LOG003: lookup falhou; permanece pendente para a próxima varredura.
	mockClient.EXPECT().
		GetAdSet(gomock.Any(), "SET003").
		Return(nil, &metadomain.APIError{StatusCode: 503, Code: 2, Message: "Service temporarily unavailable"})

	service := newTestService(mockClient, mockLogRepo, mocks.NewMockAdSetRepository(ctrl))

	summary, err := service.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Checked)
	assert.Equal(t, 1, summary.Confirmed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Errors)
}

func TestService_Adjust_AvisoDeConjuntoPausado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockBudgetClient(ctrl)
	mockLogRepo := mocks.NewMockBudgetLogRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)

	paused := activeAdSet()
	paused.Status = domain.StatusPaused
	paused.EffectiveStatus = domain.StatusPaused

	mockClient.EXPECT().GetAdSet(gomock.Any(), "SET001").Return(paused, nil)
	mockLogRepo.EXPECT().CountAppliedSince("SET001", gomock.Any()).Return(0, nil)
	mockLogRepo.EXPECT().LastAppliedAt("SET001").Return(nil, nil)
	mockLogRepo.EXPECT().Create(gomock.Any()).Return(nil)
	mockClient.EXPECT().
		UpdateAdSetBudget(gomock.Any(), "SET001", gomock.Any()).
		Return(json.RawMessage(`{"success":true}`), nil)
	mockLogRepo.EXPECT().SetStatus(gomock.Any(), domain.AdjustmentApplied, gomock.Any(), nil).Return(nil)
	mockAdSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	service := newTestService(mockClient, mockLogRepo, mockAdSetRepo)

	result, err := service.Adjust(context.Background(), "SET001", &domain.AdjustBudgetRequest{DailyBudget: floatPtr(110)})
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "pausado")
}
