package syncing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metamocks "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// TestService_SyncFamily_Campaigns cobre a reconciliação de campanhas: busca
// fail-closed, persistência fail-open e rebaixamento baseado no conjunto
// retornado pela busca.
func TestService_SyncFamily_Campaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(reader *metamocks.MockAdsReader, repo *mocks.MockCampaignRepository)
		validate func(t *testing.T, summary *domain.SyncSummary, err error)
	}{
		{
			name: "Falha na busca aborta a família sem tocar no banco",
			setup: func(reader *metamocks.MockAdsReader, repo *mocks.MockCampaignRepository) {
				reader.EXPECT().
					FetchActiveCampaigns(gomock.Any()).
					Return(nil, fmt.Errorf("erro de rede"))
				// Nenhuma expectativa no repositório: qualquer chamada falha o teste.
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.Error(t, err)
				assert.Nil(t, summary)
			},
		},
		{
			name: "Falha de upsert em uma linha não rebaixa a entidade nem interrompe as demais",
			setup: func(reader *metamocks.MockAdsReader, repo *mocks.MockCampaignRepository) {
				reader.EXPECT().
					FetchActiveCampaigns(gomock.Any()).
					Return([]*domain.Campaign{
						{ExternalID: "CMP001", Name: "Campanha A", Status: domain.StatusActive},
						{ExternalID: "CMP002", Name: "Campanha B", Status: domain.StatusActive},
					}, nil)

				repo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(campaign *domain.Campaign) error {
						if campaign.ExternalID == "CMP001" {
							return fmt.Errorf("violação de constraint")
						}
						return nil
					}).
					Times(2)

				// CMP001 continua conhecida: o upsert falhou, mas ela veio na busca.
				repo.EXPECT().
					ListIDsWhereStatusNot(domain.StatusInactive).
					Return(map[string]struct{}{
						"CMP001": {},
						"CMP002": {},
						"CMP003": {},
					}, nil)

				// Apenas CMP003, ausente da busca, é rebaixada.
				repo.EXPECT().MarkInactive("CMP003").Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, summary.Synced)
				assert.Equal(t, 1, summary.RowErrors)
				assert.Equal(t, 1, summary.MarkedInactive)
			},
		},
		{
			name: "Entidade que desapareceu da busca é marcada como inativa",
			setup: func(reader *metamocks.MockAdsReader, repo *mocks.MockCampaignRepository) {
				reader.EXPECT().
					FetchActiveCampaigns(gomock.Any()).
					Return([]*domain.Campaign{
						{ExternalID: "CMP001", Name: "Campanha A", Status: domain.StatusActive},
					}, nil)

				repo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

				repo.EXPECT().
					ListIDsWhereStatusNot(domain.StatusInactive).
					Return(map[string]struct{}{
						"CMP001": {},
						"CMP002": {},
					}, nil)

				repo.EXPECT().MarkInactive("CMP002").Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, summary.Synced)
				assert.Equal(t, 1, summary.MarkedInactive)
				assert.Equal(t, 0, summary.RowErrors)
			},
		},
		{
			name: "Busca vazia rebaixa tudo que ainda estava ativo",
			setup: func(reader *metamocks.MockAdsReader, repo *mocks.MockCampaignRepository) {
				reader.EXPECT().
					FetchActiveCampaigns(gomock.Any()).
					Return([]*domain.Campaign{}, nil)

				repo.EXPECT().
					ListIDsWhereStatusNot(domain.StatusInactive).
					Return(map[string]struct{}{
						"CMP001": {},
						"CMP002": {},
					}, nil)

				repo.EXPECT().MarkInactive("CMP001").Return(nil)
				repo.EXPECT().MarkInactive("CMP002").Return(nil)
			},
			validate: func(t *testing.T, summary *domain.SyncSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, summary.Synced)
				assert.Equal(t, 2, summary.MarkedInactive)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := metamocks.NewMockAdsReader(ctrl)
			mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

			tt.setup(mockReader, mockCampaignRepo)

			service := NewService(&config.Config{}, mockReader, mockCampaignRepo, nil, nil, nil, nil, nil)

			summary, err := service.SyncFamily(context.Background(), domain.FamilyCampaigns)
			tt.validate(t, summary, err)
		})
	}
}

// TestService_SyncFamily_SegundoCicloSemMudancaNaoRebaixaNada roda a mesma
// reconciliação duas vezes com o mesmo retorno do Meta. No primeiro ciclo
// CMP002 desaparece e é rebaixada; no segundo ela já está inativa e fica fora
// de ListIDsWhereStatusNot, então nenhum rebaixamento acontece e o espelho
// converge para o mesmo estado.
func TestService_SyncFamily_SegundoCicloSemMudancaNaoRebaixaNada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := metamocks.NewMockAdsReader(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)

	fetched := []*domain.Campaign{
		{ExternalID: "CMP001", Name: "Campanha A", Status: domain.StatusActive},
	}

	mockReader.EXPECT().FetchActiveCampaigns(gomock.Any()).Return(fetched, nil).Times(2)
	mockCampaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

	gomock.InOrder(
		// Primeiro ciclo: CMP002 ainda consta como ativa e some da busca.
		mockCampaignRepo.EXPECT().
			ListIDsWhereStatusNot(domain.StatusInactive).
			Return(map[string]struct{}{
				"CMP001": {},
				"CMP002": {},
			}, nil),
		mockCampaignRepo.EXPECT().MarkInactive("CMP002").Return(nil),
		// Segundo ciclo: CMP002 já inativa não aparece mais na listagem.
		// Nenhuma outra chamada a MarkInactive é esperada.
		mockCampaignRepo.EXPECT().
			ListIDsWhereStatusNot(domain.StatusInactive).
			Return(map[string]struct{}{
				"CMP001": {},
			}, nil),
	)

	service := NewService(&config.Config{}, mockReader, mockCampaignRepo, nil, nil, nil, nil, nil)

	first, err := service.SyncFamily(context.Background(), domain.FamilyCampaigns)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Synced)
	assert.Equal(t, 1, first.MarkedInactive)

	second, err := service.SyncFamily(context.Background(), domain.FamilyCampaigns)
	assert.NoError(t, err)
	assert.Equal(t, 1, second.Synced)
	assert.Equal(t, 0, second.MarkedInactive)
	assert.Equal(t, 0, second.RowErrors)
}

func TestService_SyncFamily_UnknownFamily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(&config.Config{}, metamocks.NewMockAdsReader(ctrl), nil, nil, nil, nil, nil, nil)

	summary, err := service.SyncFamily(context.Background(), domain.EntityFamily("invoices"))
	assert.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "família de entidades desconhecida")
}

// TestService_SyncAll_ContinuaAposFalhaDeFamilia garante que a falha de uma
// família não impede a sincronização das seguintes.
func TestService_SyncAll_ContinuaAposFalhaDeFamilia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := metamocks.NewMockAdsReader(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignRepository(ctrl)
	mockAdSetRepo := mocks.NewMockAdSetRepository(ctrl)
	mockAdRepo := mocks.NewMockAdRepository(ctrl)

	// Campanhas falham na busca.
	mockReader.EXPECT().
		FetchActiveCampaigns(gomock.Any()).
		Return(nil, fmt.Errorf("timeout"))

	// Conjuntos e anúncios sincronizam normalmente.
	mockReader.EXPECT().
		FetchActiveAdSets(gomock.Any()).
		Return([]*domain.AdSet{{ExternalID: "SET001", Status: domain.StatusActive}}, nil)
	mockAdSetRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	mockAdSetRepo.EXPECT().
		ListIDsWhereStatusNot(domain.StatusInactive).
		Return(map[string]struct{}{"SET001": {}}, nil)

	mockReader.EXPECT().
		FetchActiveAds(gomock.Any()).
		Return([]*domain.Ad{{ExternalID: "AD001", Status: domain.StatusActive}}, nil)
	mockAdRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)
	mockAdRepo.EXPECT().
		ListIDsWhereStatusNot(domain.StatusInactive).
		Return(map[string]struct{}{"AD001": {}}, nil)

	service := NewService(&config.Config{}, mockReader, mockCampaignRepo, mockAdSetRepo, mockAdRepo, nil, nil, nil)

	summaries, err := service.SyncAll(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "campaigns")
	assert.Len(t, summaries, 2)
	assert.Equal(t, domain.FamilyAdSets, summaries[0].Family)
	assert.Equal(t, domain.FamilyAds, summaries[1].Family)
}

func TestService_SyncLeads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(reader *metamocks.MockAdsReader, adRepo *mocks.MockAdRepository, leadRepo *mocks.MockLeadRepository)
		validate func(t *testing.T, total int, err error)
	}{
		{
			name: "Falha em um anúncio não interrompe os demais",
			setup: func(reader *metamocks.MockAdsReader, adRepo *mocks.MockAdRepository, leadRepo *mocks.MockLeadRepository) {
				adRepo.EXPECT().ListActiveIDs().Return([]string{"AD001", "AD002"}, nil)

				reader.EXPECT().
					FetchLeadsByAd(gomock.Any(), "AD001").
					Return(nil, fmt.Errorf("erro de rede"))

				reader.EXPECT().
					FetchLeadsByAd(gomock.Any(), "AD002").
					Return([]*domain.Lead{
						{ExternalID: "LEAD001", AdID: "AD002"},
						{ExternalID: "LEAD002", AdID: "AD002"},
					}, nil)

				leadRepo.EXPECT().SaveBatch(gomock.Any(), gomock.Len(2)).Return(nil)
			},
			validate: func(t *testing.T, total int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, total)
			},
		},
		{
			name: "Anúncio sem leads não chama o repositório",
			setup: func(reader *metamocks.MockAdsReader, adRepo *mocks.MockAdRepository, leadRepo *mocks.MockLeadRepository) {
				adRepo.EXPECT().ListActiveIDs().Return([]string{"AD001"}, nil)

				reader.EXPECT().
					FetchLeadsByAd(gomock.Any(), "AD001").
					Return([]*domain.Lead{}, nil)
			},
			validate: func(t *testing.T, total int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, total)
			},
		},
		{
			name: "Falha ao listar anúncios ativos aborta a sincronização",
			setup: func(reader *metamocks.MockAdsReader, adRepo *mocks.MockAdRepository, leadRepo *mocks.MockLeadRepository) {
				adRepo.EXPECT().ListActiveIDs().Return(nil, fmt.Errorf("conexão perdida"))
			},
			validate: func(t *testing.T, total int, err error) {
				assert.Error(t, err)
				assert.Equal(t, 0, total)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := metamocks.NewMockAdsReader(ctrl)
			mockAdRepo := mocks.NewMockAdRepository(ctrl)
			mockLeadRepo := mocks.NewMockLeadRepository(ctrl)

			tt.setup(mockReader, mockAdRepo, mockLeadRepo)

			service := NewService(&config.Config{}, mockReader, nil, nil, mockAdRepo, mockLeadRepo, nil, nil)

			total, err := service.SyncLeads(context.Background())
			tt.validate(t, total, err)
		})
	}
}

func TestService_SyncActivities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lastEvent := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(reader *metamocks.MockAdsReader, repo *mocks.MockAccountActivityRepository)
		validate func(t *testing.T, saved int, err error)
	}{
		{
			name: "Retoma a partir do último evento persistido",
			setup: func(reader *metamocks.MockAdsReader, repo *mocks.MockAccountActivityRepository) {
				repo.EXPECT().LastEventTime().Return(&lastEvent, nil)

				reader.EXPECT().
					FetchAccountActivities(gomock.Any(), lastEvent).
					Return([]*domain.AccountActivity{
						{EventType: "ad_account_update_spend_limit", EventTime: lastEvent.Add(time.Hour)},
						{EventType: "campaign_update", EventTime: lastEvent.Add(2 * time.Hour)},
					}, nil)

				repo.EXPECT().Insert(gomock.Any()).Return(nil).Times(2)
			},
			validate: func(t *testing.T, saved int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2, saved)
			},
		},
		{
			name: "Falha ao salvar uma atividade não interrompe as demais",
			setup: func(reader *metamocks.MockAdsReader, repo *mocks.MockAccountActivityRepository) {
				repo.EXPECT().LastEventTime().Return(&lastEvent, nil)

				reader.EXPECT().
					FetchAccountActivities(gomock.Any(), lastEvent).
					Return([]*domain.AccountActivity{
						{EventType: "campaign_update", EventTime: lastEvent.Add(time.Hour)},
						{EventType: "adset_update", EventTime: lastEvent.Add(2 * time.Hour)},
					}, nil)

				gomock.InOrder(
					repo.EXPECT().Insert(gomock.Any()).Return(fmt.Errorf("violação de constraint")),
					repo.EXPECT().Insert(gomock.Any()).Return(nil),
				)
			},
			validate: func(t *testing.T, saved int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, saved)
			},
		},
		{
			name: "Banco vazio usa a janela padrão de lookback",
			setup: func(reader *metamocks.MockAdsReader, repo *mocks.MockAccountActivityRepository) {
				repo.EXPECT().LastEventTime().Return(nil, nil)

				reader.EXPECT().
					FetchAccountActivities(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, since time.Time) ([]*domain.AccountActivity, error) {
						expected := time.Now().Add(-defaultActivityLookback)
						assert.WithinDuration(t, expected, since, time.Minute)
						return []*domain.AccountActivity{}, nil
					})
			},
			validate: func(t *testing.T, saved int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, saved)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := metamocks.NewMockAdsReader(ctrl)
			mockActivityRepo := mocks.NewMockAccountActivityRepository(ctrl)

			tt.setup(mockReader, mockActivityRepo)

			service := NewService(&config.Config{}, mockReader, nil, nil, nil, nil, mockActivityRepo, nil)

			saved, err := service.SyncActivities(context.Background())
			tt.validate(t, saved, err)
		})
	}
}

func TestService_SyncInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := metamocks.NewMockAdsReader(ctrl)
	mockInsightRepo := mocks.NewMockAdSetInsightRepository(ctrl)

	cfg := &config.Config{}
	cfg.InsightSync.LookbackDays = 3
	cfg.InsightSync.RetentionDays = 90

	mockReader.EXPECT().
		FetchAdSetInsights(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, startDate, endDate time.Time) ([]*domain.AdSetInsightEntry, error) {
			assert.WithinDuration(t, time.Now(), endDate, time.Minute)
			assert.WithinDuration(t, endDate.AddDate(0, 0, -3), startDate, time.Minute)
			return []*domain.AdSetInsightEntry{
				{AdSetID: "SET001", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
				{AdSetID: "SET001", Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
				{AdSetID: "SET002", Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
			}, nil
		})

	gomock.InOrder(
		mockInsightRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
		mockInsightRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(fmt.Errorf("deadlock detectado")),
		mockInsightRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
	)
	mockInsightRepo.EXPECT().DeleteOlderThan(90).Return(int64(5), nil)

	service := NewService(cfg, mockReader, nil, nil, nil, nil, nil, mockInsightRepo)

	saved, err := service.SyncInsights(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, saved)
}
