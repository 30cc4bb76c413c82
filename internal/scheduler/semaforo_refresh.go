package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/institutoins/kpi-manager-api/infrastructure/repository"
	"github.com/institutoins/kpi-manager-api/internal/config"
	"github.com/sirupsen/logrus"
)

// SemaforoRefreshConfig representa a configuração do agendador de snapshots
type SemaforoRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SemaforoRefreshService recalcula periodicamente os snapshots de
// status_semaforo gravados em dados_kpis. O snapshot é desnormalizado no
// momento da gravação; quando as faixas de um KPI mudam na configuração,
// esta rotina realinha os registros antigos.
type SemaforoRefreshService struct {
	scheduler           *gocron.Scheduler
	config              SemaforoRefreshConfig
	kpiRepo             repository.KpiRepository
	dataPointRepo       repository.DataPointRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSemaforoRefreshService cria uma nova instância do serviço de atualização de snapshots
func NewSemaforoRefreshService(
	kpiRepo repository.KpiRepository,
	dataPointRepo repository.DataPointRepository,
	appConfig *config.Config,
) *SemaforoRefreshService {
	refreshConfig := SemaforoRefreshConfig{
		CronSchedule: appConfig.SemaforoRefresh.CronSchedule,
		Enabled:      appConfig.SemaforoRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de snapshots de semáforo carregada")

	return &SemaforoRefreshService{
		scheduler:     scheduler,
		config:        refreshConfig,
		kpiRepo:       kpiRepo,
		dataPointRepo: dataPointRepo,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *SemaforoRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização de snapshots de semáforo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de semáforo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAll()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de snapshots de semáforo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Encerrando agendador de snapshots de semáforo")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a atualização fora do horário agendado
func (s *SemaforoRefreshService) TriggerManualSync() {
	go s.refreshAll()
}

// IsRunning indica se uma atualização está em andamento
func (s *SemaforoRefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SemaforoRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.syncRunning,
		"last_refresh_started_at":   s.lastSyncStartedAt,
		"last_refresh_completed_at": s.lastSyncCompletedAt,
	}
}

// refreshAll percorre os KPIs ativos e realinha o snapshot de cada registro
// com as faixas atuais da configuração
func (s *SemaforoRefreshService) refreshAll() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização de snapshots já em andamento, ignorando disparo")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	kpis, err := s.kpiRepo.ListAtivos()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar KPIs para atualização de snapshots")
		return
	}

	atualizados := 0
	falhas := 0

	for _, kpi := range kpis {
		dados, err := s.dataPointRepo.ListByKpi(kpi.ID)
		if err != nil {
			logrus.WithError(err).WithField("kpi_id", kpi.ID).Error("Erro ao listar registros do KPI")
			falhas++
			continue
		}

		for _, dp := range dados {
			status := kpi.CalcularStatus(dp.ValorNumerico)
			if dp.StatusSemaforo != nil && *dp.StatusSemaforo == status {
				continue
			}

			dp.StatusSemaforo = &status
			if err := s.dataPointRepo.Update(dp); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"kpi_id":  kpi.ID,
					"periodo": dp.Periodo,
				}).Error("Erro ao atualizar snapshot de semáforo")
				falhas++
				continue
			}
			atualizados++
		}
	}

	logrus.WithFields(logrus.Fields{
		"kpis":        len(kpis),
		"atualizados": atualizados,
		"falhas":      falhas,
	}).Info("Atualização de snapshots de semáforo concluída")
}
